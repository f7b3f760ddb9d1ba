package strengthcheck

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component bundles the strength handler, its configuration and routing
// helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns a net/http handler for strength requests.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// Evaluate classifies password with the component configuration.
func (c *Component) Evaluate(password string) Result {
	return Evaluate(password, c.Options())
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}

// OpenAPI describes the component route mounted under basePath.
func (c *Component) OpenAPI(basePath string) *openapi3.T {
	return OpenAPIWithOptions(basePath, c.Options())
}
