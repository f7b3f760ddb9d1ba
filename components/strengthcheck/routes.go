package strengthcheck

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidMountPath is returned when a base or route path cannot be used as
// a literal route pattern.
var ErrInvalidMountPath = errors.New("strengthcheck: invalid mount path")

// Mux is the minimal interface required to register a net/http handler.
// *http.ServeMux and chi routers both satisfy it.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path for the strength route under basePath.
// It does not validate; RegisterRoutes does.
func MountPath(basePath string, fns ...OptionFn) string {
	return mountPath(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes registers the strength handler under basePath on mux and
// returns the pattern it used.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers a handler under basePath using a
// pre-built Options value. Paths carrying a query, fragment, pattern syntax or
// dot segments are rejected, since the pattern must match the literal URL path
// clients post to.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("strengthcheck: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	for _, p := range []struct{ name, value string }{
		{"base path", basePath},
		{"route path", opts.RoutePath},
	} {
		if err := checkPathSegment(p.value); err != nil {
			return "", fmt.Errorf("%w: %s %q: %v", ErrInvalidMountPath, p.name, p.value, err)
		}
	}

	pattern := mountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}

func checkPathSegment(p string) error {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return fmt.Errorf("contains %q", p[i])
	}
	if i := strings.IndexAny(p, "{}* \t"); i >= 0 {
		return fmt.Errorf("contains pattern or space character %q", p[i])
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == "." || segment == ".." {
			return errors.New("contains a dot segment")
		}
	}
	return nil
}

// mountPath joins basePath and routePath into one rooted path without a
// trailing slash on the base.
func mountPath(basePath, routePath string) string {
	route := "/" + strings.TrimLeft(strings.TrimSpace(routePath), "/")

	base := strings.Trim(strings.TrimSpace(basePath), "/")
	if base == "" {
		return route
	}
	return "/" + base + route
}
