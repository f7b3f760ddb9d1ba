package passfield

import (
	"io/fs"
	"net/http"

	"github.com/goliatone/go-passfield/components/strengthcheck"
	"github.com/goliatone/go-passfield/pkg/config"
	"github.com/goliatone/go-passfield/pkg/field"
	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

// Strength aliases strength.Strength so callers can stay on the root package.
type Strength = strength.Strength

const (
	Weak   = strength.Weak
	Medium = strength.Medium
	Strong = strength.Strong
)

// Policy aliases the classifier thresholds.
type Policy = strength.Policy

// State is the rendered indicator for a strength.
type State = indicator.State

// Field and Update expose the text-change contract.
type (
	Field  = field.Field
	Update = field.Update
)

// Classify returns the strength of text under the default policy.
func Classify(text string) Strength {
	return strength.Classify(text)
}

// Indicate classifies text and returns the indicator state with default labels
// and colours.
func Indicate(text string) State {
	return indicator.StateFor(strength.Classify(text))
}

// NewClassifier validates policy and returns a classifier for it.
func NewClassifier(policy Policy) (*strength.Classifier, error) {
	return strength.New(policy)
}

// NewField builds an empty, masked password field.
func NewField(options ...field.Option) *Field {
	return field.New(options...)
}

// NewFieldFromConfig builds a field using the classifier and indicator
// described by cfg.
func NewFieldFromConfig(cfg config.Config, options ...field.Option) (*Field, error) {
	classifier, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}
	base := []field.Option{
		field.WithClassifier(classifier),
		field.WithIndicator(cfg.Indicator()),
	}
	return field.New(append(base, options...)...), nil
}

// LoadConfig reads a JSON or YAML config document from fsys.
func LoadConfig(fsys fs.FS, path string) (config.Config, error) {
	return config.Load(fsys, path)
}

// Handler returns the HTTP strength endpoint handler.
func Handler(options ...strengthcheck.OptionFn) http.Handler {
	return strengthcheck.NewHandler(options...)
}

// RegisterRoutes mounts the strength endpoint under basePath and returns the
// registered pattern.
func RegisterRoutes(mux strengthcheck.Mux, basePath string, options ...strengthcheck.OptionFn) (string, error) {
	return strengthcheck.RegisterRoutes(mux, basePath, options...)
}
