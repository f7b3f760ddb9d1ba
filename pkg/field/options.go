package field

import (
	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

// Option configures a Field.
type Option func(*Field)

// WithClassifier replaces the default classifier.
func WithClassifier(c *strength.Classifier) Option {
	return func(f *Field) {
		if c != nil {
			f.classifier = c
		}
	}
}

// WithIndicator replaces the default indicator.
func WithIndicator(ind *indicator.Indicator) Option {
	return func(f *Field) {
		if ind != nil {
			f.indicator = ind
		}
	}
}

// WithMaxLength rejects edits that would grow the text beyond n runes. Zero
// disables the limit.
func WithMaxLength(n int) Option {
	return func(f *Field) {
		if n < 0 {
			n = 0
		}
		f.maxLength = n
	}
}

// WithListener registers a change listener at construction time.
func WithListener(fn Listener) Option {
	return func(f *Field) {
		f.OnChange(fn)
	}
}
