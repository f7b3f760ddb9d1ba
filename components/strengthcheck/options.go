package strengthcheck

import (
	"net/http"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/logging"
	"github.com/goliatone/go-passfield/pkg/strength"
)

const (
	defaultRoutePath    = "/api/password-strength"
	defaultParam        = "password"
	defaultMaxBodyBytes = 4096
)

type GuardFunc func(r *http.Request) error

// Recorder observes handler outcomes, typically for metrics.
type Recorder interface {
	ObserveClassification(s strength.Strength)
	ObserveRejected(reason string)
}

type Options struct {
	RoutePath    string
	Param        string
	MaxBodyBytes int64
	Guard        GuardFunc

	Classifier *strength.Classifier
	Indicator  *indicator.Indicator
	Logger     logging.Logger
	Recorder   Recorder
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		Param:        defaultParam,
		MaxBodyBytes: defaultMaxBodyBytes,
		Classifier:   strength.Default(),
		Indicator:    indicator.New(),
		Logger:       logging.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.Param == "" {
		opts.Param = defaultParam
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Classifier == nil {
		opts.Classifier = strength.Default()
	}
	if opts.Indicator == nil {
		opts.Indicator = indicator.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithParam sets the JSON key and form field carrying the password.
func WithParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Param = name
	}
}

func WithMaxBodyBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = n
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithClassifier(c *strength.Classifier) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Classifier = c
	}
}

func WithIndicator(ind *indicator.Indicator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Indicator = ind
	}
}

func WithLogger(l logging.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = l
	}
}

func WithRecorder(r Recorder) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Recorder = r
	}
}
