package strength

import "unicode/utf8"

// Evaluation is the classifier output plus the measurements it was based on.
type Evaluation struct {
	Strength Strength
	Length   int
	Classes  Classes
}

// Classifier maps password text to a Strength under a fixed Policy. It holds
// no mutable state and is safe for concurrent use.
type Classifier struct {
	policy Policy
}

var defaultClassifier = &Classifier{policy: DefaultPolicy()}

// New returns a classifier for policy, or an error wrapping ErrInvalidPolicy.
func New(policy Policy) (*Classifier, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{policy: policy}, nil
}

// MustNew is New for policies known to be valid at compile time.
func MustNew(policy Policy) *Classifier {
	c, err := New(policy)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the classifier for DefaultPolicy.
func Default() *Classifier {
	return defaultClassifier
}

// Policy returns the classifier's policy.
func (c *Classifier) Policy() Policy {
	if c == nil {
		return DefaultPolicy()
	}
	return c.policy
}

// Classify returns the strength of text. It accepts any string.
func (c *Classifier) Classify(text string) Strength {
	return c.Evaluate(text).Strength
}

// Evaluate classifies text and reports its rune length and class profile.
func (c *Classifier) Evaluate(text string) Evaluation {
	if c == nil {
		c = defaultClassifier
	}
	length := utf8.RuneCountInString(text)
	classes := ClassesOf(text)
	return Evaluation{
		Strength: c.policy.classify(length, classes),
		Length:   length,
		Classes:  classes,
	}
}

// Classify classifies text with the default policy.
func Classify(text string) Strength {
	return defaultClassifier.Classify(text)
}

// Evaluate evaluates text with the default policy.
func Evaluate(text string) Evaluation {
	return defaultClassifier.Evaluate(text)
}
