// Package prompt hosts a password field in a terminal: it asks for a
// password, shows the strength indicator as a line of text, and repeats until
// a minimum strength is reached.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-passfield/pkg/field"
	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

const (
	defaultMessage  = "Enter password"
	defaultAttempts = 3
)

// Result is the outcome of a session.
type Result struct {
	Password string
	Strength strength.Strength
	Attempts int
}

// Session drives a field.Field from terminal input.
type Session struct {
	driver   Driver
	field    *field.Field
	minimum  strength.Strength
	attempts int
	message  string
}

// Option configures a Session.
type Option func(*Session)

// WithMinimum sets the strength a password must reach. Defaults to Weak, which
// accepts the first answer.
func WithMinimum(s strength.Strength) Option {
	return func(sess *Session) {
		if s.Valid() {
			sess.minimum = s
		}
	}
}

// WithAttempts caps the number of prompts. Values below 1 are ignored.
func WithAttempts(n int) Option {
	return func(sess *Session) {
		if n > 0 {
			sess.attempts = n
		}
	}
}

// WithField replaces the default field.
func WithField(f *field.Field) Option {
	return func(sess *Session) {
		if f != nil {
			sess.field = f
		}
	}
}

// WithMessage sets the prompt message.
func WithMessage(msg string) Option {
	return func(sess *Session) {
		if strings.TrimSpace(msg) != "" {
			sess.message = msg
		}
	}
}

// NewSession builds a session over driver.
func NewSession(driver Driver, options ...Option) (*Session, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	s := &Session{
		driver:   driver,
		minimum:  strength.Weak,
		attempts: defaultAttempts,
		message:  defaultMessage,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.field == nil {
		s.field = field.New()
	}
	return s, nil
}

// Run prompts until the minimum strength is met, the attempts run out
// (ErrTooWeak) or the user aborts (ErrAborted).
func (s *Session) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("prompt: context is required")
	}

	help := fmt.Sprintf("Needs to be at least %q.", s.minimum.Label())
	for attempt := 1; attempt <= s.attempts; attempt++ {
		response, err := s.driver.Password(ctx, InputConfig{Message: s.message, Help: help})
		if err != nil {
			return Result{Attempts: attempt}, err
		}

		update, err := s.field.SetText(response)
		if err != nil {
			if infoErr := s.driver.Info(ctx, fmt.Sprintf("Invalid password: %v", err)); infoErr != nil {
				return Result{Attempts: attempt}, infoErr
			}
			continue
		}
		if err := s.driver.Info(ctx, FormatState(update.State)); err != nil {
			return Result{Attempts: attempt}, err
		}

		if update.Strength.AtLeast(s.minimum) {
			return Result{Password: update.Text, Strength: update.Strength, Attempts: attempt}, nil
		}
	}
	return Result{Strength: s.field.Strength(), Attempts: s.attempts}, fmt.Errorf("%w: needs %s", ErrTooWeak, s.minimum)
}

// FormatState renders the indicator as "[##-] Could be stronger".
func FormatState(state indicator.State) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, seg := range state.Segments {
		if seg.Filled {
			b.WriteByte('#')
			continue
		}
		b.WriteByte('-')
	}
	b.WriteString("] ")
	b.WriteString(state.Label)
	return b.String()
}
