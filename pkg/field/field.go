package field

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

var (
	// ErrRangeOutOfBounds is returned when an edit range does not fit the
	// current text.
	ErrRangeOutOfBounds = errors.New("field: range out of bounds")
	// ErrMaxLength is returned when an edit would exceed the configured
	// maximum length.
	ErrMaxLength = errors.New("field: maximum length exceeded")
)

// Update describes the field after an accepted edit.
type Update struct {
	Text     string
	Strength strength.Strength
	Previous strength.Strength
	// Changed reports whether the edit moved the text into another variant.
	Changed bool
	State   indicator.State
}

// Listener is called synchronously after every accepted edit.
type Listener func(Update)

// Field holds the password text and its strength.
type Field struct {
	classifier *strength.Classifier
	indicator  *indicator.Indicator
	maxLength  int

	text     string
	strength strength.Strength
	secure   bool

	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// New returns an empty, masked field classified as Weak.
func New(options ...Option) *Field {
	f := &Field{
		classifier: strength.Default(),
		indicator:  indicator.New(),
		secure:     true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.strength = f.classifier.Classify(f.text)
	return f
}

// Password returns the current text.
func (f *Field) Password() string { return f.text }

// Strength returns the classification of the current text.
func (f *Field) Strength() strength.Strength { return f.strength }

// State returns the indicator state for the current text.
func (f *Field) State() indicator.State { return f.indicator.State(f.strength) }

// Secure reports whether the text is masked.
func (f *Field) Secure() bool { return f.secure }

// ToggleVisibility flips between masked and plain text entry and returns the
// new Secure value.
func (f *Field) ToggleVisibility() bool {
	f.secure = !f.secure
	return f.secure
}

// OnChange registers fn and returns a function that removes it. Listeners run
// in registration order.
func (f *Field) OnChange(fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}
	entry := &listenerEntry{fn: fn}
	f.listeners = append(f.listeners, entry)
	return func() {
		for i, existing := range f.listeners {
			if existing == entry {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetText replaces the whole text.
func (f *Field) SetText(text string) (Update, error) {
	if f.maxLength > 0 && utf8.RuneCountInString(text) > f.maxLength {
		return Update{}, fmt.Errorf("%w: %d runes allowed", ErrMaxLength, f.maxLength)
	}
	return f.apply(text), nil
}

// ReplaceRange replaces length runes starting at offset with replacement.
// Insertion uses length 0 and deletion an empty replacement. Offsets count
// runes the way utf8.DecodeRuneInString does, so an invalid byte is one rune
// and is kept as is.
func (f *Field) ReplaceRange(offset, length int, replacement string) (Update, error) {
	total := utf8.RuneCountInString(f.text)
	if offset < 0 || length < 0 || offset > total || length > total-offset {
		return Update{}, fmt.Errorf("%w: offset %d length %d in %d runes", ErrRangeOutOfBounds, offset, length, total)
	}

	start := byteOffset(f.text, offset)
	end := start + byteOffset(f.text[start:], length)
	next := f.text[:start] + replacement + f.text[end:]

	if f.maxLength > 0 && utf8.RuneCountInString(next) > f.maxLength {
		return Update{}, fmt.Errorf("%w: %d runes allowed", ErrMaxLength, f.maxLength)
	}
	return f.apply(next), nil
}

// byteOffset returns the byte index of the n-th rune of s.
func byteOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// Reset clears the text and masks it again.
func (f *Field) Reset() Update {
	f.secure = true
	return f.apply("")
}

func (f *Field) apply(text string) Update {
	previous := f.strength
	f.text = text
	f.strength = f.classifier.Classify(text)

	update := Update{
		Text:     f.text,
		Strength: f.strength,
		Previous: previous,
		Changed:  previous != f.strength,
		State:    f.indicator.State(f.strength),
	}

	listeners := append([]*listenerEntry(nil), f.listeners...)
	for _, entry := range listeners {
		entry.fn(update)
	}
	return update
}
