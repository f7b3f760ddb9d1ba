package strength

import "unicode"

// Classes is a set of character classes present in a password.
type Classes uint8

const (
	Lower Classes = 1 << iota
	Upper
	Digit
	// Symbol covers everything that is not a cased letter or a decimal digit:
	// punctuation, spaces, emoji and letters without case.
	Symbol
)

var classNames = []struct {
	class Classes
	name  string
}{
	{Lower, "lower"},
	{Upper, "upper"},
	{Digit, "digit"},
	{Symbol, "symbol"},
}

// ClassesOf returns the set of classes used by text.
func ClassesOf(text string) Classes {
	var set Classes
	for _, r := range text {
		switch {
		case unicode.IsLower(r):
			set |= Lower
		case unicode.IsUpper(r), unicode.IsTitle(r):
			set |= Upper
		case unicode.IsDigit(r):
			set |= Digit
		default:
			set |= Symbol
		}
		if set == Lower|Upper|Digit|Symbol {
			break
		}
	}
	return set
}

// Has reports whether every class in other is present in c.
func (c Classes) Has(other Classes) bool {
	return c&other == other
}

// Count returns the number of distinct classes in the set.
func (c Classes) Count() int {
	n := 0
	for _, entry := range classNames {
		if c&entry.class != 0 {
			n++
		}
	}
	return n
}

// Names lists the classes in a stable order.
func (c Classes) Names() []string {
	out := make([]string, 0, 4)
	for _, entry := range classNames {
		if c&entry.class != 0 {
			out = append(out, entry.name)
		}
	}
	return out
}
