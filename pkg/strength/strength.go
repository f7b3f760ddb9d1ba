package strength

import (
	"fmt"
	"strings"
)

// Strength is the classifier's output domain. The zero value is Weak.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

var (
	names  = [...]string{"weak", "medium", "strong"}
	labels = [...]string{"Too weak", "Could be stronger", "Strong password"}
)

// Strengths returns every variant ordered from weakest to strongest.
func Strengths() []Strength {
	return []Strength{Weak, Medium, Strong}
}

// Valid reports whether s is one of the three declared variants.
func (s Strength) Valid() bool {
	return s >= Weak && s <= Strong
}

func (s Strength) String() string {
	if !s.Valid() {
		return fmt.Sprintf("strength(%d)", int(s))
	}
	return names[s]
}

// Label returns the fixed human-readable description of the variant.
func (s Strength) Label() string {
	if !s.Valid() {
		return labels[Weak]
	}
	return labels[s]
}

// Level is the number of indicator segments the variant fills (1 to 3).
func (s Strength) Level() int {
	if !s.Valid() {
		return 1
	}
	return int(s) + 1
}

// AtLeast reports whether s is the same or a stronger variant than floor.
func (s Strength) AtLeast(floor Strength) bool {
	return s >= floor
}

func (s Strength) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("strength: invalid value %d", int(s))
	}
	return []byte(names[s]), nil
}

func (s *Strength) UnmarshalText(text []byte) error {
	parsed, err := ParseStrength(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrength accepts a variant name ("weak", "medium", "strong") in any
// case.
func ParseStrength(raw string) (Strength, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range names {
		if key == name {
			return Strength(i), nil
		}
	}
	return Weak, fmt.Errorf("strength: unknown variant %q", raw)
}
