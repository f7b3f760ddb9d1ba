package indicator

import "github.com/goliatone/go-passfield/pkg/strength"

// Palette holds the segment colours.
type Palette struct {
	Unused Color `json:"unused"`
	Weak   Color `json:"weak"`
	Medium Color `json:"medium"`
	Strong Color `json:"strong"`
}

// DefaultPalette returns the stock red, amber and green tiers over a light
// grey unused colour.
func DefaultPalette() Palette {
	return Palette{
		Unused: HSB(210.0/360, 0.05, 0.86),
		Weak:   HSB(0, 0.60, 0.90),
		Medium: HSB(39.0/360, 0.60, 0.90),
		Strong: HSB(132.0/360, 0.60, 0.75),
	}
}

// Tier returns the colour used by the segment belonging to s.
func (p Palette) Tier(s strength.Strength) Color {
	switch s {
	case strength.Medium:
		return p.Medium
	case strength.Strong:
		return p.Strong
	default:
		return p.Weak
	}
}

// Labels holds the description shown next to the segments.
type Labels struct {
	Weak   string `json:"weak"`
	Medium string `json:"medium"`
	Strong string `json:"strong"`
}

// DefaultLabels uses the fixed strength labels.
func DefaultLabels() Labels {
	return Labels{
		Weak:   strength.Weak.Label(),
		Medium: strength.Medium.Label(),
		Strong: strength.Strong.Label(),
	}
}

// For returns the label for s, falling back to the fixed label when unset.
func (l Labels) For(s strength.Strength) string {
	var label string
	switch s {
	case strength.Medium:
		label = l.Medium
	case strength.Strong:
		label = l.Strong
	default:
		label = l.Weak
	}
	if label == "" {
		return s.Label()
	}
	return label
}
