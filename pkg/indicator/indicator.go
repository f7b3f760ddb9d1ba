package indicator

import "github.com/goliatone/go-passfield/pkg/strength"

// SegmentCount is the number of coloured segments in the indicator.
const SegmentCount = 3

// tiers maps segment positions to the variant that owns them.
var tiers = [SegmentCount]strength.Strength{strength.Weak, strength.Medium, strength.Strong}

// Segment is one bar of the indicator.
type Segment struct {
	Filled bool  `json:"filled"`
	Color  Color `json:"color"`
}

// State is everything a host needs to update the indicator after a
// classification.
type State struct {
	Strength strength.Strength     `json:"strength"`
	Label    string                `json:"label"`
	Segments [SegmentCount]Segment `json:"segments"`
}

// Filled returns the number of filled segments.
func (s State) Filled() int {
	n := 0
	for _, seg := range s.Segments {
		if seg.Filled {
			n++
		}
	}
	return n
}

// Indicator turns strength variants into display state.
type Indicator struct {
	palette Palette
	labels  Labels
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithPalette replaces the default palette.
func WithPalette(p Palette) Option {
	return func(i *Indicator) {
		i.palette = p
	}
}

// WithLabels replaces the default labels. Empty entries keep the fixed label.
func WithLabels(l Labels) Option {
	return func(i *Indicator) {
		i.labels = l
	}
}

// New builds an indicator with the default palette and labels plus overrides.
func New(options ...Option) *Indicator {
	ind := &Indicator{
		palette: DefaultPalette(),
		labels:  DefaultLabels(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(ind)
	}
	return ind
}

// Palette returns the indicator palette.
func (i *Indicator) Palette() Palette {
	if i == nil {
		return DefaultPalette()
	}
	return i.palette
}

// Labels returns the indicator labels.
func (i *Indicator) Labels() Labels {
	if i == nil {
		return DefaultLabels()
	}
	return i.labels
}

// State maps s to its display state. Values outside the declared variants
// display as Weak.
func (i *Indicator) State(s strength.Strength) State {
	if !s.Valid() {
		s = strength.Weak
	}
	palette, labels := i.Palette(), i.Labels()

	state := State{
		Strength: s,
		Label:    labels.For(s),
	}
	level := s.Level()
	for pos, tier := range tiers {
		if pos < level {
			state.Segments[pos] = Segment{Filled: true, Color: palette.Tier(tier)}
			continue
		}
		state.Segments[pos] = Segment{Color: palette.Unused}
	}
	return state
}

// StateFor maps s with the default palette and labels.
func StateFor(s strength.Strength) State {
	return New().State(s)
}
