package indicator

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-passfield/pkg/strength"
)

func TestState_FillsSegmentsByLevel(t *testing.T) {
	p := DefaultPalette()
	ind := New()

	cases := []struct {
		s    strength.Strength
		want [SegmentCount]Segment
	}{
		{strength.Weak, [SegmentCount]Segment{
			{Filled: true, Color: p.Weak},
			{Color: p.Unused},
			{Color: p.Unused},
		}},
		{strength.Medium, [SegmentCount]Segment{
			{Filled: true, Color: p.Weak},
			{Filled: true, Color: p.Medium},
			{Color: p.Unused},
		}},
		{strength.Strong, [SegmentCount]Segment{
			{Filled: true, Color: p.Weak},
			{Filled: true, Color: p.Medium},
			{Filled: true, Color: p.Strong},
		}},
	}

	for _, tc := range cases {
		state := ind.State(tc.s)
		if diff := cmp.Diff(tc.want, state.Segments); diff != "" {
			t.Fatalf("%s segments mismatch (-want +got):\n%s", tc.s, diff)
		}
		if state.Label != tc.s.Label() {
			t.Fatalf("%s: unexpected label %q", tc.s, state.Label)
		}
		if state.Filled() != tc.s.Level() {
			t.Fatalf("%s: expected %d filled, got %d", tc.s, tc.s.Level(), state.Filled())
		}
	}
}

func TestState_InvalidStrengthDisplaysWeak(t *testing.T) {
	state := StateFor(strength.Strength(-4))
	if state.Strength != strength.Weak || state.Filled() != 1 {
		t.Fatalf("unexpected state: %#v", state)
	}
}

func TestState_CustomLabelsAndPalette(t *testing.T) {
	palette := DefaultPalette()
	palette.Strong = Color{R: 1, G: 2, B: 3}

	ind := New(
		WithPalette(palette),
		WithLabels(Labels{Strong: "Great"}),
	)

	state := ind.State(strength.Strong)
	if state.Label != "Great" {
		t.Fatalf("expected custom label, got %q", state.Label)
	}
	if state.Segments[2].Color != palette.Strong {
		t.Fatalf("expected custom strong colour, got %s", state.Segments[2].Color)
	}
	if got := ind.State(strength.Medium).Label; got != strength.Medium.Label() {
		t.Fatalf("expected unset label to fall back, got %q", got)
	}
}

func TestState_JSONShape(t *testing.T) {
	data, err := json.Marshal(StateFor(strength.Weak))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"strength":"weak","label":"Too weak","segments":[` +
		`{"filled":true,"color":"#e65c5c"},` +
		`{"filled":false,"color":"#d0d6db"},` +
		`{"filled":false,"color":"#d0d6db"}]}`
	if string(data) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", data, want)
	}
}

func TestNilIndicatorUsesDefaults(t *testing.T) {
	var ind *Indicator
	if diff := cmp.Diff(DefaultPalette(), ind.Palette()); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if got := ind.State(strength.Medium).Label; got != "Could be stronger" {
		t.Fatalf("unexpected label: %q", got)
	}
}
