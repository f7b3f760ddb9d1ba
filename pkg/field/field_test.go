package field

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

func TestNew_StartsEmptyWeakAndMasked(t *testing.T) {
	f := New()
	if f.Password() != "" || f.Strength() != strength.Weak || !f.Secure() {
		t.Fatalf("unexpected initial field: %q %s secure=%v", f.Password(), f.Strength(), f.Secure())
	}
	if f.State().Label != "Too weak" {
		t.Fatalf("unexpected initial label: %q", f.State().Label)
	}
}

func TestReplaceRange_TypingNotifiesOnEveryEdit(t *testing.T) {
	f := New()
	var seen []strength.Strength
	f.OnChange(func(u Update) { seen = append(seen, u.Strength) })

	for i, r := range "abcdefghijkl" {
		if _, err := f.ReplaceRange(i, 0, string(r)); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	want := []strength.Strength{
		strength.Weak, strength.Weak, strength.Weak, strength.Weak,
		strength.Weak, strength.Weak, strength.Weak, strength.Medium,
		strength.Medium, strength.Medium, strength.Medium, strength.Strong,
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
	if f.Password() != "abcdefghijkl" {
		t.Fatalf("unexpected text: %q", f.Password())
	}
}

func TestReplaceRange_ReportsTransitions(t *testing.T) {
	f := New()
	if _, err := f.SetText("abcdefg"); err != nil {
		t.Fatalf("set text: %v", err)
	}

	u, err := f.ReplaceRange(7, 0, "h")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !u.Changed || u.Previous != strength.Weak || u.Strength != strength.Medium {
		t.Fatalf("unexpected transition: %#v", u)
	}
	if u.State.Filled() != 2 {
		t.Fatalf("expected two filled segments, got %d", u.State.Filled())
	}

	u, err = f.ReplaceRange(0, 1, "")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if u.Text != "bcdefgh" || u.Strength != strength.Weak || !u.Changed {
		t.Fatalf("unexpected update after delete: %#v", u)
	}

	u, err = f.ReplaceRange(0, 0, "")
	if err != nil {
		t.Fatalf("noop edit: %v", err)
	}
	if u.Changed {
		t.Fatalf("did not expect a transition for a no-op edit")
	}
}

func TestReplaceRange_UsesRuneOffsets(t *testing.T) {
	f := New()
	if _, err := f.SetText("héllo"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	u, err := f.ReplaceRange(1, 1, "e")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if u.Text != "hello" {
		t.Fatalf("unexpected text: %q", u.Text)
	}
}

func TestReplaceRange_KeepsInvalidBytes(t *testing.T) {
	f := New()
	if _, err := f.SetText("ab\xff"); err != nil {
		t.Fatalf("set text: %v", err)
	}

	u, err := f.ReplaceRange(3, 0, "c")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if u.Text != "ab\xffc" {
		t.Fatalf("unexpected text after append: %q", u.Text)
	}

	u, err = f.ReplaceRange(2, 1, "")
	if err != nil {
		t.Fatalf("delete invalid byte: %v", err)
	}
	if u.Text != "abc" {
		t.Fatalf("unexpected text after delete: %q", u.Text)
	}

	if _, err := f.SetText("\xffé\xfe"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	u, err = f.ReplaceRange(1, 1, "e")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if u.Text != "\xffe\xfe" {
		t.Fatalf("unexpected text after replace: %q", u.Text)
	}
}

func TestReplaceRange_RejectsOutOfBounds(t *testing.T) {
	f := New()
	if _, err := f.SetText("abc"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	calls := 0
	f.OnChange(func(Update) { calls++ })

	cases := [][2]int{{-1, 0}, {4, 0}, {2, 2}, {0, -1}}
	for _, c := range cases {
		if _, err := f.ReplaceRange(c[0], c[1], "x"); !errors.Is(err, ErrRangeOutOfBounds) {
			t.Fatalf("range %v: expected ErrRangeOutOfBounds, got %v", c, err)
		}
	}
	if calls != 0 {
		t.Fatalf("expected rejected edits not to notify, got %d calls", calls)
	}
	if f.Password() != "abc" {
		t.Fatalf("expected text untouched, got %q", f.Password())
	}
}

func TestMaxLength(t *testing.T) {
	f := New(WithMaxLength(4))
	if _, err := f.SetText("abcd"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if _, err := f.ReplaceRange(4, 0, "e"); !errors.Is(err, ErrMaxLength) {
		t.Fatalf("expected ErrMaxLength, got %v", err)
	}
	if _, err := f.SetText("abcde"); !errors.Is(err, ErrMaxLength) {
		t.Fatalf("expected ErrMaxLength, got %v", err)
	}
	if _, err := f.ReplaceRange(0, 1, "z"); err != nil {
		t.Fatalf("replacement within limit: %v", err)
	}
	if f.Password() != "zbcd" {
		t.Fatalf("unexpected text: %q", f.Password())
	}
}

func TestOnChange_RemoveAndOrder(t *testing.T) {
	var order []string
	f := New(WithListener(func(Update) { order = append(order, "first") }))
	remove := f.OnChange(func(Update) { order = append(order, "second") })
	f.OnChange(func(Update) { order = append(order, "third") })

	if _, err := f.SetText("a"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	remove()
	remove()
	if _, err := f.SetText("ab"); err != nil {
		t.Fatalf("set text: %v", err)
	}

	want := []string{"first", "second", "third", "first", "third"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("listener order mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleVisibilityAndReset(t *testing.T) {
	f := New()
	if f.ToggleVisibility() {
		t.Fatalf("expected first toggle to reveal text")
	}
	if !f.ToggleVisibility() {
		t.Fatalf("expected second toggle to mask text")
	}
	f.ToggleVisibility()
	if _, err := f.SetText("abcdefghijkl"); err != nil {
		t.Fatalf("set text: %v", err)
	}

	u := f.Reset()
	if u.Text != "" || u.Strength != strength.Weak || !u.Changed || !f.Secure() {
		t.Fatalf("unexpected reset update: %#v secure=%v", u, f.Secure())
	}
}

func TestCustomClassifierAndIndicator(t *testing.T) {
	c := strength.MustNew(strength.Policy{Mode: strength.ModeLength, MediumLength: 2, StrongLength: 3})
	ind := indicator.New(indicator.WithLabels(indicator.Labels{Strong: "Nice"}))
	f := New(WithClassifier(c), WithIndicator(ind))

	u, err := f.SetText("abc")
	if err != nil {
		t.Fatalf("set text: %v", err)
	}
	if u.Strength != strength.Strong || u.State.Label != "Nice" {
		t.Fatalf("unexpected update: %#v", u)
	}
}
