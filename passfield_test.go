package passfield

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-passfield/pkg/field"
)

func TestClassify_ReferenceScenarios(t *testing.T) {
	cases := map[string]Strength{
		"":             Weak,
		"abc":          Weak,
		"abcdefgh":     Medium,
		"abcdefghijkl": Strong,
	}
	for input, want := range cases {
		if got := Classify(input); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestIndicate(t *testing.T) {
	state := Indicate("abcdefgh")
	if state.Strength != Medium || state.Label != "Could be stronger" {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.Filled() != 2 {
		t.Fatalf("expected two filled segments, got %d", state.Filled())
	}
}

func TestNewFieldFromConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"passfield.json": {Data: []byte(`{"policy":{"mediumLength":3,"strongLength":5}}`)},
	}
	cfg, err := LoadConfig(fsys, "passfield.json")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	var seen []Strength
	f, err := NewFieldFromConfig(cfg, field.WithListener(func(u Update) {
		seen = append(seen, u.Strength)
	}))
	if err != nil {
		t.Fatalf("NewFieldFromConfig: %v", err)
	}

	for _, text := range []string{"ab", "abc", "abcde"} {
		if _, err := f.SetText(text); err != nil {
			t.Fatalf("SetText(%q): %v", text, err)
		}
	}
	want := []Strength{Weak, Medium, Strong}
	if len(seen) != len(want) {
		t.Fatalf("expected %d updates, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("update %d: got %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/")
	if err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, pattern, strings.NewReader("password=abcdefghijkl"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"strength":"strong"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
