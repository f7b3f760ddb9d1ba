package indicator

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token keys read by PaletteFromSelection.
const (
	TokenUnused = "password.strength.unused"
	TokenWeak   = "password.strength.weak"
	TokenMedium = "password.strength.medium"
	TokenStrong = "password.strength.strong"
)

// ThemeSelector resolves a theme and variant to a selection. It matches the
// selector shape exposed by go-theme registries.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// ResolvePalette selects name/variant through selector and overlays its tokens
// on base.
func ResolvePalette(selector ThemeSelector, name, variant string, base Palette) (Palette, error) {
	if selector == nil {
		return base, errors.New("indicator: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return base, fmt.Errorf("indicator: select theme %q/%q: %w", name, variant, err)
	}
	return PaletteFromSelection(selection, base)
}

// PaletteFromSelection overlays manifest tokens, then the selected variant's
// tokens, on base. Missing tokens keep the base colour; a selected variant the
// manifest does not declare is an error.
func PaletteFromSelection(selection *theme.Selection, base Palette) (Palette, error) {
	if selection == nil || selection.Manifest == nil {
		return base, nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if selection.Variant != "" {
		variant, ok := selection.Manifest.Variants[selection.Variant]
		if !ok {
			return base, fmt.Errorf("indicator: theme %q has no variant %q", selection.Theme, selection.Variant)
		}
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	out := base
	targets := []struct {
		key   string
		color *Color
	}{
		{TokenUnused, &out.Unused},
		{TokenWeak, &out.Weak},
		{TokenMedium, &out.Medium},
		{TokenStrong, &out.Strong},
	}
	for _, target := range targets {
		raw, ok := tokens[target.key]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		c, err := ParseHex(raw)
		if err != nil {
			return base, fmt.Errorf("indicator: theme %q token %s: %w", selection.Theme, target.key, err)
		}
		*target.color = c
	}
	return out, nil
}
