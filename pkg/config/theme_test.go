package config

import (
	"errors"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-passfield/pkg/indicator"
)

func themeFS() fstest.MapFS {
	return fstest.MapFS{
		"themes/acme/theme.yaml": {Data: []byte(`
name: acme
version: 1.0.0
tokens:
  password.strength.weak: "#aa0000"
variants:
  dark:
    tokens:
      password.strength.unused: "#202020"
`)},
		"themes/plain/manifest.json": {Data: []byte(`{"name":"plain","version":"0.1.0","tokens":{"password.strength.strong":"#00cc00"}}`)},
		"themes/notes/README.md":     {Data: []byte("not a theme")},
	}
}

func TestLoadThemes_RegistersSubdirectories(t *testing.T) {
	registry, err := LoadThemes(themeFS(), "themes")
	require.NoError(t, err)

	refs := registry.Themes()
	require.Len(t, refs, 2)
	require.Equal(t, "acme", refs[0].Name)
	require.Equal(t, "plain", refs[1].Name)
}

func TestLoadThemes_Errors(t *testing.T) {
	_, err := LoadThemes(nil, "themes")
	require.Error(t, err)

	_, err = LoadThemes(themeFS(), "missing")
	require.Error(t, err)

	_, err = LoadThemes(themeFS(), "themes/notes")
	require.ErrorContains(t, err, "no theme manifests")

	broken := fstest.MapFS{"themes/bad/theme.json": {Data: []byte(`{"name":"bad"}`)}}
	_, err = LoadThemes(broken, "themes")
	require.Error(t, err, "manifest without version fails validation")
}

func TestApplyTheme_WithLoadedSelector(t *testing.T) {
	selector, err := NewThemeSelector(themeFS(), "themes")
	require.NoError(t, err)

	cfg, err := Parse([]byte("theme:\n  name: acme\n  variant: dark\n"), "passfield.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyTheme(selector))

	require.Equal(t, "#aa0000", cfg.Palette.Weak.Hex())
	require.Equal(t, "#202020", cfg.Palette.Unused.Hex())
	require.Equal(t, indicator.DefaultPalette().Strong, cfg.Palette.Strong)
}

func TestApplyTheme_UnresolvedThemeFails(t *testing.T) {
	cfg, err := Parse([]byte("theme:\n  name: does-not-exist\n  variant: dark\n"), "passfield.yaml")
	require.NoError(t, err)

	err = cfg.ApplyTheme(nil)
	require.True(t, errors.Is(err, ErrThemeUnavailable), "got %v", err)
	require.ErrorContains(t, err, "passfield.yaml")

	selector, err := NewThemeSelector(themeFS(), "themes")
	require.NoError(t, err)
	err = cfg.ApplyTheme(selector)
	require.True(t, errors.Is(err, theme.ErrThemeNotFound), "got %v", err)
	require.Equal(t, indicator.DefaultPalette(), cfg.Palette)

	cfg.Theme = ThemeConfig{Name: "acme", Variant: "sepia"}
	require.Error(t, cfg.ApplyTheme(selector), "undeclared variant")
}
