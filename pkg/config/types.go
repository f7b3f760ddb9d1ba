package config

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

// ErrThemeUnavailable is returned when a config names a theme but no theme
// selector was provided to resolve it.
var ErrThemeUnavailable = errors.New("config: theme configured but no theme directory loaded")

// Config is the resolved configuration.
type Config struct {
	Source  string
	Policy  strength.Policy
	Labels  indicator.Labels
	Palette indicator.Palette
	Theme   ThemeConfig
}

// ThemeConfig names the go-theme selection used to override the palette.
type ThemeConfig struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Policy:  strength.DefaultPolicy(),
		Labels:  indicator.DefaultLabels(),
		Palette: indicator.DefaultPalette(),
	}
}

// Classifier builds a classifier from the configured policy.
func (c Config) Classifier() (*strength.Classifier, error) {
	return strength.New(c.Policy)
}

// Indicator builds an indicator from the configured labels and palette.
func (c Config) Indicator() *indicator.Indicator {
	return indicator.New(
		indicator.WithPalette(c.Palette),
		indicator.WithLabels(c.Labels),
	)
}

// ApplyTheme overlays the palette tokens of the configured theme. It is a
// no-op when no theme name is configured and an error when one is configured
// but selector is nil.
func (c *Config) ApplyTheme(selector indicator.ThemeSelector) error {
	if c == nil || c.Theme.Name == "" {
		return nil
	}
	if selector == nil {
		return fmt.Errorf("%w: %q in %s", ErrThemeUnavailable, c.Theme.Name, c.sourceName())
	}
	palette, err := indicator.ResolvePalette(selector, c.Theme.Name, c.Theme.Variant, c.Palette)
	if err != nil {
		return fmt.Errorf("config: %s: %w", c.sourceName(), err)
	}
	c.Palette = palette
	return nil
}

func (c Config) sourceName() string {
	if c.Source == "" {
		return "config"
	}
	return c.Source
}

type documentFile struct {
	Policy  *policyFile  `json:"policy" yaml:"policy"`
	Labels  *labelsFile  `json:"labels" yaml:"labels"`
	Palette *paletteFile `json:"palette" yaml:"palette"`
	Theme   *ThemeConfig `json:"theme" yaml:"theme"`
}

type policyFile struct {
	Mode              *string `json:"mode" yaml:"mode"`
	MediumLength      *int    `json:"mediumLength" yaml:"mediumLength"`
	StrongLength      *int    `json:"strongLength" yaml:"strongLength"`
	DiverseClassCount *int    `json:"diverseClassCount" yaml:"diverseClassCount"`
	DiversityDiscount *int    `json:"diversityDiscount" yaml:"diversityDiscount"`
}

type labelsFile struct {
	Weak   string `json:"weak" yaml:"weak"`
	Medium string `json:"medium" yaml:"medium"`
	Strong string `json:"strong" yaml:"strong"`
}

type paletteFile struct {
	Unused string `json:"unused" yaml:"unused"`
	Weak   string `json:"weak" yaml:"weak"`
	Medium string `json:"medium" yaml:"medium"`
	Strong string `json:"strong" yaml:"strong"`
}
