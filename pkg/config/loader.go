package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

// Load reads and parses path from fsys.
func Load(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML document and merges it over Default. source is
// only used in error messages.
func Parse(data []byte, source string) (Config, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Source = source

	if doc.Policy != nil {
		applyPolicy(&cfg.Policy, *doc.Policy)
	}
	if err := cfg.Policy.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}

	if doc.Labels != nil {
		if err := applyLabels(&cfg.Labels, *doc.Labels, source); err != nil {
			return Config{}, err
		}
	}
	if doc.Palette != nil {
		if err := applyPalette(&cfg.Palette, *doc.Palette, source); err != nil {
			return Config{}, err
		}
	}
	if doc.Theme != nil {
		cfg.Theme = ThemeConfig{
			Name:    strings.TrimSpace(doc.Theme.Name),
			Variant: strings.TrimSpace(doc.Theme.Variant),
		}
	}
	return cfg, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func applyPolicy(p *strength.Policy, raw policyFile) {
	if raw.Mode != nil {
		p.Mode = strength.Mode(strings.ToLower(strings.TrimSpace(*raw.Mode)))
	}
	if raw.MediumLength != nil {
		p.MediumLength = *raw.MediumLength
	}
	if raw.StrongLength != nil {
		p.StrongLength = *raw.StrongLength
	}
	if raw.DiverseClassCount != nil {
		p.DiverseClassCount = *raw.DiverseClassCount
	}
	if raw.DiversityDiscount != nil {
		p.DiversityDiscount = *raw.DiversityDiscount
	}
}

func applyLabels(l *indicator.Labels, raw labelsFile, source string) error {
	targets := []struct {
		name   string
		raw    string
		target *string
	}{
		{"weak", raw.Weak, &l.Weak},
		{"medium", raw.Medium, &l.Medium},
		{"strong", raw.Strong, &l.Strong},
	}
	for _, t := range targets {
		if strings.TrimSpace(t.raw) == "" {
			continue
		}
		clean := sanitizeLabel(t.raw)
		if clean == "" {
			return fmt.Errorf("config: %s: label %s is empty after sanitising", source, t.name)
		}
		*t.target = clean
	}
	return nil
}

func applyPalette(p *indicator.Palette, raw paletteFile, source string) error {
	targets := []struct {
		name   string
		raw    string
		target *indicator.Color
	}{
		{"unused", raw.Unused, &p.Unused},
		{"weak", raw.Weak, &p.Weak},
		{"medium", raw.Medium, &p.Medium},
		{"strong", raw.Strong, &p.Strong},
	}
	for _, t := range targets {
		if strings.TrimSpace(t.raw) == "" {
			continue
		}
		c, err := indicator.ParseHex(t.raw)
		if err != nil {
			return fmt.Errorf("config: %s: palette %s: %w", source, t.name, err)
		}
		*t.target = c
	}
	return nil
}
