package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// manifestNames are the file names theme.LoadDir looks for.
var manifestNames = []string{
	"theme.json",
	"theme.yaml",
	"theme.yml",
	"manifest.json",
	"manifest.yaml",
	"manifest.yml",
}

// LoadThemes registers the theme manifest in dir and the ones in its immediate
// subdirectories. It fails when no manifest is found.
func LoadThemes(fsys fs.FS, dir string) (*theme.MemoryRegistry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("config: theme filesystem is nil")
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	dir = path.Clean(dir)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("config: read theme dir %s: %w", dir, err)
	}

	candidates := []string{dir}
	for _, entry := range entries {
		if entry.IsDir() {
			candidates = append(candidates, path.Join(dir, entry.Name()))
		}
	}

	registry := theme.NewRegistry()
	loaded := 0
	for _, candidate := range candidates {
		if !hasManifest(fsys, candidate) {
			continue
		}
		manifest, err := theme.LoadDir(fsys, candidate)
		if err != nil {
			return nil, fmt.Errorf("config: theme %s: %w", candidate, err)
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("config: theme %s: %w", candidate, err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("config: no theme manifests under %s", dir)
	}
	return registry, nil
}

// NewThemeSelector loads the themes under dir and returns a selector over
// them, suitable for (*Config).ApplyTheme.
func NewThemeSelector(fsys fs.FS, dir string) (theme.Selector, error) {
	registry, err := LoadThemes(fsys, dir)
	if err != nil {
		return theme.Selector{}, err
	}
	return theme.Selector{Registry: registry}, nil
}

func hasManifest(fsys fs.FS, dir string) bool {
	for _, name := range manifestNames {
		info, err := fs.Stat(fsys, path.Join(dir, name))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
