package main

import (
	"os"
	"path/filepath"

	"github.com/goliatone/go-passfield/pkg/config"
	"github.com/goliatone/go-passfield/pkg/indicator"
)

// environment holds defaults read from PASSFIELD_* variables; flags override
// them.
type environment struct {
	Addr       string
	BasePath   string
	ConfigPath string
	ThemeDir   string
	LogLevel   string
}

func envFromOS() environment {
	return environment{
		Addr:       getEnv("PASSFIELD_ADDR", ":8080"),
		BasePath:   getEnv("PASSFIELD_BASE_PATH", "/"),
		ConfigPath: getEnv("PASSFIELD_CONFIG", ""),
		ThemeDir:   getEnv("PASSFIELD_THEME_DIR", ""),
		LogLevel:   getEnv("PASSFIELD_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// loadConfig reads the config at path (defaults when empty) and applies its
// theme from the manifests under themeDir. A config naming a theme without a
// theme dir is an error.
func loadConfig(path, themeDir string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if cfg.Theme.Name == "" {
		return cfg, nil
	}

	var selector indicator.ThemeSelector
	if themeDir != "" {
		loaded, err := config.NewThemeSelector(os.DirFS(themeDir), ".")
		if err != nil {
			return config.Config{}, err
		}
		selector = loaded
	}
	if err := cfg.ApplyTheme(selector); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
