// Package config provides hierarchical configuration for chlog using koanf.
// Values are loaded with priority: environment variables (CHLOG_*) > user
// config (~/.config/chlog/config.yml) > legacy JSON config (~/.chlog/config.json)
// > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds chlog settings.
type Configuration struct {
	// StorePath is the changelog store file. Empty means the built-in
	// default (~/.chlog/store.yaml). Env: CHLOG_STORE_PATH (CHLOG_STORE
	// is also honored for compatibility with the root flag).
	StorePath string `koanf:"store_path"`

	// DefaultAuthor is applied to added changes when --author is omitted.
	DefaultAuthor string `koanf:"default_author"`

	// MaxVersions caps how many versions generate-md renders by default
	// (0 = all).
	MaxVersions int `koanf:"max_versions"`

	// Plain disables colored terminal output.
	Plain bool `koanf:"plain"`
}

// Load reads configuration from all sources in priority order.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		_ = k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("CHLOG_", ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// CHLOG_STORE mirrors the --store flag and wins over store_path.
	if v := os.Getenv("CHLOG_STORE"); v != "" {
		cfg.StorePath = v
	}

	return &cfg, nil
}

// defaults returns the built-in configuration values.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"store_path":     "",
		"default_author": "",
		"max_versions":   0,
		"plain":          false,
	}
}

// loadUserConfig loads the user config file. YAML at the XDG path is
// preferred; the legacy JSON path is read only when the YAML file is absent.
// A missing file in either location is not an error.
func loadUserConfig(k *koanf.Koanf) error {
	yamlPath, err := UserConfigPath()
	if err == nil && fileExists(yamlPath) {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading user config %s: %w", yamlPath, err)
		}
		return nil
	}

	legacyPath, err := LegacyConfigPath()
	if err == nil && fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy config %s: %w", legacyPath, err)
		}
	}

	return nil
}

// envKeyMapper maps CHLOG_STORE_PATH to store_path and so on.
func envKeyMapper(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHLOG_"))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
