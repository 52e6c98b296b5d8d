package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the XDG-compliant user config file path:
// $XDG_CONFIG_HOME/chlog/config.yml (~/.config/chlog/config.yml on Linux).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chlog", "config.yml"), nil
}

// LegacyConfigPath returns the old JSON config location, ~/.chlog/config.json.
// Kept readable so existing setups keep working without migration.
func LegacyConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chlog", "config.json"), nil
}

// StateDir returns the directory for chlog's own state files
// (command history), ~/.chlog.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chlog"), nil
}
