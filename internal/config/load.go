package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in standard locations.
const FileName = "config.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load(fsys afero.Fs, flags *Flags) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Explicit path takes priority over the search
	configPath := ""
	if flags != nil {
		configPath = flags.ConfigPath
	}
	if configPath == "" {
		configPath = findConfigFile(fsys)
	}

	if configPath != "" {
		if err := loadFromFile(fsys, cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile(fsys afero.Fs) string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if ok, _ := afero.Exists(fsys, path); ok {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "scenegen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "scenegen")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenegen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenegen")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(fsys afero.Fs, cfg *Config, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
