// Package config loads and applies .inspect.yml configuration files for
// inspection defaults, output settings, and per-provider overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProviderOverride allows disabling a provider from configuration.
type ProviderOverride struct {
	Disabled bool `yaml:"disabled,omitempty"`
}

// Config represents the .inspect.yml configuration file.
type Config struct {
	// Enabled is the host default for the global inspection toggle.
	// nil means "not set" (inspection defaults to on).
	Enabled        *bool                       `yaml:"enabled,omitempty"`
	Collapsed      bool                        `yaml:"collapsed,omitempty"`
	Format         string                      `yaml:"format,omitempty"`
	FailOnProblems *bool                       `yaml:"fail_on_problems,omitempty"`
	PrefsPath      string                      `yaml:"prefs_path,omitempty"`
	Providers      map[string]ProviderOverride `yaml:"providers,omitempty"`
}

// EnabledOrDefault resolves the tri-state Enabled field.
func (c Config) EnabledOrDefault() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// Load reads the .inspect.yml or .inspect.yaml config file from the given
// path. If path is a file, its parent directory is used. If no config file is
// found, it returns a zero Config (not an error).
func Load(dir string) (Config, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range []string{".inspect.yml", ".inspect.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > 1<<20 {
			return Config{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Config{}, nil
}
