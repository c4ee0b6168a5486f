package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSaveTarget selects Save instead of SaveTo in WriteTo.
const DefaultSaveTarget = "default"

// WriteTo saves the config to target, or to the user's config directory when
// target is DefaultSaveTarget. It returns the path written.
func (c *Config) WriteTo(target string) (string, error) {
	if target == DefaultSaveTarget {
		return filepath.Join(ConfigDir(), "config.yaml"), c.Save()
	}
	return target, c.SaveTo(target)
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
