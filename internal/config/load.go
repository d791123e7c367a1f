package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
)

// Load builds a Config from the defaults overlaid with the YAML file at path.
// An empty path returns the defaults. Flags are applied by the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}

	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "config file not readable")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "config file is not valid YAML")
	}
	return nil
}
