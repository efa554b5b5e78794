// Package config loads the optional flightdeck YAML config file.
//
// Everything in the file has a flag equivalent; flags win. A missing file
// is not an error and yields defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/flightdeck/internal/report"
)

// EnvConfigPath names the environment variable consulted when --config is
// not given.
const EnvConfigPath = "FLIGHTDECK_CONFIG"

// Config holds tool-level settings.
type Config struct {
	// Database is the path to the SQLite flights dataset.
	Database string `yaml:"database,omitempty"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format,omitempty"`

	// Palette overrides the bar chart color cycle.
	Palette []string `yaml:"palette,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:  "text",
		Palette: report.DefaultPalette,
	}
}

// Load reads the config file at path, falling back to the FLIGHTDECK_CONFIG
// environment variable when path is empty, and to Default when neither is
// set or the file does not exist. Unknown fields are rejected.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Format != "" && c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format %q: must be \"text\" or \"json\"", c.Format)
	}
	return nil
}
