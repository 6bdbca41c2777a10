package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "gtool.json"

type Config struct {
	LogFile   string `json:"log_file"`
	LogLevel  string `json:"log_level"`
	LineWidth int    `json:"line_width"`
	OutDir    string `json:"out_dir"`
	Color     string `json:"color"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{LogLevel: "info", LineWidth: 60, OutDir: ".", Color: "auto"}
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks for ./gtool.json.
// A missing file is not an error: defaults are returned. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.Color) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("line_width must not be negative, got %d", c.LineWidth)
	}
	return nil
}
