// Package config loads the optional user configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultIndexURL is the crates.io sparse index.
const DefaultIndexURL = "https://index.crates.io"

// Config holds user-level settings loaded from config.yml.
type Config struct {
	LogLevel  string `yaml:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty"`

	// IndexURL is the base of the sparse crate index used by
	// --check-versions.
	IndexURL string `yaml:"indexURL,omitempty"`

	// Versions pins shared crates to versions other than the built-in
	// ones, keyed by crate name.
	Versions map[string]string `yaml:"versions,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/cargo-dimension/config.yml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset. getenv must return "" for
// unset variables.
func DefaultPath(getenv func(string) string, homeDir string) string {
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(base, "cargo-dimension", "config.yml")
}

// Load reads the config file at path. A missing file yields a zero Config
// unless mustExist is set, which is the case for an explicit --config.
func Load(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks enumerated fields. Version pins are checked against the
// registry when they are applied.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logLevel %q (want debug, info, warn or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logFormat %q (want text or json)", c.LogFormat)
	}
	return nil
}

// IndexURLOrDefault returns IndexURL, or DefaultIndexURL when unset.
func (c *Config) IndexURLOrDefault() string {
	if c.IndexURL == "" {
		return DefaultIndexURL
	}
	return c.IndexURL
}
