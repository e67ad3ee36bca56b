// Package config provides server configuration and file loading.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Config holds the server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":4000".
	Addr string `json:"addr" yaml:"addr"`
	// Path is the URL path the GraphQL endpoint is served on.
	Path string `json:"path" yaml:"path"`
	// Introspection enables schema introspection queries.
	Introspection bool `json:"introspection" yaml:"introspection"`
	// Playground serves an HTML GraphiQL page on browser GET requests.
	Playground bool `json:"playground" yaml:"playground"`
	// SeedFile is an optional path to a YAML/JSON seed dataset. When empty
	// the built-in seed is used.
	SeedFile string `json:"seedFile,omitempty" yaml:"seedFile,omitempty"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	// LogFormat is the log output format (text, json).
	LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
}

// Default returns the default server configuration.
func Default() Config {
	return Config{
		Addr:          ":4000",
		Path:          "/graphql",
		Introspection: true,
		Playground:    true,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// LoadFromFile reads a Config from a YAML or JSON file. The format is
// detected by extension (.yaml/.yml for YAML, otherwise JSON). Fields not
// present in the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) == 0 {
		return cfg, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %q", c.Path)
	}
	return nil
}
