// SPDX-License-Identifier: MIT

// Package config loads wordgraph settings from an optional YAML or TOML file
// and WORDGRAPH_* environment variables.
//
// Precedence, lowest to highest: Default(), the file, the environment.
// Files ending in .toml are decoded as TOML; anything else as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvBaseDir   = "WORDGRAPH_BASE_DIR"
	EnvGraphFile = "WORDGRAPH_GRAPH_FILE"
	EnvWalkFile  = "WORDGRAPH_WALK_FILE"
	EnvLogLevel  = "WORDGRAPH_LOG_LEVEL"
	EnvLogFormat = "WORDGRAPH_LOG_FORMAT"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds session settings.
type Config struct {
	// BaseDir confines which input files may be read.
	BaseDir string `yaml:"base_dir" toml:"base_dir"`

	// GraphFile receives the edge-list export.
	GraphFile string `yaml:"graph_file" toml:"graph_file"`

	// WalkFile receives the last random walk.
	WalkFile string `yaml:"walk_file" toml:"walk_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" toml:"log_format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BaseDir:   ".",
		GraphFile: "file/graph.txt",
		WalkFile:  "file/random_walk.txt",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			_, err = toml.Decode(string(data), cfg)
		} else {
			err = yaml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from set WORDGRAPH_* variables.
func (c *Config) ApplyEnv() {
	c.BaseDir = getEnv(EnvBaseDir, c.BaseDir)
	c.GraphFile = getEnv(EnvGraphFile, c.GraphFile)
	c.WalkFile = getEnv(EnvWalkFile, c.WalkFile)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
}

// Validate rejects empty paths and unknown log settings.
func (c *Config) Validate() error {
	switch {
	case c.BaseDir == "":
		return fmt.Errorf("%w: base_dir is empty", ErrInvalid)
	case c.GraphFile == "":
		return fmt.Errorf("%w: graph_file is empty", ErrInvalid)
	case c.WalkFile == "":
		return fmt.Errorf("%w: walk_file is empty", ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
