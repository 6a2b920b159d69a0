// Package config loads settings for the tipo command line tools from
// TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the tipo commands.
type Config struct {
	Output Output `toml:"output" yaml:"output"`
	Watch  Watch  `toml:"watch" yaml:"watch"`
}

// Output controls how tokens and syntax trees are printed.
type Output struct {
	Comments bool `toml:"comments" yaml:"comments"`
	Indent   int  `toml:"indent" yaml:"indent"`
}

// Watch controls which files the watch command recompiles.
type Watch struct {
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// Default returns the settings used when no configuration file is given.
func Default() *Config {
	return &Config{
		Output: Output{
			Comments: false,
			Indent:   2,
		},
		Watch: Watch{
			Extensions: []string{".tp"},
		},
	}
}

// Load reads the file at path and unmarshals it over the defaults. The
// format follows the file extension: .toml, .yaml or .yml. An empty
// path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	return cfg, nil
}
