package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultIterations = 100000
	DefaultLogLevel   = "info"
)

// Config holds the user defaults read from the config file. Command line
// flags override these values.
type Config struct {
	Iterations int     `hcl:"iterations,optional"`
	Seed       *uint64 `hcl:"seed,optional"`
	LogLevel   string  `hcl:"log_level,optional"`
	Color      *bool   `hcl:"color,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	color := true
	return &Config{
		Iterations: DefaultIterations,
		LogLevel:   DefaultLogLevel,
		Color:      &color,
	}
}

// DefaultPath returns ~/.config/theb/config.hcl
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "theb", "config.hcl")
	}
	return filepath.Join(home, ".config", "theb", "config.hcl")
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Iterations == 0 {
		config.Iterations = DefaultIterations
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.Color == nil {
		color := true
		config.Color = &color
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
