// Package config handles loading configuration from .figembedrc files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config file names, in lookup order within a directory.
const (
	DefaultConfigFileName = ".figembedrc.yaml"
	AltYAMLFileName       = ".figembedrc.yml"
	TOMLConfigFileName    = ".figembedrc.toml"
)

// configFileNames is the lookup order used by FindAndLoad.
var configFileNames = []string{DefaultConfigFileName, AltYAMLFileName, TOMLConfigFileName}

// Config represents the complete configuration structure.
type Config struct {
	// Types are the source file types to scan (e.g. "ts", "tsx").
	Types   []string      `yaml:"types" toml:"types"`
	Scan    ScanConfig    `yaml:"scan" toml:"scan"`
	Ignore  IgnoreConfig  `yaml:"ignore" toml:"ignore"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// ScanConfig narrows the set of scanned files.
type ScanConfig struct {
	// Include glob patterns, relative to the scan root. Empty means everything.
	Include []string `yaml:"include" toml:"include"`
	// Exclude glob patterns, relative to the scan root.
	// Example: "node_modules/**", "**/*.test.ts"
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// IgnoreConfig lists markers that check should skip.
type IgnoreConfig struct {
	// IDs are Figma file ids; every marker pointing at one is skipped.
	IDs []string `yaml:"ids" toml:"ids"`
	// Patterns are globs matched against the payload, e.g. "embed:TODO*".
	Patterns []string `yaml:"patterns" toml:"patterns"`
	// Regex are regular expressions matched against the payload.
	Regex []string `yaml:"regex" toml:"regex"`
}

// OutputConfig controls how check reports are rendered.
type OutputConfig struct {
	Format  string `yaml:"format" toml:"format"`
	ShowAll bool   `yaml:"show_all" toml:"show_all"`
}

// PreviewConfig controls the generated preview page.
type PreviewConfig struct {
	Title string `yaml:"title" toml:"title"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Load reads configuration from the current directory.
// Returns an empty config if no file exists (not an error).
func Load() (*Config, error) {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return LoadFrom(name)
		}
	}
	return &Config{}, nil
}

// LoadFrom reads configuration from a specific path. The format is chosen
// by extension: .toml is TOML, anything else YAML.
// Returns an empty config if the file doesn't exist (not an error).
// Returns an error only if the file exists but cannot be parsed.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// This allows project-specific configs to be found from subdirectories.
// The returned path is empty when no file was found.
func FindAndLoad(startDir string) (*Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", err
	}
	// A file argument starts the search in its directory.
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, name := range configFileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				cfg, err := LoadFrom(configPath)
				return cfg, configPath, err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return &Config{}, "", nil
		}
		dir = parent
	}
}

// IsEmpty returns true if nothing is configured.
func (c *Config) IsEmpty() bool {
	return len(c.Types) == 0 &&
		len(c.Scan.Include) == 0 &&
		len(c.Scan.Exclude) == 0 &&
		len(c.Ignore.IDs) == 0 &&
		len(c.Ignore.Patterns) == 0 &&
		len(c.Ignore.Regex) == 0 &&
		c.Output.Format == "" &&
		!c.Output.ShowAll &&
		c.Preview.Title == "" &&
		c.Log.Level == ""
}

// HasTypes reports whether the config selects file types.
func (c *Config) HasTypes() bool {
	return len(c.Types) > 0
}

// Validate checks values that can be checked without the rest of the program.
// File types and output formats are validated by their owning packages.
func (c *Config) Validate() error {
	for _, p := range c.Scan.Include {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid scan.include pattern %q: %w", p, err)
		}
	}
	for _, p := range c.Scan.Exclude {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid scan.exclude pattern %q: %w", p, err)
		}
	}
	for _, p := range c.Ignore.Patterns {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid ignore.patterns entry %q: %w", p, err)
		}
	}
	for _, p := range c.Ignore.Regex {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid ignore.regex entry %q: %w", p, err)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	return nil
}
