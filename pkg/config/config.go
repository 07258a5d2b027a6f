// Package config loads clipdir's optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the settings that may be stored on disk.
type Config struct {
	// Ignore lists extra exact or glob patterns, applied before any --ignore flags
	Ignore []string `yaml:"ignore"`

	// Hidden includes dot-files and dot-directories
	Hidden bool `yaml:"hidden"`

	// VCSIgnore honours .gitignore, .ignore and git excludes
	VCSIgnore bool `yaml:"vcs_ignore"`

	// IgnoreFile is a gitignore-syntax file applied to every run
	IgnoreFile string `yaml:"ignore_file"`

	// Report selects the console report: list, document or tree
	Report string `yaml:"report"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		VCSIgnore: true,
		Report:    "list",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clipdir/config.yaml or the platform
// equivalent. It returns "" when no user config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "clipdir", "config.yaml")
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults; any other read or parse failure is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshalling into the defaults keeps every key the file omits.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// MergeWithFlags applies command-line values over the loaded configuration.
// Nil pointers mean the flag was not given. Ignore patterns from flags are
// appended after those from the file.
func (c *Config) MergeWithFlags(ignore []string, hidden, vcsIgnore *bool, ignoreFile, report *string) {
	c.Ignore = append(c.Ignore, ignore...)
	if hidden != nil {
		c.Hidden = *hidden
	}
	if vcsIgnore != nil {
		c.VCSIgnore = *vcsIgnore
	}
	if ignoreFile != nil {
		c.IgnoreFile = *ignoreFile
	}
	if report != nil {
		c.Report = *report
	}
}
