// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

// Package config loads treescan CLI settings from YAML files and merges them
// with command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/woozymasta/treescan"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the scanned directory.
const DefaultFileName = ".treescan.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is quiet time after the last filesystem event before a capture.
	Debounce time.Duration `yaml:"debounce"`
}

// Config represents treescan CLI options.
type Config struct {
	// Includes are include patterns.
	Includes []string `yaml:"includes"`
	// Excludes are exclude patterns.
	Excludes []string `yaml:"excludes"`
	// IncludeFiles are pattern list files appended to Includes.
	IncludeFiles []string `yaml:"include_files"`
	// ExcludeFiles are pattern list files appended to Excludes.
	ExcludeFiles []string `yaml:"exclude_files"`
	// Extensions add "**/*.ext" include patterns.
	Extensions []string `yaml:"extensions"`

	// DefaultExcludes appends the built-in exclude table.
	DefaultExcludes bool `yaml:"default_excludes"`
	// IgnoreCase matches patterns case-insensitively.
	IgnoreCase bool `yaml:"ignore_case"`
	// NoFollowSymlinks reports directory links without descending.
	NoFollowSymlinks bool `yaml:"no_follow_symlinks"`

	// LogLevel sets logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Color selects colored output: auto, always or never.
	Color string `yaml:"color"`

	// Watch configures the watch command.
	Watch WatchConfig `yaml:"watch"`
}

// Overrides carries flag values. Non-nil fields replace config values;
// non-empty slices are appended.
type Overrides struct {
	DefaultExcludes  *bool
	IgnoreCase       *bool
	NoFollowSymlinks *bool
	LogLevel         *string
	Color            *string
	Debounce         *time.Duration

	Includes     []string
	Excludes     []string
	IncludeFiles []string
	ExcludeFiles []string
	Extensions   []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    ColorAuto,
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// LoadConfig loads configuration from path.
// A missing file yields the default configuration without error. Relative
// pattern files resolve against the config file directory.
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

		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.IncludeFiles = resolvePaths(dir, cfg.IncludeFiles)
	cfg.ExcludeFiles = resolvePaths(dir, cfg.ExcludeFiles)
	return cfg, nil
}

// LoadConfigFromDir loads DefaultFileName from dir.
// A dir that is not an existing directory yields the default configuration.
func LoadConfigFromDir(dir string) (*Config, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return DefaultConfig(), nil
	}

	return LoadConfig(filepath.Join(dir, DefaultFileName))
}

// MergeWithFlags applies flag overrides. Flags take precedence over file values.
func (c *Config) MergeWithFlags(o Overrides) {
	if o.DefaultExcludes != nil {
		c.DefaultExcludes = *o.DefaultExcludes
	}
	if o.IgnoreCase != nil {
		c.IgnoreCase = *o.IgnoreCase
	}
	if o.NoFollowSymlinks != nil {
		c.NoFollowSymlinks = *o.NoFollowSymlinks
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.Debounce != nil {
		c.Watch.Debounce = *o.Debounce
	}

	c.Includes = append(c.Includes, o.Includes...)
	c.Excludes = append(c.Excludes, o.Excludes...)
	c.IncludeFiles = append(c.IncludeFiles, o.IncludeFiles...)
	c.ExcludeFiles = append(c.ExcludeFiles, o.ExcludeFiles...)
	c.Extensions = append(c.Extensions, o.Extensions...)
}

// Validate validates configuration values.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: invalid log_level %q, must be one of: trace, debug, info, warn, error",
			treescan.ErrConfiguration, c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: invalid color %q, must be one of: auto, always, never",
			treescan.ErrConfiguration, c.Color)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must be >= 0, got %v", treescan.ErrConfiguration, c.Watch.Debounce)
	}

	return nil
}

// MatcherOptions loads pattern files and expands extensions into matcher options.
func (c *Config) MatcherOptions() (treescan.MatcherOptions, error) {
	includeFiles, err := treescan.LoadPatternsFiles(c.IncludeFiles...)
	if err != nil {
		return treescan.MatcherOptions{}, fmt.Errorf("%w: include files: %w", treescan.ErrConfiguration, err)
	}

	excludeFiles, err := treescan.LoadPatternsFiles(c.ExcludeFiles...)
	if err != nil {
		return treescan.MatcherOptions{}, fmt.Errorf("%w: exclude files: %w", treescan.ErrConfiguration, err)
	}

	return treescan.MatcherOptions{
		Includes:           treescan.MergePatterns(c.Includes, includeFiles, treescan.ParseExtensions(c.Extensions)),
		Excludes:           treescan.MergePatterns(c.Excludes, excludeFiles),
		CaseInsensitive:    c.IgnoreCase,
		AddDefaultExcludes: c.DefaultExcludes,
	}, nil
}

// ScanOptions builds scanner options rooted at basedir.
func (c *Config) ScanOptions(basedir string) (treescan.ScanOptions, error) {
	mo, err := c.MatcherOptions()
	if err != nil {
		return treescan.ScanOptions{}, err
	}

	return treescan.ScanOptions{
		Basedir:          basedir,
		MatcherOptions:   mo,
		NoFollowSymlinks: c.NoFollowSymlinks,
	}, nil
}

// resolvePaths joins relative paths with dir.
func resolvePaths(dir string, paths []string) []string {
	if len(paths) == 0 {
		return paths
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}

		out[i] = filepath.Join(dir, p)
	}

	return out
}
