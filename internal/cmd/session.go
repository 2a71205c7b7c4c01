// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/woozymasta/treescan"
	"github.com/woozymasta/treescan/internal/config"
)

// patternFlags are pattern and matching flags shared by commands that classify paths.
type patternFlags struct {
	includes     []string
	excludes     []string
	includeFiles []string
	excludeFiles []string
	extensions   []string

	defaultExcludes bool
	ignoreCase      bool
	noFollow        bool
}

// register adds pattern flags to cmd.
func (p *patternFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&p.includes, "include", "i", nil, "include pattern (repeatable)")
	flags.StringArrayVarP(&p.excludes, "exclude", "e", nil, "exclude pattern (repeatable)")
	flags.StringArrayVar(&p.includeFiles, "include-file", nil, "file with include patterns, one per line")
	flags.StringArrayVar(&p.excludeFiles, "exclude-file", nil, "file with exclude patterns, one per line")
	flags.StringSliceVar(&p.extensions, "ext", nil, "include files with these extensions")
	flags.BoolVar(&p.defaultExcludes, "default-excludes", false, "add built-in VCS and editor excludes")
	flags.BoolVar(&p.ignoreCase, "ignore-case", false, "match patterns case-insensitively")
	flags.BoolVar(&p.noFollow, "no-follow", false, "do not descend into symbolic links to directories")
}

// overrides converts flags that were set into config overrides.
func (p *patternFlags) overrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{
		Includes:     p.includes,
		Excludes:     p.excludes,
		IncludeFiles: p.includeFiles,
		ExcludeFiles: p.excludeFiles,
		Extensions:   p.extensions,
	}

	flags := cmd.Flags()
	if flags.Changed("default-excludes") {
		o.DefaultExcludes = &p.defaultExcludes
	}
	if flags.Changed("ignore-case") {
		o.IgnoreCase = &p.ignoreCase
	}
	if flags.Changed("no-follow") {
		o.NoFollowSymlinks = &p.noFollow
	}

	return o
}

// session is the resolved runtime of one command invocation.
type session struct {
	cfg *config.Config
	log *logrus.Logger
	out *printer
}

// open loads config for dir, applies flag overrides and prepares logging and output.
func (g *globalOptions) open(cmd *cobra.Command, dir string, o config.Overrides) (*session, error) {
	cfg, err := g.loadConfig(dir)
	if err != nil {
		return nil, err
	}

	if g.logLevel != "" {
		o.LogLevel = &g.logLevel
	}
	if g.color != "" {
		o.Color = &g.color
	}

	cfg.MergeWithFlags(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg: cfg,
		log: log,
		out: newPrinter(cmd.OutOrStdout(), cfg.Color),
	}, nil
}

// loadConfig reads the explicit --config file or the default file in dir.
func (g *globalOptions) loadConfig(dir string) (*config.Config, error) {
	if g.configPath == "" {
		return config.LoadConfigFromDir(dir)
	}

	if _, err := os.Stat(g.configPath); err != nil {
		return nil, fmt.Errorf("%w: config file: %w", treescan.ErrConfiguration, err)
	}

	return config.LoadConfig(g.configPath)
}

// scanOptions builds scanner options with the session logger attached.
func (s *session) scanOptions(basedir string) (treescan.ScanOptions, error) {
	opts, err := s.cfg.ScanOptions(basedir)
	if err != nil {
		return treescan.ScanOptions{}, err
	}

	opts.Logger = s.log
	return opts, nil
}

// fail logs the stack trace of err at debug level and returns it.
func (s *session) fail(err error) error {
	if err != nil {
		s.log.Debug(treescan.ErrorStack(err))
	}

	return err
}

// newLogger creates a text logger writing to w.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", treescan.ErrConfiguration, err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return log, nil
}
