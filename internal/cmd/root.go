// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

// Package cmd implements the treescan command line interface.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// ErrChanged is returned by diff --exit-code when the tree differs from the baseline.
var ErrChanged = errors.New("included files changed")

// globalOptions holds persistent flags shared by all subcommands.
type globalOptions struct {
	configPath string
	logLevel   string
	color      string
}

// NewRootCommand creates the root treescan command.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "treescan",
		Short: "Classify directory trees with include and exclude glob patterns",
		Long: `Treescan walks a directory tree and classifies every file and directory
as included, excluded or not included by ordered lists of glob patterns.

Patterns are "/"-separated. "*" and "?" match within one segment, "**"
matches any number of segments. "%regex[...]" wraps a regular expression
matched against the whole relative path.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "YAML config file (default <dir>/.treescan.yaml)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&g.color, "color", "", "colored output: auto, always, never")

	cmd.AddCommand(NewScanCommand(g))
	cmd.AddCommand(NewMatchCommand(g))
	cmd.AddCommand(NewDiffCommand(g))
	cmd.AddCommand(NewWatchCommand(g))

	return cmd
}
