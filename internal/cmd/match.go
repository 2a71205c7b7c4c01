// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/woozymasta/treescan"
)

// matchResult is the YAML form of one classified path.
type matchResult struct {
	Path           string `yaml:"path"`
	Classification string `yaml:"classification"`
	// CouldHold reports whether the path as a directory may contain included entries.
	CouldHold bool `yaml:"could_hold_included"`

	class treescan.Classification
}

// matchCommandOptions are flags of the match command.
type matchCommandOptions struct {
	patterns patternFlags
	output   string
}

// NewMatchCommand creates the 'treescan match' command.
func NewMatchCommand(g *globalOptions) *cobra.Command {
	o := &matchCommandOptions{}

	cmd := &cobra.Command{
		Use:   "match <path>...",
		Short: "Classify relative paths without walking the filesystem",
		Long: `Classify each relative path argument as included, excluded or not-included.

Paths are not required to exist. The config file is looked up in the
current directory unless --config is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, g, o, args)
		},
	}

	o.patterns.register(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", outputText, "output format: text, yaml")

	return cmd
}

// runMatch executes the match command.
func runMatch(cmd *cobra.Command, g *globalOptions, o *matchCommandOptions, paths []string) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	sess, err := g.open(cmd, ".", o.patterns.overrides(cmd))
	if err != nil {
		return err
	}

	mo, err := sess.cfg.MatcherOptions()
	if err != nil {
		return sess.fail(err)
	}

	m, err := treescan.NewMatcher(mo)
	if err != nil {
		return sess.fail(err)
	}

	results := make([]matchResult, 0, len(paths))
	for _, path := range paths {
		name := treescan.NormalizePath(path)
		class := m.Classify(name)
		results = append(results, matchResult{
			Path:           name,
			Classification: class.String(),
			CouldHold:      m.CouldHoldIncluded(name),
			class:          class,
		})
	}

	if o.output == outputYAML {
		return sess.fail(sess.out.yaml(results))
	}

	for _, r := range results {
		sess.out.path(r.class, r.Path, true)
	}

	return nil
}
