// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/treescan"
)

// Values of the --show flag.
const (
	showIncluded    = "included"
	showExcluded    = "excluded"
	showNotIncluded = "not-included"
	showAll         = "all"
)

// scanLists are the files and directories of one classification.
type scanLists struct {
	Files       []string `yaml:"files"`
	Directories []string `yaml:"directories,omitempty"`
}

// scanReport is the YAML form of scan results.
type scanReport struct {
	Basedir     string     `yaml:"basedir"`
	Included    *scanLists `yaml:"included,omitempty"`
	Excluded    *scanLists `yaml:"excluded,omitempty"`
	NotIncluded *scanLists `yaml:"not_included,omitempty"`
}

// scanCommandOptions are flags of the scan command.
type scanCommandOptions struct {
	patterns patternFlags
	show     string
	output   string
	dirs     bool
}

// NewScanCommand creates the 'treescan scan' command.
func NewScanCommand(g *globalOptions) *cobra.Command {
	o := &scanCommandOptions{}

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List classified files of a directory tree",
		Long: `Walk a directory tree and print files matching the configured patterns.

By default only included files are listed. Use --show to list excluded or
not-included entries; those require a complete walk of pruned subtrees.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, g, o, dirArg(args))
		},
	}

	o.patterns.register(cmd)
	cmd.Flags().StringVar(&o.show, "show", showIncluded, "entries to list: included, excluded, not-included, all")
	cmd.Flags().StringVarP(&o.output, "output", "o", outputText, "output format: text, yaml")
	cmd.Flags().BoolVar(&o.dirs, "dirs", false, "list directories as well as files")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, g *globalOptions, o *scanCommandOptions, dir string) error {
	if err := validateShow(o.show); err != nil {
		return err
	}
	if err := validateOutput(o.output); err != nil {
		return err
	}

	sess, err := g.open(cmd, dir, o.patterns.overrides(cmd))
	if err != nil {
		return err
	}

	opts, err := sess.scanOptions(dir)
	if err != nil {
		return sess.fail(err)
	}

	scanner, err := treescan.NewScanner(opts)
	if err != nil {
		return sess.fail(err)
	}

	if err := scanner.Scan(); err != nil {
		return sess.fail(err)
	}

	report, err := collectReport(scanner, o.show, o.dirs)
	if err != nil {
		return sess.fail(err)
	}

	report.Basedir = dir
	if o.output == outputYAML {
		return sess.fail(sess.out.yaml(report))
	}

	printReport(sess.out, report, o.show == showAll)
	return nil
}

// collectReport gathers the lists selected by show.
func collectReport(s *treescan.Scanner, show string, dirs bool) (scanReport, error) {
	var report scanReport

	if show == showIncluded || show == showAll {
		report.Included = &scanLists{Files: s.IncludedFiles()}
		if dirs {
			report.Included.Directories = s.IncludedDirectories()
		}
	}

	if show == showExcluded || show == showAll {
		lists, err := collectLists(s.ExcludedFiles, s.ExcludedDirectories, dirs)
		if err != nil {
			return scanReport{}, err
		}

		report.Excluded = lists
	}

	if show == showNotIncluded || show == showAll {
		lists, err := collectLists(s.NotIncludedFiles, s.NotIncludedDirectories, dirs)
		if err != nil {
			return scanReport{}, err
		}

		report.NotIncluded = lists
	}

	return report, nil
}

// collectLists calls lazy scanner getters.
func collectLists(files func() ([]string, error), directories func() ([]string, error), dirs bool) (*scanLists, error) {
	f, err := files()
	if err != nil {
		return nil, err
	}

	lists := &scanLists{Files: f}
	if !dirs {
		return lists, nil
	}

	d, err := directories()
	if err != nil {
		return nil, err
	}

	lists.Directories = d
	return lists, nil
}

// printReport prints report lists in text form.
func printReport(p *printer, report scanReport, tagged bool) {
	sections := []struct {
		lists *scanLists
		class treescan.Classification
	}{
		{report.Included, treescan.Included},
		{report.Excluded, treescan.Excluded},
		{report.NotIncluded, treescan.NotIncluded},
	}

	for _, section := range sections {
		if section.lists == nil {
			continue
		}

		for _, name := range section.lists.Directories {
			p.path(section.class, displayName(name)+"/", tagged)
		}

		for _, name := range section.lists.Files {
			p.path(section.class, name, tagged)
		}
	}
}

// validateShow checks a --show value.
func validateShow(show string) error {
	switch show {
	case showIncluded, showExcluded, showNotIncluded, showAll:
		return nil
	default:
		return fmt.Errorf("%w: invalid show %q, must be one of: included, excluded, not-included, all",
			treescan.ErrConfiguration, show)
	}
}

// dirArg returns the directory argument or the current directory.
func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}
