// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/woozymasta/treescan"
)

// diffCommandOptions are flags of the diff command.
type diffCommandOptions struct {
	patterns patternFlags
	baseline string
	output   string
	write    bool
	exitCode bool
}

// NewDiffCommand creates the 'treescan diff' command.
func NewDiffCommand(g *globalOptions) *cobra.Command {
	o := &diffCommandOptions{}

	cmd := &cobra.Command{
		Use:   "diff [dir] --baseline <file>",
		Short: "Compare included files with a baseline list",
		Long: `Scan a directory tree and compare its included files with a baseline
list of relative paths, one per line. Paths are compared by identity only.

With --write the baseline is replaced by the current list; a missing
baseline then counts as empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, g, o, dirArg(args))
		},
	}

	o.patterns.register(cmd)
	cmd.Flags().StringVarP(&o.baseline, "baseline", "b", "", "baseline file with one path per line")
	cmd.Flags().StringVarP(&o.output, "output", "o", outputText, "output format: text, yaml")
	cmd.Flags().BoolVarP(&o.write, "write", "w", false, "write the current list to the baseline file")
	cmd.Flags().BoolVar(&o.exitCode, "exit-code", false, "fail when included files changed")
	_ = cmd.MarkFlagRequired("baseline")

	return cmd
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, g *globalOptions, o *diffCommandOptions, dir string) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	sess, err := g.open(cmd, dir, o.patterns.overrides(cmd))
	if err != nil {
		return err
	}

	old, err := readBaseline(o.baseline, o.write)
	if err != nil {
		return sess.fail(err)
	}

	opts, err := sess.scanOptions(dir)
	if err != nil {
		return sess.fail(err)
	}

	scanner, err := treescan.NewScanner(opts)
	if err != nil {
		return sess.fail(err)
	}

	result, err := scanner.DiffIncludedFiles(old)
	if err != nil {
		return sess.fail(err)
	}

	sess.log.WithField("baseline", o.baseline).
		Debugf("diff: %d added, %d removed", len(result.Added), len(result.Removed))

	if o.output == outputYAML {
		if err := sess.out.yaml(result); err != nil {
			return sess.fail(err)
		}
	} else {
		sess.out.diff(result)
	}

	if o.write {
		if err := writeBaseline(o.baseline, scanner.IncludedFiles()); err != nil {
			return sess.fail(err)
		}
	}

	if o.exitCode && !result.Empty() {
		return ErrChanged
	}

	return nil
}

// readBaseline loads a baseline list. A missing file is empty when allowMissing is set.
func readBaseline(path string, allowMissing bool) ([]string, error) {
	paths, err := treescan.LoadPatternsFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read baseline: %w", err)
	}

	return paths, nil
}

// writeBaseline replaces the baseline file with paths, one per line.
func writeBaseline(path string, paths []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".baseline-*")
	if err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	for _, p := range paths {
		_, _ = w.WriteString(escapeBaselineLine(p))
		_ = w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write baseline: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}

	return nil
}

// escapeBaselineLine protects characters that the list parser would strip.
func escapeBaselineLine(p string) string {
	if strings.HasPrefix(p, "#") {
		p = `\` + p
	}

	if n := len(p); n > 0 && (p[n-1] == ' ' || p[n-1] == '\t') {
		p = p[:n-1] + `\` + p[n-1:]
	}

	return p
}
