// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/woozymasta/treescan"
	"github.com/woozymasta/treescan/internal/config"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// printer writes command results with optional colors.
type printer struct {
	w io.Writer

	included    *color.Color
	excluded    *color.Color
	notIncluded *color.Color
	added       *color.Color
	removed     *color.Color
	header      *color.Color
}

// newPrinter creates a printer for w using color mode auto, always or never.
func newPrinter(w io.Writer, mode string) *printer {
	enabled := colorEnabled(w, mode)
	newColor := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c
	}

	return &printer{
		w:           w,
		included:    newColor(color.FgGreen),
		excluded:    newColor(color.FgYellow),
		notIncluded: newColor(color.FgHiBlack),
		added:       newColor(color.FgGreen),
		removed:     newColor(color.FgRed),
		header:      newColor(color.Bold),
	}
}

// colorEnabled resolves color mode for w. Auto enables colors only on terminals.
func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return !color.NoColor && isatty.IsTerminal(f.Fd())
}

// displayName renders the root directory as ".".
func displayName(name string) string {
	if name == "" {
		return "."
	}

	return name
}

// path prints one name, tagged with its classification when tagged is set.
func (p *printer) path(c treescan.Classification, name string, tagged bool) {
	if !tagged {
		_, _ = fmt.Fprintln(p.w, displayName(name))
		return
	}

	var paint *color.Color
	switch c {
	case treescan.Included:
		paint = p.included
	case treescan.Excluded:
		paint = p.excluded
	default:
		paint = p.notIncluded
	}

	_, _ = fmt.Fprintf(p.w, "%s %s\n", paint.Sprintf("%-12s", c.String()), displayName(name))
}

// diff prints added and removed paths.
func (p *printer) diff(d treescan.DiffResult) {
	for _, name := range d.Removed {
		_, _ = fmt.Fprintln(p.w, p.removed.Sprint("- "+name))
	}

	for _, name := range d.Added {
		_, _ = fmt.Fprintln(p.w, p.added.Sprint("+ "+name))
	}
}

// headerf prints a bold status line.
func (p *printer) headerf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.header.Sprintf(format, args...))
}

// yaml encodes v as a YAML document.
func (p *printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// validateOutput checks an --output value.
func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: invalid output %q, must be one of: text, yaml", treescan.ErrConfiguration, format)
	}
}
