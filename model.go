// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Classification is the category a path falls into for one pattern pair.
type Classification uint8

const (
	// NotIncluded means no include pattern matched.
	NotIncluded Classification = iota
	// Included means an include pattern matched and no exclude pattern did.
	Included
	// Excluded means both an include and an exclude pattern matched.
	Excluded
)

// String returns classification name.
func (c Classification) String() string {
	switch c {
	case NotIncluded:
		return "not-included"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return fmt.Sprintf("Classification(%d)", c)
	}
}

// MatcherOptions controls path classification.
type MatcherOptions struct {
	// Includes are include patterns. Empty value defaults to "**".
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty"`
	// Excludes are exclude patterns.
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// AddDefaultExcludes appends DefaultExcludes to Excludes.
	AddDefaultExcludes bool `json:"add_default_excludes,omitempty" yaml:"add_default_excludes,omitempty"`
}

// ScanOptions configures one Scanner. Options are read once and stay
// immutable for the scanner lifetime.
type ScanOptions struct {
	// Control is consulted for included entries during the fast pass.
	Control TraversalControl `json:"-" yaml:"-"`
	// Logger receives debug traces of the walk. Nil discards output.
	Logger logrus.FieldLogger `json:"-" yaml:"-"`
	// Basedir is the root directory of the scan.
	Basedir string `json:"basedir" yaml:"basedir"`
	// MatcherOptions holds include/exclude patterns and matching flags.
	MatcherOptions `json:",inline" yaml:",inline"`
	// NoFollowSymlinks disables following symbolic links to directories.
	// Default false follows links.
	NoFollowSymlinks bool `json:"no_follow_symlinks,omitempty" yaml:"no_follow_symlinks,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if len(opts.Includes) == 0 {
		opts.Includes = []string{doubleStar}
	}
}

// effectiveExcludes returns exclude patterns with the default table appended when requested.
func (opts *MatcherOptions) effectiveExcludes() []string {
	if !opts.AddDefaultExcludes {
		return opts.Excludes
	}

	out := make([]string, 0, len(opts.Excludes)+len(defaultExcludes))
	out = append(out, opts.Excludes...)
	return append(out, defaultExcludes...)
}

// applyDefaults fills zero-valued options with defaults.
func (opts *ScanOptions) applyDefaults() {
	opts.MatcherOptions.applyDefaults()

	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
}
