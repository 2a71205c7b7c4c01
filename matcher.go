// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import "fmt"

// Matcher classifies single paths against an include/exclude pattern pair.
type Matcher struct {
	includes      *PatternSet
	excludes      *PatternSet
	caseSensitive bool
}

// NewMatcher compiles include and exclude patterns into matcher.
func NewMatcher(opts MatcherOptions) (*Matcher, error) {
	opts.applyDefaults()

	includes, err := NewPatternSet(opts.Includes)
	if err != nil {
		return nil, fmt.Errorf("compile includes: %w", err)
	}

	excludes, err := NewPatternSet(opts.effectiveExcludes())
	if err != nil {
		return nil, fmt.Errorf("compile excludes: %w", err)
	}

	return &Matcher{
		includes:      includes,
		excludes:      excludes,
		caseSensitive: !opts.CaseInsensitive,
	}, nil
}

// Classify returns the category of one root-relative path.
//
// Decision policy:
// - no include pattern matched: NotIncluded
// - an include and an exclude pattern matched: Excluded
// - otherwise: Included
func (m *Matcher) Classify(path string) Classification {
	return m.classify(NormalizePath(path))
}

// Included reports whether path is included and not excluded.
func (m *Matcher) Included(path string) bool {
	return m.Classify(path) == Included
}

// Excluded reports whether path matches both an include and an exclude pattern.
func (m *Matcher) Excluded(path string) bool {
	return m.Classify(path) == Excluded
}

// CouldHoldIncluded reports whether entries below directory path may be
// included. False means the whole subtree can be skipped.
func (m *Matcher) CouldHoldIncluded(path string) bool {
	return m.couldHoldIncluded(NormalizePath(path))
}

// Includes returns compiled include patterns.
func (m *Matcher) Includes() *PatternSet {
	return m.includes
}

// Excludes returns compiled exclude patterns.
func (m *Matcher) Excludes() *PatternSet {
	return m.excludes
}

// CaseSensitive reports whether matching is case-sensitive.
func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// classify classifies an already-normalized path.
func (m *Matcher) classify(name string) Classification {
	if !m.isIncluded(name) {
		return NotIncluded
	}

	if m.isExcluded(name) {
		return Excluded
	}

	return Included
}

// isIncluded reports whether any include pattern matches name.
func (m *Matcher) isIncluded(name string) bool {
	return m.includes.Match(name, m.caseSensitive)
}

// isExcluded reports whether any exclude pattern matches name.
func (m *Matcher) isExcluded(name string) bool {
	return m.excludes.Match(name, m.caseSensitive)
}

// couldHoldIncluded checks include prefixes of an already-normalized name.
func (m *Matcher) couldHoldIncluded(name string) bool {
	return m.includes.MatchesAnyPrefix(name, m.caseSensitive)
}
