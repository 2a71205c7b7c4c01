// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// PatternSet is an ordered list of compiled patterns combined with logical OR.
//
// Member order never changes a result, only the worst-case cost of reaching it.
type PatternSet struct {
	patterns []*Pattern
}

// NewPatternSet compiles raw patterns preserving input order.
//
// Every invalid pattern is reported; the returned error aggregates all of them
// and each one wraps ErrInvalidPattern.
func NewPatternSet(raws []string) (*PatternSet, error) {
	var errs *multierror.Error

	patterns := make([]*Pattern, 0, len(raws))
	for i, raw := range raws {
		p, err := NewPattern(raw)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("pattern %d: %w", i, err))
			continue
		}

		patterns = append(patterns, p)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &PatternSet{patterns: patterns}, nil
}

// MustPatternSet is like NewPatternSet but panics on error.
func MustPatternSet(raws ...string) *PatternSet {
	set, err := NewPatternSet(raws)
	if err != nil {
		panic(err)
	}

	return set
}

// Match reports whether any member pattern matches candidate.
func (s *PatternSet) Match(candidate string, caseSensitive bool) bool {
	if s == nil {
		return false
	}

	for _, p := range s.patterns {
		if p.Match(candidate, caseSensitive) {
			return true
		}
	}

	return false
}

// MatchesAnyPrefix reports whether any member pattern could still match an
// extension of candidate.
func (s *PatternSet) MatchesAnyPrefix(candidate string, caseSensitive bool) bool {
	if s == nil {
		return false
	}

	for _, p := range s.patterns {
		if p.MatchPrefix(candidate, caseSensitive) {
			return true
		}
	}

	return false
}

// Len returns number of member patterns.
func (s *PatternSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.patterns)
}

// Patterns returns member patterns in input order.
func (s *PatternSet) Patterns() []*Pattern {
	if s == nil {
		return nil
	}

	out := make([]*Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Strings returns raw member pattern sources in input order.
func (s *PatternSet) Strings() []string {
	if s == nil {
		return nil
	}

	out := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.raw
	}

	return out
}
