// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"fmt"
	"regexp"
	"strings"
)

// Escape wrappers recognized in raw pattern strings.
const (
	regexPrefix = "%regex["
	globPrefix  = "%ant["
	wrapSuffix  = "]"
)

// PatternMode selects how a raw pattern is interpreted.
type PatternMode uint8

const (
	// PatternGlob is a separator-tokenized glob with "*", "?" and "**".
	PatternGlob PatternMode = iota
	// PatternRegex is a full-match regular expression from a "%regex[...]" wrapper.
	PatternRegex
)

// String returns mode name.
func (m PatternMode) String() string {
	switch m {
	case PatternGlob:
		return "glob"
	case PatternRegex:
		return "regex"
	default:
		return fmt.Sprintf("PatternMode(%d)", m)
	}
}

// Pattern is one compiled include or exclude pattern.
//
// Glob patterns are tokenized once at construction; matching never re-parses
// the raw text. A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	// re is the anchored expression for regex mode.
	re *regexp.Regexp
	// reFold is the case-insensitive variant of re.
	reFold *regexp.Regexp
	// raw is the original pattern source.
	raw string
	// segments are glob segments in order.
	segments []segmentPattern
	// mode selects glob or regex matching.
	mode PatternMode
	// leadingSep reports whether glob source starts with the separator.
	leadingSep bool
}

// NewPattern compiles one raw pattern string.
//
// Accepted forms:
//   - "%regex[expr]": expr is a regular expression matched against the whole path
//   - "%ant[glob]": glob with the wrapper stripped
//   - anything else: glob
//
// A glob ending with a separator matches everything below it ("dir/" is "dir/**").
func NewPattern(raw string) (*Pattern, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if inner, ok := unwrap(raw, regexPrefix); ok {
		return compileRegexPattern(raw, inner)
	}

	body := raw
	if inner, ok := unwrap(raw, globPrefix); ok {
		body = inner
	}

	return compileGlobPattern(raw, body)
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(raw string) *Pattern {
	p, err := NewPattern(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// compileRegexPattern compiles inner text of a "%regex[...]" wrapper.
func compileRegexPattern(raw string, expr string) (*Pattern, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression in %q", ErrInvalidPattern, raw)
	}

	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, raw, err)
	}

	reFold, err := regexp.Compile(`(?i)^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, raw, err)
	}

	return &Pattern{
		raw:    raw,
		mode:   PatternRegex,
		re:     re,
		reFold: reFold,
	}, nil
}

// compileGlobPattern tokenizes a glob body into segments.
func compileGlobPattern(raw string, body string) (*Pattern, error) {
	body = strings.TrimSpace(toSlash(body))
	if body == "" {
		return nil, fmt.Errorf("%w: empty glob in %q", ErrInvalidPattern, raw)
	}

	// "dir/" selects the whole subtree below dir.
	if strings.HasSuffix(body, "/") {
		body += doubleStar
	}

	return &Pattern{
		raw:        raw,
		mode:       PatternGlob,
		leadingSep: hasLeadingSeparator(body),
		segments:   compileSegments(body),
	}, nil
}

// unwrap strips prefix and the closing bracket when raw carries the wrapper.
func unwrap(raw string, prefix string) (string, bool) {
	if len(raw) < len(prefix)+len(wrapSuffix) ||
		!strings.HasPrefix(raw, prefix) ||
		!strings.HasSuffix(raw, wrapSuffix) {
		return "", false
	}

	return raw[len(prefix) : len(raw)-len(wrapSuffix)], true
}

// String returns the raw pattern source.
func (p *Pattern) String() string {
	return p.raw
}

// Mode returns pattern interpretation mode.
func (p *Pattern) Mode() PatternMode {
	return p.mode
}

// IsRegex reports whether pattern came from a "%regex[...]" wrapper.
func (p *Pattern) IsRegex() bool {
	return p.mode == PatternRegex
}

// Match reports whether the whole candidate path matches the pattern.
func (p *Pattern) Match(candidate string, caseSensitive bool) bool {
	candidate = toSlash(candidate)
	if p.mode == PatternRegex {
		if caseSensitive {
			return p.re.MatchString(candidate)
		}

		return p.reFold.MatchString(candidate)
	}

	if hasLeadingSeparator(candidate) != p.leadingSep {
		return false
	}

	return matchPathSegments(p.segments, tokenizePath(candidate), caseSensitive)
}

// MatchPrefix reports whether candidate could still be extended into a full
// match. It may report false positives but never false negatives, so it is
// only used to decide whether a subtree can be skipped.
func (p *Pattern) MatchPrefix(candidate string, caseSensitive bool) bool {
	if p.mode == PatternRegex {
		return true
	}

	candidate = toSlash(candidate)
	if hasLeadingSeparator(candidate) != p.leadingSep {
		return false
	}

	return matchPathPrefix(p.segments, tokenizePath(candidate), caseSensitive)
}

// matchPathPrefix matches leading segments up to the first "**".
func matchPathPrefix(pat []segmentPattern, str []string, caseSensitive bool) bool {
	patStart, strStart := matchFront(pat, str, caseSensitive)
	if patStart < 0 {
		return false
	}

	if strStart >= len(str) {
		return true
	}

	// Pattern ran out with candidate segments left; otherwise a "**" was reached.
	return patStart < len(pat)
}

// matchFront matches segments from the front until a "**" or either side ends.
// It returns -1 indexes on a segment mismatch.
func matchFront(pat []segmentPattern, str []string, caseSensitive bool) (int, int) {
	patStart, strStart := 0, 0
	for patStart < len(pat) && strStart < len(str) {
		if pat[patStart].recursive {
			break
		}

		if !pat[patStart].matches(str[strStart], caseSensitive) {
			return -1, -1
		}

		patStart++
		strStart++
	}

	return patStart, strStart
}

// matchPathSegments matches pattern segments against candidate segments.
//
// Fixed segments are matched greedily from both ends; the remaining middle is
// split by "**" into literal runs placed left to right by a sliding window.
func matchPathSegments(pat []segmentPattern, str []string, caseSensitive bool) bool {
	patStart, strStart := matchFront(pat, str, caseSensitive)
	if patStart < 0 {
		return false
	}

	patEnd, strEnd := len(pat)-1, len(str)-1

	if strStart > strEnd {
		return allRecursive(pat[patStart:])
	}

	if patStart > patEnd {
		return false
	}

	// Segments after the last "**".
	for patStart <= patEnd && strStart <= strEnd {
		if pat[patEnd].recursive {
			break
		}

		if !pat[patEnd].matches(str[strEnd], caseSensitive) {
			return false
		}

		patEnd--
		strEnd--
	}

	if strStart > strEnd {
		return allRecursive(pat[patStart : patEnd+1])
	}

	for patStart != patEnd && strStart <= strEnd {
		next := -1
		for i := patStart + 1; i <= patEnd; i++ {
			if pat[i].recursive {
				next = i
				break
			}
		}

		if next == patStart+1 {
			// "**/**" collapses to one "**".
			patStart++
			continue
		}

		runLen := next - patStart - 1
		strLen := strEnd - strStart + 1
		found := -1

	scan:
		for i := 0; i <= strLen-runLen; i++ {
			for j := 0; j < runLen; j++ {
				if !pat[patStart+j+1].matches(str[strStart+i+j], caseSensitive) {
					continue scan
				}
			}

			found = strStart + i
			break
		}

		if found < 0 {
			return false
		}

		patStart = next
		strStart = found + runLen
	}

	return allRecursive(pat[patStart : patEnd+1])
}

// allRecursive reports whether every segment is "**".
func allRecursive(pat []segmentPattern) bool {
	for i := range pat {
		if !pat[i].recursive {
			return false
		}
	}

	return true
}
