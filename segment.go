// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// doubleStar is the whole-segment recursive wildcard token.
const doubleStar = "**"

// segmentPattern is one precompiled path segment of a glob pattern.
type segmentPattern struct {
	// text is raw segment pattern source.
	text string
	// runes is text decoded once for wildcard matching.
	runes []rune
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
	// star reports whether text contains "*".
	star bool
	// recursive reports whether segment is exactly "**".
	recursive bool
}

// newSegmentPattern precompiles one segment pattern.
func newSegmentPattern(text string) segmentPattern {
	seg := segmentPattern{
		text:      text,
		wildcard:  strings.ContainsAny(text, "*?"),
		star:      strings.IndexByte(text, '*') >= 0,
		recursive: text == doubleStar,
	}

	if seg.wildcard {
		seg.runes = []rune(text)
	}

	return seg
}

// compileSegments tokenizes a slash pattern into precompiled segments.
func compileSegments(pattern string) []segmentPattern {
	tokens := tokenizePath(pattern)
	segments := make([]segmentPattern, len(tokens))
	for i, token := range tokens {
		segments[i] = newSegmentPattern(token)
	}

	return segments
}

// matches reports whether one candidate segment matches this segment pattern.
func (s *segmentPattern) matches(segment string, caseSensitive bool) bool {
	if !s.wildcard {
		if caseSensitive {
			return s.text == segment
		}

		return strings.EqualFold(s.text, segment)
	}

	return matchSegmentRunes(s.runes, s.star, []rune(segment), caseSensitive)
}

// matchSegment matches "*" and "?" wildcard pattern against one segment.
func matchSegment(pattern string, segment string, caseSensitive bool) bool {
	return matchSegmentRunes([]rune(pattern), strings.IndexByte(pattern, '*') >= 0, []rune(segment), caseSensitive)
}

// matchSegmentRunes anchors pattern at both ends of str and then places the
// literal runs between stars left to right, each with one forward scan.
func matchSegmentRunes(pat []rune, hasStar bool, str []rune, caseSensitive bool) bool {
	patStart, patEnd := 0, len(pat)-1
	strStart, strEnd := 0, len(str)-1

	if !hasStar {
		if patEnd != strEnd {
			return false
		}

		for i := 0; i <= patEnd; i++ {
			if pat[i] != '?' && !runesEqual(pat[i], str[i], caseSensitive) {
				return false
			}
		}

		return true
	}

	if patEnd == 0 {
		// Pattern is a single "*".
		return true
	}

	// Characters before the first star.
	for pat[patStart] != '*' && strStart <= strEnd {
		if pat[patStart] != '?' && !runesEqual(pat[patStart], str[strStart], caseSensitive) {
			return false
		}

		patStart++
		strStart++
	}

	if strStart > strEnd {
		return onlyStars(pat[patStart : patEnd+1])
	}

	// Characters after the last star.
	for pat[patEnd] != '*' && strStart <= strEnd {
		if pat[patEnd] != '?' && !runesEqual(pat[patEnd], str[strEnd], caseSensitive) {
			return false
		}

		patEnd--
		strEnd--
	}

	if strStart > strEnd {
		return onlyStars(pat[patStart : patEnd+1])
	}

	// Both ends now sit on a star; place every literal run between stars.
	for patStart != patEnd && strStart <= strEnd {
		next := -1
		for i := patStart + 1; i <= patEnd; i++ {
			if pat[i] == '*' {
				next = i
				break
			}
		}

		if next == patStart+1 {
			// "**" inside one segment behaves as a single "*".
			patStart++
			continue
		}

		runLen := next - patStart - 1
		strLen := strEnd - strStart + 1
		found := -1

	scan:
		for i := 0; i <= strLen-runLen; i++ {
			for j := 0; j < runLen; j++ {
				ch := pat[patStart+j+1]
				if ch != '?' && !runesEqual(ch, str[strStart+i+j], caseSensitive) {
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

	return onlyStars(pat[patStart : patEnd+1])
}

// onlyStars reports whether every rune in pat is "*".
func onlyStars(pat []rune) bool {
	for _, r := range pat {
		if r != '*' {
			return false
		}
	}

	return true
}

// runesEqual compares two runes, folding case when requested.
func runesEqual(a rune, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}

	if caseSensitive {
		return false
	}

	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return asciiLowerByte(byte(a)) == asciiLowerByte(byte(b))
	}

	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}

// asciiLowerByte converts one ASCII A-Z byte to a-z.
func asciiLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}
