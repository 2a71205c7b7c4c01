// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
)

func TestMatchSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		segment string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "ab", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"*", "anything", true},
		{"*.go", "main.go", true},
		{"*.go", "main.goo", false},
		{"main.*", "main.go", true},
		{"a*b*c", "aXXbYYc", true},
		{"a*b*c", "aXXcYYb", false},
		{"a**b", "ab", true},
		{"*ab*ab*", "abab", true},
		{"*ab*ab*", "aab", false},
		{"?*?", "ab", true},
		{"?*?", "a", false},
		{"файл*", "файл.txt", true},
		{"?", "ж", true},
	}

	for _, tc := range tests {
		got := matchSegment(tc.pattern, tc.segment, true)
		assert.Equal(t, tc.want, got, "matchSegment(%q, %q)", tc.pattern, tc.segment)
	}
}

func TestMatchSegmentCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.True(t, matchSegment("*.TXT", "readme.txt", false))
	assert.True(t, matchSegment("ReadMe.*", "README.md", false))
	assert.True(t, matchSegment("ФАЙЛ?", "файл1", false))
	assert.False(t, matchSegment("*.TXT", "readme.txt", true))

	seg := newSegmentPattern("Makefile")
	assert.True(t, seg.matches("makefile", false))
	assert.False(t, seg.matches("makefile", true))
}

func TestSegmentPatternFlags(t *testing.T) {
	t.Parallel()

	assert.True(t, newSegmentPattern("**").recursive)
	assert.False(t, newSegmentPattern("a**").recursive)
	assert.True(t, newSegmentPattern("a**").star)
	assert.True(t, newSegmentPattern("a?").wildcard)
	assert.False(t, newSegmentPattern("a?").star)
	assert.False(t, newSegmentPattern("plain").wildcard)
}

// gobwas/glob without separators treats "*" and "?" like one path segment.
func TestMatchSegmentAgainstGlobLibrary(t *testing.T) {
	t.Parallel()

	patterns := []string{"*", "a*", "*a", "a*b", "*a*", "a?c", "*.tar.gz", "??", "a*b*c", "*ab*ab*", "?*b"}
	segments := []string{"a", "ab", "abc", "aXbYc", "abab", "x.tar.gz", "tar.gz", "ba", "aab", "abXab", "b"}

	for _, pattern := range patterns {
		g := glob.MustCompile(pattern)
		for _, segment := range segments {
			assert.Equal(t, g.Match(segment), matchSegment(pattern, segment, true),
				"pattern %q segment %q", pattern, segment)
		}
	}
}
