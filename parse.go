// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxPatternLine bounds one line of a pattern list.
const maxPatternLine = 1 << 20

// ParsePatterns reads a pattern list, one pattern per line.
//
// Blank lines and lines starting with "#" are skipped; "\#" keeps a literal
// leading hash. Trailing spaces and tabs are trimmed unless the last one is
// escaped with "\". A UTF-8 byte order mark and CRLF line endings are accepted.
// Patterns are not compiled here.
func ParsePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxPatternLine)

	var patterns []string
	lineNo := 0
	for s.Scan() {
		lineNo++

		raw := s.Text()
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}

		if pattern, ok := parsePatternLine(raw); ok {
			patterns = append(patterns, pattern)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read patterns at line %d: %w", lineNo+1, err)
	}

	return patterns, nil
}

// ParsePatternsString parses a pattern list held in a string.
func ParsePatternsString(src string) ([]string, error) {
	return ParsePatterns(strings.NewReader(src))
}

// parsePatternLine returns the pattern held by one line, if any.
func parsePatternLine(raw string) (string, bool) {
	line := trimTrailingSpaces(strings.TrimSuffix(raw, "\r"))

	switch {
	case line == "", line[0] == '#':
		return "", false
	case strings.HasPrefix(line, `\#`):
		return line[1:], true
	default:
		return line, true
	}
}

// trimTrailingSpaces drops trailing blanks. A backslash before the last blank
// keeps that blank and is removed itself.
func trimTrailingSpaces(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	if len(trimmed) == len(s) {
		return s
	}

	if strings.HasSuffix(trimmed, `\`) {
		end := len(trimmed)
		return trimmed[:end-1] + s[end:end+1]
	}

	return trimmed
}
