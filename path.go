// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"path"
	"strings"
)

// Separator is the segment separator used by patterns and reported paths.
const Separator = '/'

// NormalizePath converts raw into the slash-separated relative form used in
// scan results. Backslashes become slashes, leading "./" and "/" are dropped
// and the path is cleaned. The root directory normalizes to "".
func NormalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = toSlash(raw)

	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	// Fast path for already-normalized relative paths.
	if isSimpleNormalizedPath(raw) {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// toSlash replaces backslashes with the pattern separator.
func toSlash(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	return strings.ReplaceAll(raw, `\`, `/`)
}

// tokenizePath splits a slash path into non-empty segments.
func tokenizePath(p string) []string {
	if p == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(p, "/")+1)
	start := 0
	for i := 0; i <= len(p); i++ {
		if i != len(p) && p[i] != Separator {
			continue
		}

		if i > start {
			segments = append(segments, p[start:i])
		}

		start = i + 1
	}

	return segments
}

// hasLeadingSeparator reports whether p starts at the separator.
func hasLeadingSeparator(p string) bool {
	return len(p) > 0 && p[0] == Separator
}

// joinRel joins a root-relative directory name and one entry name.
func joinRel(dir string, name string) string {
	if dir == "" {
		return name
	}

	return dir + "/" + name
}

// isSimpleNormalizedPath reports whether path is already normalized enough to skip path.Clean.
func isSimpleNormalizedPath(p string) bool {
	if p == "" ||
		p == "." ||
		p == ".." ||
		strings.HasPrefix(p, "/") ||
		strings.HasSuffix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") ||
		strings.Contains(p, "//") ||
		strings.Contains(p, "/./") ||
		strings.Contains(p, "/../") ||
		strings.HasSuffix(p, "/..") {
		return false
	}

	return true
}
