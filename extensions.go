// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import "strings"

// ParseExtensions builds "**/*.ext" include patterns from file extensions.
//
// Each value may hold several comma-separated extensions written as "txt",
// ".txt" or "*.txt". Blank and repeated extensions are skipped and input order
// is kept. Extension case is preserved; combine with case-insensitive
// matching to select "TXT" and "txt" alike.
func ParseExtensions(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	for _, value := range exts {
		for _, ext := range strings.Split(value, ",") {
			ext = strings.TrimLeft(strings.TrimPrefix(strings.TrimSpace(ext), "*"), ".")
			if ext == "" {
				continue
			}

			patterns = append(patterns, doubleStar+"/*."+ext)
		}
	}

	return MergePatterns(patterns)
}
