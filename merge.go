// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import "strings"

// MergePatterns concatenates pattern lists in order. Blank patterns and
// repeats of an earlier pattern are dropped; a pattern set matches when any
// member does, so neither changes the result.
func MergePatterns(sets ...[]string) []string {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, set := range sets {
		for _, p := range set {
			if strings.TrimSpace(p) == "" {
				continue
			}

			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}
