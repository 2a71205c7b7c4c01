// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import "sort"

// DiffResult is the path-identity difference between two included-file sets.
type DiffResult struct {
	// Added are paths present in the new set only, sorted.
	Added []string `json:"added" yaml:"added"`
	// Removed are paths present in the old set only, sorted.
	Removed []string `json:"removed" yaml:"removed"`
}

// Empty reports whether nothing was added or removed.
func (d DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// DiffPaths computes removed = old - new and added = new - old by exact
// string equality. Duplicates collapse.
func DiffPaths(oldPaths []string, newPaths []string) DiffResult {
	oldSet := toSet(oldPaths)
	newSet := toSet(newPaths)

	return DiffResult{
		Added:   setMinus(newSet, oldSet),
		Removed: setMinus(oldSet, newSet),
	}
}

// toSet collects paths into a set.
func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return set
}

// setMinus returns sorted members of a that are absent from b.
func setMinus(a map[string]struct{}, b map[string]struct{}) []string {
	var out []string
	for p := range a {
		if _, ok := b[p]; !ok {
			out = append(out, p)
		}
	}

	sort.Strings(out)
	return out
}
