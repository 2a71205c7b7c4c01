// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import "io/fs"

// scanState accumulates results of one Scan call. It is owned by exactly one
// Scanner and replaced at the start of every scan.
type scanState struct {
	filesIncluded    []string
	filesNotIncluded []string
	filesExcluded    []string
	dirsIncluded     []string
	dirsNotIncluded  []string
	dirsExcluded     []string

	// pruned lists subtrees skipped by the fast pass, in walk order.
	pruned []prunedDir
	// aborted is set when TraversalControl stopped the scan.
	aborted bool
	// slowDone latches once pruned subtrees were walked exhaustively.
	slowDone bool
}

// prunedDir is one subtree skipped by the fast pass.
type prunedDir struct {
	// info describes the directory itself.
	info fs.FileInfo
	// name is root-relative directory name.
	name string
	// path is directory path on disk.
	path string
	// ancestors are infos of the directories above, root first.
	ancestors []fs.FileInfo
	// recordSelf reports whether the directory itself still needs classification.
	recordSelf bool
}

// newScanState returns an empty accumulator.
func newScanState() *scanState {
	return &scanState{}
}

// recordFile appends a file name to the list of its category.
func (st *scanState) recordFile(c Classification, name string) {
	switch c {
	case Included:
		st.filesIncluded = append(st.filesIncluded, name)
	case Excluded:
		st.filesExcluded = append(st.filesExcluded, name)
	default:
		st.filesNotIncluded = append(st.filesNotIncluded, name)
	}
}

// recordDir appends a directory name to the list of its category.
func (st *scanState) recordDir(c Classification, name string) {
	switch c {
	case Included:
		st.dirsIncluded = append(st.dirsIncluded, name)
	case Excluded:
		st.dirsExcluded = append(st.dirsExcluded, name)
	default:
		st.dirsNotIncluded = append(st.dirsNotIncluded, name)
	}
}

// cloneStrings returns a copy of in, keeping nil for empty input.
func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)
	return out
}
