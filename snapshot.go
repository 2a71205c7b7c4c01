// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one capture of a tree's included files.
type Snapshot struct {
	// CapturedAt is capture time.
	CapturedAt time.Time `json:"captured_at" yaml:"captured_at"`
	// ID identifies the capture.
	ID string `json:"id" yaml:"id"`
	// Files are included files of this capture in walk order.
	Files []string `json:"files" yaml:"files"`
	// DiffResult is the difference against the previous capture.
	DiffResult `json:",inline" yaml:",inline"`
}

// SnapshotDiff re-scans a tree on every capture and reports included files
// added or removed since the previous capture.
//
// Only the most recent file list is retained. Not safe for concurrent use.
type SnapshotDiff struct {
	scanner *Scanner
	last    []string
	// baseline reports whether last holds a previous capture.
	baseline bool
}

// NewSnapshotDiff creates a snapshot differ for one scan configuration.
func NewSnapshotDiff(opts ScanOptions) (*SnapshotDiff, error) {
	scanner, err := NewScanner(opts)
	if err != nil {
		return nil, err
	}

	return &SnapshotDiff{scanner: scanner}, nil
}

// Capture scans the tree, diffs it against the retained list and replaces
// the list. The first capture has no baseline and reports no changes.
func (d *SnapshotDiff) Capture() (Snapshot, error) {
	if err := d.scanner.Scan(); err != nil {
		return Snapshot{}, err
	}

	files := d.scanner.IncludedFiles()

	snap := Snapshot{
		ID:         uuid.NewString(),
		CapturedAt: time.Now(),
		Files:      files,
	}

	if d.baseline {
		snap.DiffResult = DiffPaths(d.last, files)
	}

	d.last = files
	d.baseline = true
	return snap, nil
}

// Last returns included files of the most recent capture.
func (d *SnapshotDiff) Last() []string {
	return cloneStrings(d.last)
}

// Scanner returns the underlying scanner.
func (d *SnapshotDiff) Scanner() *Scanner {
	return d.scanner
}
