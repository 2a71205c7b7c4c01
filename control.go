// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"fmt"
	"io/fs"
)

// Action is a traversal decision returned by TraversalControl.
type Action uint8

const (
	// ActionContinue records the entry and keeps walking.
	ActionContinue Action = iota
	// ActionAbort stops the whole scan. Results collected so far stay valid.
	ActionAbort
	// ActionAbortDirectory stops visiting the remaining siblings of the entry;
	// the walk resumes in the parent directory.
	ActionAbortDirectory
	// ActionNoRecurse records nothing for a directory and skips its subtree.
	// It behaves as ActionContinue for files.
	ActionNoRecurse
)

// String returns action name.
func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionAbort:
		return "abort"
	case ActionAbortDirectory:
		return "abort-directory"
	case ActionNoRecurse:
		return "no-recurse"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Entry is the filesystem handle passed to TraversalControl.
type Entry struct {
	// Info describes the entry. Symbolic links are resolved when followed.
	Info fs.FileInfo
	// Path is the entry path on disk.
	Path string
}

// TraversalControl lets a caller prune or abort a scan while it runs.
//
// Name is the root-relative slash path of the visited entry. Implementations
// may keep scan-scoped state; resetting it between scans is the caller's job.
type TraversalControl interface {
	VisitDirectory(name string, entry Entry) Action
	VisitFile(name string, entry Entry) Action
}

// ControlFuncs adapts plain functions to TraversalControl.
// Nil functions return ActionContinue.
type ControlFuncs struct {
	Directory func(name string, entry Entry) Action
	File      func(name string, entry Entry) Action
}

// VisitDirectory implements TraversalControl.
func (c ControlFuncs) VisitDirectory(name string, entry Entry) Action {
	if c.Directory == nil {
		return ActionContinue
	}

	return c.Directory(name, entry)
}

// VisitFile implements TraversalControl.
func (c ControlFuncs) VisitFile(name string, entry Entry) Action {
	if c.File == nil {
		return ActionContinue
	}

	return c.File(name, entry)
}
