// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// errAbortScan unwinds the walk after ActionAbort.
var errAbortScan = errors.New("scan aborted")

// walkMode selects fast (pruning) or slow (exhaustive) traversal.
type walkMode uint8

const (
	// walkFast prunes subtrees that cannot hold included entries and consults TraversalControl.
	walkFast walkMode = iota
	// walkSlow classifies every entry below a pruned subtree.
	walkSlow
)

// walker carries one traversal pass over scanner state.
type walker struct {
	scanner *Scanner
	state   *scanState
	mode    walkMode
}

// walkDir lists one directory and visits its entries in name order.
//
// The directory handle is released before any recursion.
func (w *walker) walkDir(dirPath string, relDir string, ancestors []fs.FileInfo) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("%w: read directory %s: %w", ErrTraversalIO, dirPath, err)
	}

	for _, de := range entries {
		name := joinRel(relDir, de.Name())
		full := filepath.Join(dirPath, de.Name())

		info, isLink, err := w.entryInfo(full, de)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				w.scanner.log.WithField("path", name).Debug("skip vanished or dangling entry")
				continue
			}

			return fmt.Errorf("%w: stat %s: %w", ErrTraversalIO, full, err)
		}

		var stop bool
		switch {
		case isLink && info.IsDir() && w.scanner.opts.NoFollowSymlinks:
			w.visitDirLink(name)
		case info.IsDir():
			stop, err = w.visitDir(name, full, info, ancestors)
		case info.Mode().IsRegular():
			stop, err = w.visitFile(name, full, info)
		default:
			w.scanner.log.WithFields(logrus.Fields{
				"path": name,
				"mode": info.Mode().String(),
			}).Debug("skip special file")
		}

		if err != nil {
			return err
		}

		if stop {
			break
		}
	}

	return nil
}

// entryInfo returns entry info with symbolic links resolved.
func (w *walker) entryInfo(full string, de fs.DirEntry) (fs.FileInfo, bool, error) {
	if de.Type()&fs.ModeSymlink == 0 {
		info, err := de.Info()
		return info, false, err
	}

	info, err := os.Stat(full)
	return info, true, err
}

// visitDirLink records a directory symlink that is not followed.
func (w *walker) visitDirLink(name string) {
	if w.mode == walkSlow {
		w.state.recordDir(w.scanner.matcher.classify(name), name)
		return
	}

	w.state.dirsIncluded = append(w.state.dirsIncluded, name)
}

// visitDir classifies one directory and decides whether to descend.
// It returns stop=true when the remaining siblings must be skipped.
func (w *walker) visitDir(name string, full string, info fs.FileInfo, ancestors []fs.FileInfo) (bool, error) {
	m := w.scanner.matcher
	st := w.state

	if w.mode == walkSlow {
		st.recordDir(m.classify(name), name)
		return false, w.descend(full, name, info, ancestors)
	}

	switch {
	case m.isIncluded(name) && !m.isExcluded(name):
		switch w.controlDirectory(name, full, info) {
		case ActionAbort:
			return true, errAbortScan
		case ActionAbortDirectory:
			return true, nil
		case ActionNoRecurse:
			return false, nil
		}

		st.dirsIncluded = append(st.dirsIncluded, name)
		return false, w.descend(full, name, info, ancestors)

	case m.isIncluded(name):
		st.dirsExcluded = append(st.dirsExcluded, name)
		if !m.couldHoldIncluded(name) {
			w.prune(name, full, info, ancestors, false)
			return false, nil
		}

		switch w.controlDirectory(name, full, info) {
		case ActionAbort:
			return true, errAbortScan
		case ActionAbortDirectory:
			return true, nil
		case ActionNoRecurse:
			return false, nil
		}

		return false, w.descend(full, name, info, ancestors)

	default:
		if !m.couldHoldIncluded(name) {
			w.prune(name, full, info, ancestors, true)
			return false, nil
		}

		switch w.controlDirectory(name, full, info) {
		case ActionAbort:
			return true, errAbortScan
		case ActionAbortDirectory:
			return true, nil
		case ActionNoRecurse:
			return false, nil
		}

		st.dirsNotIncluded = append(st.dirsNotIncluded, name)
		return false, w.descend(full, name, info, ancestors)
	}
}

// visitFile classifies one file.
// It returns stop=true when the remaining siblings must be skipped.
func (w *walker) visitFile(name string, full string, info fs.FileInfo) (bool, error) {
	c := w.scanner.matcher.classify(name)

	if w.mode == walkFast && c == Included {
		switch w.controlFile(name, full, info) {
		case ActionAbort:
			return true, errAbortScan
		case ActionAbortDirectory:
			return true, nil
		}
	}

	w.state.recordFile(c, name)
	return false, nil
}

// descend walks into a directory unless it repeats one of its ancestors.
func (w *walker) descend(full string, name string, info fs.FileInfo, ancestors []fs.FileInfo) error {
	for _, ancestor := range ancestors {
		if os.SameFile(ancestor, info) {
			w.scanner.log.WithField("path", name).Debug("skip directory loop")
			return nil
		}
	}

	chain := make([]fs.FileInfo, len(ancestors), len(ancestors)+1)
	copy(chain, ancestors)
	chain = append(chain, info)

	return w.walkDir(full, name, chain)
}

// prune remembers a subtree for the slow pass.
func (w *walker) prune(name string, full string, info fs.FileInfo, ancestors []fs.FileInfo, recordSelf bool) {
	w.scanner.log.WithField("path", name).Debug("prune subtree without include candidates")

	w.state.pruned = append(w.state.pruned, prunedDir{
		name:       name,
		path:       full,
		info:       info,
		ancestors:  ancestors,
		recordSelf: recordSelf,
	})
}

// controlDirectory consults TraversalControl for a directory.
func (w *walker) controlDirectory(name string, full string, info fs.FileInfo) Action {
	if w.scanner.control == nil {
		return ActionContinue
	}

	action := w.scanner.control.VisitDirectory(name, Entry{Path: full, Info: info})
	if action != ActionContinue {
		w.scanner.log.WithFields(logrus.Fields{
			"path":   name,
			"action": action.String(),
		}).Debug("traversal control decision")
	}

	return action
}

// controlFile consults TraversalControl for a file.
func (w *walker) controlFile(name string, full string, info fs.FileInfo) Action {
	if w.scanner.control == nil {
		return ActionContinue
	}

	action := w.scanner.control.VisitFile(name, Entry{Path: full, Info: info})
	if action != ActionContinue {
		w.scanner.log.WithFields(logrus.Fields{
			"path":   name,
			"action": action.String(),
		}).Debug("traversal control decision")
	}

	return action
}
