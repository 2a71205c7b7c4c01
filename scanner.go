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

// Scanner walks one directory tree and classifies every visited file and
// directory as included, excluded or not included.
//
// The first Scan pass prunes subtrees that cannot hold an included entry. The
// include lists are complete after it; excluded and not-included lists are
// completed lazily by an exhaustive pass over the pruned subtrees the first
// time they are requested.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	// control is consulted for included entries during the fast pass.
	control TraversalControl
	// err is the failure of the last scan, cleared by the next Scan.
	err error
	// log receives debug traces.
	log logrus.FieldLogger
	// matcher classifies root-relative names.
	matcher *Matcher
	// state holds results of the last successful scan, nil before it.
	state *scanState
	// opts are immutable scanner options.
	opts ScanOptions
}

// NewScanner compiles patterns and creates a scanner.
//
// Pattern errors are reported here, before any traversal. The base directory
// is validated by Scan.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	opts.applyDefaults()

	matcher, err := NewMatcher(opts.MatcherOptions)
	if err != nil {
		return nil, withStackTrace(err)
	}

	return &Scanner{
		opts:    opts,
		matcher: matcher,
		control: opts.Control,
		log:     opts.Logger.WithField("basedir", opts.Basedir),
	}, nil
}

// Options returns scanner options with defaults applied.
func (s *Scanner) Options() ScanOptions {
	return s.opts
}

// Matcher returns the compiled include/exclude matcher.
func (s *Scanner) Matcher() *Matcher {
	return s.matcher
}

// Scan validates the base directory, resets previous results and runs one
// fast top-down walk.
//
// On any error the results of the failed scan are discarded.
func (s *Scanner) Scan() error {
	if s == nil {
		return ErrNilScanner
	}

	s.state = nil
	s.err = nil

	root, info, err := s.validateBasedir()
	if err != nil {
		return s.fail(err)
	}

	st := newScanState()
	w := &walker{
		scanner: s,
		state:   st,
		mode:    walkFast,
	}

	// The root directory is always a candidate and is always entered.
	st.recordDir(s.matcher.classify(""), "")

	err = w.walkDir(root, "", []fs.FileInfo{info})
	if errors.Is(err, errAbortScan) {
		s.log.Debug("scan aborted by traversal control")
		st.aborted = true
		err = nil
	}

	if err != nil {
		return s.fail(err)
	}

	s.log.WithFields(logrus.Fields{
		"files_included": len(st.filesIncluded),
		"dirs_included":  len(st.dirsIncluded),
		"pruned":         len(st.pruned),
	}).Debug("fast scan finished")

	s.state = st
	return nil
}

// Scanned reports whether results of a successful scan are available.
func (s *Scanner) Scanned() bool {
	return s != nil && s.state != nil
}

// IncludedFiles returns root-relative names of included files.
// It returns nil before the first successful Scan.
func (s *Scanner) IncludedFiles() []string {
	if !s.Scanned() {
		return nil
	}

	return cloneStrings(s.state.filesIncluded)
}

// IncludedDirectories returns root-relative names of included directories.
// The root directory is reported as "".
func (s *Scanner) IncludedDirectories() []string {
	if !s.Scanned() {
		return nil
	}

	return cloneStrings(s.state.dirsIncluded)
}

// NotIncludedFiles returns names of files matched by no include pattern.
// It completes the slow scan first.
func (s *Scanner) NotIncludedFiles() ([]string, error) {
	st, err := s.completedState()
	if err != nil {
		return nil, err
	}

	return cloneStrings(st.filesNotIncluded), nil
}

// NotIncludedDirectories returns names of directories matched by no include
// pattern. It completes the slow scan first.
func (s *Scanner) NotIncludedDirectories() ([]string, error) {
	st, err := s.completedState()
	if err != nil {
		return nil, err
	}

	return cloneStrings(st.dirsNotIncluded), nil
}

// ExcludedFiles returns names of files matched by include and exclude
// patterns. It completes the slow scan first.
func (s *Scanner) ExcludedFiles() ([]string, error) {
	st, err := s.completedState()
	if err != nil {
		return nil, err
	}

	return cloneStrings(st.filesExcluded), nil
}

// ExcludedDirectories returns names of directories matched by include and
// exclude patterns. It completes the slow scan first.
func (s *Scanner) ExcludedDirectories() ([]string, error) {
	st, err := s.completedState()
	if err != nil {
		return nil, err
	}

	return cloneStrings(st.dirsExcluded), nil
}

// DiffIncludedFiles compares oldPaths with included files of the last scan,
// running Scan first when no scan has succeeded yet.
func (s *Scanner) DiffIncludedFiles(oldPaths []string) (DiffResult, error) {
	if s == nil {
		return DiffResult{}, ErrNilScanner
	}

	if !s.Scanned() {
		if err := s.Scan(); err != nil {
			return DiffResult{}, err
		}
	}

	return DiffPaths(oldPaths, s.state.filesIncluded), nil
}

// completedState returns scan results with the slow scan completed. It
// reports the failure of the last scan until the next Scan, and
// ErrNotScanned when no scan has run.
func (s *Scanner) completedState() (*scanState, error) {
	if s == nil {
		return nil, ErrNilScanner
	}

	if s.err != nil {
		return nil, s.err
	}

	if s.state == nil {
		return nil, ErrNotScanned
	}

	if err := s.completeSlowScan(); err != nil {
		return nil, err
	}

	return s.state, nil
}

// fail discards scan results and keeps err for later result requests.
func (s *Scanner) fail(err error) error {
	s.state = nil
	s.err = withStackTrace(err)
	return s.err
}

// completeSlowScan walks every pruned subtree exhaustively, once per scan.
func (s *Scanner) completeSlowScan() error {
	st := s.state
	if st.slowDone {
		return nil
	}

	if st.aborted {
		s.log.Debug("slow scan skipped for aborted scan")
		st.slowDone = true
		return nil
	}

	w := &walker{
		scanner: s,
		state:   st,
		mode:    walkSlow,
	}

	for _, p := range st.pruned {
		if p.recordSelf {
			st.recordDir(s.matcher.classify(p.name), p.name)
		}

		if err := w.descend(p.path, p.name, p.info, p.ancestors); err != nil {
			return s.fail(err)
		}
	}

	s.log.WithField("subtrees", len(st.pruned)).Debug("slow scan finished")

	st.pruned = nil
	st.slowDone = true
	return nil
}

// validateBasedir checks that base directory exists and is a directory.
func (s *Scanner) validateBasedir() (string, fs.FileInfo, error) {
	if s.opts.Basedir == "" {
		return "", nil, fmt.Errorf("%w: basedir is not set", ErrConfiguration)
	}

	root := filepath.Clean(s.opts.Basedir)
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: basedir %s does not exist", ErrConfiguration, root)
		}

		return "", nil, fmt.Errorf("%w: stat basedir %s: %w", ErrConfiguration, root, err)
	}

	if !info.IsDir() {
		return "", nil, fmt.Errorf("%w: basedir %s is not a directory", ErrConfiguration, root)
	}

	return root, info, nil
}
