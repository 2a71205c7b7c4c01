// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"errors"

	goerrors "github.com/go-errors/errors"
)

// Sentinel errors for treescan operations.
var (
	// ErrInvalidPattern indicates malformed or unsupported pattern input.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrConfiguration indicates invalid scanner configuration, such as a
	// missing or non-directory base directory.
	ErrConfiguration = errors.New("invalid scan configuration")
	// ErrTraversalIO indicates an I/O failure while walking the tree.
	ErrTraversalIO = errors.New("traversal failed")
	// ErrNilScanner indicates a nil Scanner receiver.
	ErrNilScanner = errors.New("scanner is nil")
	// ErrNotScanned indicates a result request before any Scan.
	ErrNotScanned = errors.New("scan has not run")
)

// withStackTrace wraps err with the caller stack trace. Errors that already
// carry a stack are returned unchanged.
func withStackTrace(err error) error {
	if err == nil {
		return nil
	}

	var stacked *goerrors.Error
	if errors.As(err, &stacked) {
		return err
	}

	return goerrors.Wrap(err, 1)
}

// ErrorStack returns err rendered with its stack trace when one was recorded,
// and the plain message otherwise.
func ErrorStack(err error) string {
	if err == nil {
		return ""
	}

	var stacked *goerrors.Error
	if errors.As(err, &stacked) {
		return stacked.ErrorStack()
	}

	return err.Error()
}
