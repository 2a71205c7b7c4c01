// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// LoadPatternsFile reads a pattern list file. See ParsePatterns for the format.
func LoadPatternsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file %s: %w", path, err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads pattern list files and merges them with MergePatterns.
// Every file is attempted; failures are reported together.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	lists := make([][]string, 0, len(paths))

	var errs *multierror.Error
	for _, path := range paths {
		patterns, err := LoadPatternsFile(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		lists = append(lists, patterns)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return MergePatterns(lists...), nil
}
