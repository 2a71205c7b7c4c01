// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files below root. Names ending with "/" create directories.
func writeTree(t testing.TB, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		full := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(name), 0o600))
	}
}

// newTestScanner creates a scanner rooted at root.
func newTestScanner(t testing.TB, root string, opts ScanOptions) *Scanner {
	t.Helper()

	opts.Basedir = root
	s, err := NewScanner(opts)
	require.NoError(t, err)
	return s
}

// mustScan creates a scanner and runs one scan.
func mustScan(t testing.TB, root string, opts ScanOptions) *Scanner {
	t.Helper()

	s := newTestScanner(t, root, opts)
	require.NoError(t, s.Scan())
	return s
}

// symlinkOrSkip creates a symbolic link or skips the test where links are unavailable.
func symlinkOrSkip(t testing.TB, target string, link string) {
	t.Helper()

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}
