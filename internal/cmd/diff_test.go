// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/treescan"
	"gopkg.in/yaml.v3"
)

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.txt", "b.txt")

	baseline := filepath.Join(t.TempDir(), "baseline.txt")
	require.NoError(t, writeFileContent(baseline, "# previous run\na.txt\nold.txt\n"))

	out, _, err := execute(t, "diff", dir, "--baseline", baseline)
	require.NoError(t, err)
	assert.Equal(t, []string{"- old.txt", "+ b.txt"}, lines(out))

	_, _, err = execute(t, "diff", dir, "--baseline", baseline, "--exit-code")
	require.ErrorIs(t, err, ErrChanged)
}

func TestDiffCommandWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.txt", "#hash.txt", "sub/c.txt")

	baseline := filepath.Join(t.TempDir(), "baseline.txt")

	_, _, err := execute(t, "diff", dir, "--baseline", baseline)
	require.ErrorIs(t, err, os.ErrNotExist)

	out, _, err := execute(t, "diff", dir, "--baseline", baseline, "--write")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"+ #hash.txt", "+ a.txt", "+ sub/c.txt"}, lines(out))

	written, err := treescan.LoadPatternsFile(baseline)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"#hash.txt", "a.txt", "sub/c.txt"}, written)

	out, _, err = execute(t, "diff", dir, "--baseline", baseline, "--exit-code")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffCommandYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "keep.go", "new.go")

	baseline := filepath.Join(t.TempDir(), "baseline.txt")
	require.NoError(t, writeFileContent(baseline, "keep.go\ngone.go\n"))

	out, _, err := execute(t, "diff", dir, "-b", baseline, "-o", "yaml", "--ext", "go")
	require.NoError(t, err)

	var got treescan.DiffResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"new.go"}, got.Added)
	assert.Equal(t, []string{"gone.go"}, got.Removed)
}

func TestDiffCommandRequiresBaseline(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "diff", t.TempDir())
	require.Error(t, err)
}

func TestEscapeBaselineLine(t *testing.T) {
	t.Parallel()

	names := []string{"plain.txt", "#hash", "space ", "tab\t", "two  ", "mid #x"}

	var src string
	for _, name := range names {
		src += escapeBaselineLine(name) + "\n"
	}

	got, err := treescan.ParsePatternsString(src)
	require.NoError(t, err)
	assert.Equal(t, names, got)
}
