// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/treescan"
)

// startWatchLoop runs a watch loop over opts.Basedir until the test ends.
func startWatchLoop(t *testing.T, opts treescan.ScanOptions) (*syncBuffer, func()) {
	t.Helper()

	snapshots, err := treescan.NewSnapshotDiff(opts)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	out := &syncBuffer{}
	loop := &watchLoop{
		snapshots:   snapshots,
		log:         log,
		out:         newPrinter(out, "never"),
		ready:       make(chan struct{}),
		root:        opts.Basedir,
		debounce:    20 * time.Millisecond,
		followLinks: !opts.NoFollowSymlinks,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.run(ctx) }()

	select {
	case <-loop.ready:
	case err := <-done:
		cancel()
		t.Fatalf("watch loop stopped early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("watch loop did not start")
	}

	stop := func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch loop did not stop")
		}
	}

	return out, stop
}

func TestWatchLoopReportsChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "a.txt", "skip.log")

	out, stop := startWatchLoop(t, treescan.ScanOptions{
		Basedir:        root,
		MatcherOptions: treescan.MatcherOptions{Includes: []string{"**/*.txt"}},
	})
	defer stop()

	require.Contains(t, out.String(), "1 included files")

	writeTree(t, root, "sub/b.txt", "sub/c.log")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+ sub/b.txt")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(root, "a.txt")))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "- a.txt")
	}, 5*time.Second, 20*time.Millisecond)

	require.NotContains(t, out.String(), "c.log")
}

func TestWatchLoopFollowsDirectorySymlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, "a.txt")
	writeTree(t, outside, "first.txt")

	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	out, stop := startWatchLoop(t, treescan.ScanOptions{Basedir: root})
	defer stop()

	require.Contains(t, out.String(), "2 included files")

	writeTree(t, outside, "second.txt")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+ link/second.txt")
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchLoopForget(t *testing.T) {
	t.Parallel()

	base := filepath.Join("w", "sub")
	loop := &watchLoop{watched: make(map[string]struct{})}
	for _, dir := range []string{"w", base, filepath.Join(base, "deep"), filepath.Join("w", "subling")} {
		loop.watched[dir] = struct{}{}
	}

	loop.forget(base)

	require.Len(t, loop.watched, 2)
	require.Contains(t, loop.watched, "w")
	require.Contains(t, loop.watched, filepath.Join("w", "subling"))
}

func TestWatchCommandMissingDir(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, treescan.ErrConfiguration)
}

func TestWatchCommandDebounceFlag(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "watch", t.TempDir(), "--debounce=-1s")
	require.ErrorIs(t, err, treescan.ErrConfiguration)
}
