// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/woozymasta/treescan"
)

// watchCommandOptions are flags of the watch command.
type watchCommandOptions struct {
	patterns patternFlags
	debounce time.Duration
}

// NewWatchCommand creates the 'treescan watch' command.
func NewWatchCommand(g *globalOptions) *cobra.Command {
	o := &watchCommandOptions{}

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print included files added or removed while the tree changes",
		Long: `Capture included files of a directory tree, then re-capture after every
burst of filesystem events and print what was added or removed.

Directory symlinks are watched through their targets unless
--no-follow is set. Runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, g, o, dirArg(args))
		},
	}

	o.patterns.register(cmd)
	cmd.Flags().DurationVar(&o.debounce, "debounce", 0, "quiet time before re-capture (default from config, 200ms)")

	return cmd
}

// runWatch executes the watch command.
func runWatch(cmd *cobra.Command, g *globalOptions, o *watchCommandOptions, dir string) error {
	overrides := o.patterns.overrides(cmd)
	if cmd.Flags().Changed("debounce") {
		overrides.Debounce = &o.debounce
	}

	sess, err := g.open(cmd, dir, overrides)
	if err != nil {
		return err
	}

	opts, err := sess.scanOptions(dir)
	if err != nil {
		return sess.fail(err)
	}

	snapshots, err := treescan.NewSnapshotDiff(opts)
	if err != nil {
		return sess.fail(err)
	}

	loop := &watchLoop{
		snapshots:   snapshots,
		log:         sess.log,
		out:         sess.out,
		root:        dir,
		debounce:    sess.cfg.Watch.Debounce,
		followLinks: !opts.NoFollowSymlinks,
	}

	return sess.fail(loop.run(cmd.Context()))
}

// watchLoop re-captures snapshots on filesystem events.
// Events, timers and captures are all handled on the goroutine calling run.
type watchLoop struct {
	snapshots *treescan.SnapshotDiff
	log       logrus.FieldLogger
	out       *printer
	// ready is closed once the initial capture is printed and directories are watched.
	ready chan struct{}
	// watched holds resolved directories already added to the watcher.
	watched     map[string]struct{}
	root        string
	debounce    time.Duration
	followLinks bool
}

// run blocks until ctx is done or a capture fails.
func (l *watchLoop) run(ctx context.Context) error {
	snap, err := l.snapshots.Capture()
	if err != nil {
		return err
	}

	l.out.headerf("watching %s: %d included files", l.root, len(snap.Files))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	l.watched = make(map[string]struct{})
	l.addTree(watcher, l.root)
	if l.ready != nil {
		close(l.ready)
	}

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				l.forget(ev.Name)
			}

			if ev.Op&fsnotify.Create == fsnotify.Create && l.isDir(ev.Name) {
				l.addTree(watcher, ev.Name)
			}

			settle = time.After(l.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			l.log.WithError(err).Warn("watch error")

		case <-settle:
			settle = nil

			snap, err := l.snapshots.Capture()
			if err != nil {
				return err
			}

			l.log.WithFields(logrus.Fields{
				"snapshot": snap.ID,
				"files":    len(snap.Files),
			}).Debug("capture")

			if !snap.Empty() {
				l.out.headerf("%s", snap.CapturedAt.Format(time.RFC3339))
				l.out.diff(snap.DiffResult)
			}
		}
	}
}

// addTree watches dir and every directory below it. Directory symlinks are
// followed into their targets when followLinks is set; each resolved
// directory is added once.
func (l *watchLoop) addTree(watcher *fsnotify.Watcher, dir string) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		l.log.WithError(err).WithField("path", dir).Debug("skip unwatchable path")
		return
	}

	_ = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.log.WithError(err).WithField("path", path).Debug("skip unwatchable path")
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if l.followLinks && l.isDir(path) {
				l.addTree(watcher, path)
			}

			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if _, ok := l.watched[path]; ok {
			return filepath.SkipDir
		}
		l.watched[path] = struct{}{}

		if err := watcher.Add(path); err != nil {
			l.log.WithError(err).WithField("path", path).Warn("cannot watch directory")
		}

		return nil
	})
}

// forget drops path and directories below it from the watched set, so a
// directory recreated under the same name is added again.
func (l *watchLoop) forget(path string) {
	prefix := path + string(filepath.Separator)
	for dir := range l.watched {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(l.watched, dir)
		}
	}
}

// isDir reports whether path is a directory, resolving a final symlink only
// when links are followed.
func (l *watchLoop) isDir(path string) bool {
	stat := os.Lstat
	if l.followLinks {
		stat = os.Stat
	}

	info, err := stat(path)
	return err == nil && info.IsDir()
}
