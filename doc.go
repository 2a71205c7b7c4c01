// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

/*
Package treescan classifies entries of a directory tree against ordered
include/exclude glob patterns and diffs included-file snapshots by path.

Pattern grammar:
  - segments are separated by "/" (backslashes in globs are normalized)
  - "*" and "?" match inside one segment
  - "**" as a whole segment matches zero or more segments
  - a trailing "/" selects the whole subtree ("build/" is "build/**")
  - "%regex[expr]" matches the whole path with a regular expression
  - "%ant[glob]" is an explicitly wrapped glob

Basic flow:
  - compile patterns (`NewPattern`, `NewPatternSet`) or a path classifier (`NewMatcher`)
  - create scanner (`NewScanner`) with `ScanOptions`
  - walk the tree (`Scan`)
  - read results (`IncludedFiles`, `ExcludedFiles`, `NotIncludedFiles`, ...)

Scan prunes subtrees that cannot hold an included entry, so include results
are ready right after it. Excluded and not-included results trigger a one-time
exhaustive walk of the pruned subtrees.

A `TraversalControl` can skip subtrees or stop the walk. `SnapshotDiff` repeats
scans and reports included files added or removed between captures.
*/
package treescan
