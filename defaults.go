// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

// defaultExcludes is the built-in exclude table.
var defaultExcludes = []string{
	// Editor and temporary files.
	"**/*~",
	"**/#*#",
	"**/.#*",
	"**/%*%",
	"**/._*",
	"**/*.swp",

	// CVS
	"**/CVS",
	"**/CVS/**",
	"**/.cvsignore",

	// Subversion
	"**/.svn",
	"**/.svn/**",

	// Arch
	"**/.arch-ids",
	"**/.arch-ids/**",

	// Bazaar
	"**/.bzr",
	"**/.bzr/**",

	// SurroundSCM
	"**/.MySCMServerInfo",

	// macOS
	"**/.DS_Store",

	// Serena Dimensions
	"**/.metadata",
	"**/.metadata/**",

	// Mercurial
	"**/.hg",
	"**/.hg/**",

	// Git
	"**/.git",
	"**/.git/**",
	"**/.gitignore",
	"**/.gitattributes",
	"**/.gitmodules",

	// BitKeeper
	"**/BitKeeper",
	"**/BitKeeper/**",
	"**/ChangeSet",
	"**/ChangeSet/**",

	// darcs
	"**/_darcs",
	"**/_darcs/**",
	"**/.darcsrepo",
	"**/.darcsrepo/**",
	"**/-darcs-backup*",
	"**/.darcs-temp-mail",
}

// DefaultExcludes returns a copy of the built-in exclude table covering VCS
// metadata directories, OS metadata files and editor backups.
func DefaultExcludes() []string {
	out := make([]string, len(defaultExcludes))
	copy(out, defaultExcludes)
	return out
}
