// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherClassify(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(MatcherOptions{
		Includes: []string{"**/*.txt"},
		Excludes: []string{"tmp/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, Included, m.Classify("a.txt"))
	assert.Equal(t, Included, m.Classify("sub/c.txt"))
	assert.Equal(t, Excluded, m.Classify("tmp/c.txt"))
	assert.Equal(t, NotIncluded, m.Classify("b.dat"))
	assert.Equal(t, NotIncluded, m.Classify("tmp/b.dat"))

	assert.True(t, m.Included(`sub\c.txt`))
	assert.True(t, m.Excluded("./tmp/c.txt"))
	assert.True(t, m.CaseSensitive())
}

func TestMatcherDefaultIncludesEverything(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(MatcherOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"**"}, m.Includes().Strings())
	assert.Equal(t, 0, m.Excludes().Len())
	assert.Equal(t, Included, m.Classify(""))
	assert.Equal(t, Included, m.Classify("any/path"))
}

func TestMatcherDefaultExcludes(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(MatcherOptions{
		Excludes:           []string{"**/*.log"},
		AddDefaultExcludes: true,
	})
	require.NoError(t, err)

	assert.Equal(t, len(DefaultExcludes())+1, m.Excludes().Len())
	assert.Equal(t, "**/*.log", m.Excludes().Strings()[0])

	for _, path := range []string{
		".git",
		".git/config",
		"pkg/.svn/entries",
		"notes.txt~",
		"src/#main.c#",
		".DS_Store",
		"x/.#lock",
		"run.log",
	} {
		assert.Equal(t, Excluded, m.Classify(path), path)
	}

	assert.Equal(t, Included, m.Classify("src/main.go"))
	assert.Equal(t, Included, m.Classify("gitlab/.github"))
}

func TestMatcherCaseInsensitive(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(MatcherOptions{
		Includes:        []string{"Src/**/*.GO"},
		CaseInsensitive: true,
	})
	require.NoError(t, err)

	assert.False(t, m.CaseSensitive())
	assert.Equal(t, Included, m.Classify("src/pkg/main.go"))
	assert.True(t, m.CouldHoldIncluded("SRC"))
	assert.False(t, m.CouldHoldIncluded("docs"))
}

func TestMatcherInvalidPatterns(t *testing.T) {
	t.Parallel()

	_, err := NewMatcher(MatcherOptions{Includes: []string{"%regex[(]"}})
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "compile includes")

	_, err = NewMatcher(MatcherOptions{Excludes: []string{""}})
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "compile excludes")
}

func TestDefaultExcludesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultExcludes()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultExcludes()[0])
}

func TestClassificationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "included", Included.String())
	assert.Equal(t, "excluded", Excluded.String())
	assert.Equal(t, "not-included", NotIncluded.String())
	assert.Equal(t, "Classification(9)", Classification(9).String())
}
