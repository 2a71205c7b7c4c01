// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	src := "\ufeff# build outputs\n" +
		"build/\n" +
		"\n" +
		"**/*.tmp   \n" +
		"\\#literal\n" +
		"keep\\ \n" +
		"  # indented is a pattern\n" +
		"dos/**\r\n" +
		"%regex[.*\\.bak]\n"

	got, err := ParsePatternsString(src)
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	want := []string{
		"build/",
		"**/*.tmp",
		"#literal",
		"keep ",
		"  # indented is a pattern",
		"dos/**",
		"%regex[.*\\.bak]",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestParsePatternsEmpty(t *testing.T) {
	t.Parallel()

	got, err := ParsePatternsString("# only comments\n\n   \n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected no patterns, got %q", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestParsePatternsReadError(t *testing.T) {
	t.Parallel()

	_, err := ParsePatterns(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestTrimTrailingSpaces(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a":      "a",
		"a  \t":  "a",
		"a\\ ":   "a ",
		"a\\  ":  "a ",
		"":       "",
		"   ":    "",
		"a b  ":  "a b",
		"\\ ":    " ",
		"x\t\\\t": "x\t\t",
	}

	for in, want := range tests {
		if got := trimTrailingSpaces(in); got != want {
			t.Errorf("trimTrailingSpaces(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePatternsLongLine(t *testing.T) {
	t.Parallel()

	src := "ok/**\n" + strings.Repeat("x", maxPatternLine+1) + "\n"
	_, err := ParsePatternsString(src)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}
