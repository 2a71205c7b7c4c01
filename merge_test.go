// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treescan

package treescan

import (
	"reflect"
	"testing"
)

func TestMergePatterns(t *testing.T) {
	t.Parallel()

	a := []string{"src/**", "  "}
	b := []string{"*.md", "src/**", "", "docs/"}

	got := MergePatterns(a, nil, b)
	want := []string{"src/**", "*.md", "docs/"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergePatterns = %q, want %q", got, want)
	}

	got[0] = "changed"
	if a[0] != "src/**" {
		t.Fatal("MergePatterns must not alias input slices")
	}

	if out := MergePatterns(); len(out) != 0 {
		t.Fatalf("MergePatterns() = %q, want empty", out)
	}
}
