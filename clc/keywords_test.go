// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"strings"
	"testing"

	"github.com/gogpu/spirv2clc/spirv"
)

func TestReservedIdentifierSet(t *testing.T) {
	// Spot checks across the categories.
	for _, word := range []string{
		"auto", "restrict", "inline", "_Bool",
		"uchar4", "float16", "image2d_t", "sampler_t",
		"global", "__global", "kernel", "read_only", "pipe",
	} {
		if _, ok := reservedIdentifiers[word]; !ok {
			t.Errorf("%q missing from the reserved set", word)
		}
	}
	if _, ok := reservedIdentifiers["banana"]; ok {
		t.Error("non-reserved word found in the reserved set")
	}
}

func TestMakeValidIdentifier(t *testing.T) {
	w := newWriter(&spirv.Module{}, &Options{})
	w.reset()

	if got := w.makeValidIdentifier("x"); got != "x" {
		t.Errorf("makeValidIdentifier(x) = %q", got)
	}
	if got := w.makeValidIdentifier("kernel"); got != "kernel"+madeValidSuffix {
		t.Errorf("makeValidIdentifier(kernel) = %q", got)
	}
}

func TestMakeValidIdentifierUniqueness(t *testing.T) {
	w := newWriter(&spirv.Module{}, &Options{})
	w.reset()

	w.names[1] = "x"
	got := w.makeValidIdentifier("x")
	if got == "x" {
		t.Fatal("issued name reused")
	}
	if !strings.HasPrefix(got, "x"+madeValidSuffix) {
		t.Errorf("collision suffix missing: %q", got)
	}

	// A second collision picks up a numbered suffix.
	w.names[2] = got
	next := w.makeValidIdentifier("x")
	if next == got || next == "x" {
		t.Errorf("numbered suffix not unique: %q", next)
	}
}
