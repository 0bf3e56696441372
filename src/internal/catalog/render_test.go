// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "No components found", RenderTable(nil))
	assert.Equal(t, "No components found", RenderTree(Snapshot{}))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(newTestCatalog(t).All())

	assert.Contains(t, strings.ToLower(out), "category")
	for _, want := range []string{
		"button",
		"Primary action trigger.",
		"asChild, loading",
		"variant, size",
		"data-table",
		"rows, columns, sortBy",
	} {
		assert.Contains(t, out, want)
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, " card ") {
			assert.GreaterOrEqual(t, strings.Count(line, "-"), 3, line)
		}
	}
}

func TestRenderTree(t *testing.T) {
	want := "├── primitives\n" +
		"│   ├── avatar\n" +
		"│   └── button *\n" +
		"├── layout\n" +
		"│   └── card\n" +
		"├── data-display\n" +
		"│   └── data-table\n" +
		"└── feedback\n" +
		"    └── alert *\n"

	assert.Equal(t, want, RenderTree(newTestCatalog(t).All()))
}
