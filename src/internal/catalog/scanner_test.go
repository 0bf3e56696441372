// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"bytes"
	"io"
	"testing"
	"testing/fstest"

	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func componentNames(components []Component) []string {
	names := make([]string, 0, len(components))
	for _, c := range components {
		names = append(names, c.Name)
	}
	return names
}

func TestScannerScan(t *testing.T) {
	tests := []struct {
		name  string
		fsys  fstest.MapFS
		opts  Options
		want  map[string][]string
		order []string
	}{
		{
			name:  "empty tree",
			fsys:  fstest.MapFS{},
			want:  map[string][]string{},
			order: []string{},
		},
		{
			name: "index and foreign files skipped",
			fsys: fstest.MapFS{
				"primitives/index.tsx":  {},
				"primitives/button.tsx": {},
				"primitives/button.css": {},
				"primitives/README.md":  {},
			},
			want:  map[string][]string{"primitives": {"button"}},
			order: []string{"primitives"},
		},
		{
			name: "category with only an index is omitted",
			fsys: fstest.MapFS{
				"layout/index.tsx":   {},
				"feedback/alert.tsx": {},
			},
			want:  map[string][]string{"feedback": {"alert"}},
			order: []string{"feedback"},
		},
		{
			name: "nested directories ignored",
			fsys: fstest.MapFS{
				"forms/input.tsx":         {},
				"forms/internal/util.tsx": {},
			},
			want:  map[string][]string{"forms": {"input"}},
			order: []string{"forms"},
		},
		{
			name: "unknown category directories ignored",
			fsys: fstest.MapFS{
				"hooks/use-toast.tsx": {},
				"theme/provider.tsx":  {},
			},
			want:  map[string][]string{"theme": {"provider"}},
			order: []string{"theme"},
		},
		{
			name: "configured order wins over alphabetical",
			fsys: fstest.MapFS{
				"navigation/tabs.tsx":   {},
				"data-display/card.tsx": {},
				"primitives/slot.tsx":   {},
			},
			want: map[string][]string{
				"primitives":   {"slot"},
				"data-display": {"card"},
				"navigation":   {"tabs"},
			},
			order: []string{"primitives", "data-display", "navigation"},
		},
		{
			name: "files sorted within a category",
			fsys: fstest.MapFS{
				"primitives/toggle.tsx":   {},
				"primitives/avatar.tsx":   {},
				"primitives/checkbox.tsx": {},
			},
			want:  map[string][]string{"primitives": {"avatar", "checkbox", "toggle"}},
			order: []string{"primitives"},
		},
		{
			name: "custom options",
			fsys: fstest.MapFS{
				"widgets/main.jsx":  {},
				"widgets/knob.jsx":  {},
				"widgets/dial.tsx":  {},
				"primitives/x.jsx":  {},
				"widgets/.hidden/a": {},
			},
			opts:  Options{Categories: []string{"widgets"}, Extension: ".jsx", IndexFile: "main"},
			want:  map[string][]string{"widgets": {"knob"}},
			order: []string{"widgets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := NewScanner(tt.fsys, tt.opts, logger.NewMCPLogger(io.Discard, true)).Scan()

			assert.Equal(t, tt.order, snapshot.Categories())
			for category, names := range tt.want {
				components, ok := snapshot.Group(category)
				require.True(t, ok, category)
				assert.Equal(t, names, componentNames(components))
			}
		})
	}
}

func TestScannerFilePath(t *testing.T) {
	fsys := fstest.MapFS{"data-display/data-table.tsx": {}}
	snapshot := NewScanner(fsys, Options{}, logger.NewMCPLogger(io.Discard, true)).Scan()

	c, ok := snapshot.Lookup("data-table")
	require.True(t, ok)
	assert.Equal(t, "data-display/data-table.tsx", c.FilePath)
	assert.Equal(t, "data-display", c.Category)
	assert.Empty(t, c.Description)
	assert.Nil(t, c.Props)
	assert.Nil(t, c.Variants)
}

func TestScannerMissingCategoryIsSilent(t *testing.T) {
	var logs bytes.Buffer
	snapshot := NewScanner(fstest.MapFS{}, Options{}, logger.NewMCPLogger(&logs, false)).Scan()

	assert.Empty(t, snapshot)
	assert.Zero(t, snapshot.Total())
	assert.Empty(t, logs.String())
}
