// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the snapshot as a markdown table with one row per
// component.
//
// Parameters:
//   - s: Snapshot to render
//
// Returns:
//   - string: Markdown table, or a short notice when the snapshot is empty
func RenderTable(s Snapshot) string {
	if s.Total() == 0 {
		return "No components found"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Category", "Component", "Description", "Props", "Variants"})

	var rows [][]string
	for _, group := range s {
		for _, c := range group.Components {
			rows = append(rows, []string{
				group.Category,
				c.Name,
				orDash(c.Description),
				orDash(strings.Join(c.Props, ", ")),
				orDash(strings.Join(c.VariantGroups(), ", ")),
			})
		}
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// RenderTree renders the snapshot as an ASCII tree of categories and
// components. Components with variant groups are marked with "*".
func RenderTree(s Snapshot) string {
	if s.Total() == 0 {
		return "No components found"
	}

	var b strings.Builder
	for gi, group := range s {
		lastGroup := gi == len(s)-1

		connector, indent := "├── ", "│   "
		if lastGroup {
			connector, indent = "└── ", "    "
		}
		b.WriteString(connector + group.Category + "\n")

		for i, c := range group.Components {
			leaf := "├── "
			if i == len(group.Components)-1 {
				leaf = "└── "
			}
			name := c.Name
			if c.HasVariants() {
				name += " *"
			}
			b.WriteString(indent + leaf + name + "\n")
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
