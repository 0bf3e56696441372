// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category tags. Each one names a directory under the components root.
const (
	CategoryPrimitives  = "primitives"
	CategoryLayout      = "layout"
	CategoryForms       = "forms"
	CategoryDataDisplay = "data-display"
	CategoryFeedback    = "feedback"
	CategoryNavigation  = "navigation"
	CategoryTheme       = "theme"
)

// DefaultCategories returns the category tags in scan order.
func DefaultCategories() []string {
	return []string{
		CategoryPrimitives,
		CategoryLayout,
		CategoryForms,
		CategoryDataDisplay,
		CategoryFeedback,
		CategoryNavigation,
		CategoryTheme,
	}
}

// Variants maps a variant group name to its option names in declaration order.
type Variants = orderedmap.OrderedMap[string, []string]

// NewVariants returns an empty variant mapping.
func NewVariants() *Variants { return orderedmap.New[string, []string]() }

// Component is the derived metadata for one component source file.
//
// Fields:
//   - Name: File base name without extension (lowercase, hyphenated)
//   - Category: Category tag the file was found under
//   - FilePath: Slash-separated path of the source relative to the components root
//   - Description: First line of a single-line doc comment, if any
//   - Props: Declared prop names of the first exported ...Props declaration, if any
//   - Variants: Variant groups of the first variants block, if any
type Component struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	FilePath    string    `json:"filePath"`
	Description string    `json:"description,omitempty"`
	Props       []string  `json:"props,omitempty"`
	Variants    *Variants `json:"variants,omitempty"`
}

// HasVariants reports whether at least one variant group was extracted.
func (c Component) HasVariants() bool {
	return c.Variants != nil && c.Variants.Len() > 0
}

// VariantGroups returns the variant group names in declaration order.
func (c Component) VariantGroups() []string {
	if c.Variants == nil {
		return nil
	}
	groups := make([]string, 0, c.Variants.Len())
	for pair := c.Variants.Oldest(); pair != nil; pair = pair.Next() {
		groups = append(groups, pair.Key)
	}
	return groups
}

// Group is the ordered list of components found under one category.
type Group struct {
	Category   string      `json:"category"`
	Components []Component `json:"components"`
}

// Snapshot is one full scan of the component tree.
// Groups follow the configured category order; categories without
// components are absent.
type Snapshot []Group

// Categories returns the category tags present in the snapshot.
func (s Snapshot) Categories() []string {
	categories := make([]string, 0, len(s))
	for _, g := range s {
		categories = append(categories, g.Category)
	}
	return categories
}

// Total returns the number of components across all categories.
func (s Snapshot) Total() int {
	n := 0
	for _, g := range s {
		n += len(g.Components)
	}
	return n
}

// Group returns the components of category.
func (s Snapshot) Group(category string) ([]Component, bool) {
	for _, g := range s {
		if g.Category == category {
			return g.Components, true
		}
	}
	return nil, false
}

// Lookup finds a component by case-insensitive name.
// Categories are searched in snapshot order and the first match wins.
func (s Snapshot) Lookup(name string) (Component, bool) {
	for _, g := range s {
		for _, c := range g.Components {
			if strings.EqualFold(c.Name, name) {
				return c, true
			}
		}
	}
	return Component{}, false
}
