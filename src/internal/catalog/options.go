// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import "strings"

// Options configures how the component tree is scanned and how usage
// snippets refer to the library.
//
// Fields:
//   - Library: Package name used in generated import lines
//   - StylesImport: Stylesheet module imported by generated snippets
//   - Categories: Category directories scanned, in order
//   - Extension: Component source file extension, including the dot
//   - IndexFile: Base name of aggregation files that are skipped
type Options struct {
	Library      string
	StylesImport string
	Categories   []string
	Extension    string
	IndexFile    string
}

// DefaultOptions returns the options for the @sailflow/planks layout.
func DefaultOptions() Options {
	return Options{
		Library:      "@sailflow/planks",
		StylesImport: "@sailflow/planks/styles.css",
		Categories:   DefaultCategories(),
		Extension:    ".tsx",
		IndexFile:    "index",
	}
}

// withDefaults fills empty fields from [DefaultOptions].
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Library == "" {
		o.Library = d.Library
	}
	if o.StylesImport == "" {
		o.StylesImport = d.StylesImport
	}
	if len(o.Categories) == 0 {
		o.Categories = d.Categories
	}
	if o.Extension == "" {
		o.Extension = d.Extension
	}
	if !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	if o.IndexFile == "" {
		o.IndexFile = d.IndexFile
	}
	return o
}
