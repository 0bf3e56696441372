// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package catalog derives a structured catalog of UI components from a
// component source tree and exposes it as addressable resources.
//
// The tree is read through an [fs.FS] rooted at the components directory. It
// holds one directory per category tag (primitives, layout, forms,
// data-display, feedback, navigation, theme) with one source file per
// component:
//
//	primitives/
//	    avatar.tsx
//	    button.tsx
//	feedback/
//	    alert.tsx
//	    index.tsx   (aggregation file, ignored)
//
// Every query rebuilds the catalog from the tree. Nothing is cached between
// calls, so results always reflect the current sources and two calls against
// an unchanged tree return identical snapshots.
//
// The pieces, leaves first:
//   - [Scanner] lists component files per category.
//   - [Extractor] pulls an optional description, props and variant groups out
//     of one source text with a best-effort textual heuristic.
//   - [Catalog] combines both, looks components up by name and re-reads sources.
//   - [ExampleGenerator] renders a usage snippet from embedded templates.
//   - [Resources] enumerates and reads the planks:// resources.
//
// Example usage:
//
//	cat, err := catalog.New(os.DirFS("src/components"), catalog.DefaultOptions(), log)
//	if err != nil {
//		return err
//	}
//	if c, ok := cat.ByName("Button"); ok {
//		fmt.Println(c.Category)
//	}
package catalog
