// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/sailflow/planks-mcp/src/logger"
)

// Scanner lists component source files per category.
//
// It only identifies files. Metadata is attached by [Catalog].
type Scanner struct {
	fsys fs.FS
	opts Options
	log  logger.Logger
}

// NewScanner creates a Scanner over fsys, which must be rooted at the
// components directory.
//
// Parameters:
//   - fsys: Component tree
//   - opts: Scan options; empty fields take their defaults
//   - log: Destination for I/O failures
//
// Returns:
//   - *Scanner: Scanner ready for use
func NewScanner(fsys fs.FS, opts Options, log logger.Logger) *Scanner {
	return &Scanner{fsys: fsys, opts: opts.withDefaults(), log: log}
}

// Scan walks each category directory and returns one record per component
// source file, without extracted metadata.
//
// A missing category directory is skipped silently. Aggregation files and
// files with another extension are ignored. Categories without components are
// left out of the snapshot. Entries keep directory listing order.
func (s *Scanner) Scan() Snapshot {
	var snapshot Snapshot

	for _, category := range s.opts.Categories {
		entries, err := fs.ReadDir(s.fsys, category)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				s.log.Errorf("failed to list category %q: %v", category, err)
			}
			continue
		}

		var components []Component
		for _, entry := range entries {
			name, ok := s.componentName(entry)
			if !ok {
				continue
			}
			components = append(components, Component{
				Name:     name,
				Category: category,
				FilePath: path.Join(category, entry.Name()),
			})
		}

		if len(components) > 0 {
			snapshot = append(snapshot, Group{Category: category, Components: components})
		}
	}

	return snapshot
}

// componentName returns the component name for entry, or false when the entry
// is not a component source file.
func (s *Scanner) componentName(entry fs.DirEntry) (string, bool) {
	if entry.IsDir() {
		return "", false
	}
	file := entry.Name()
	if path.Ext(file) != s.opts.Extension {
		return "", false
	}
	name := strings.TrimSuffix(file, s.opts.Extension)
	if name == "" || name == s.opts.IndexFile {
		return "", false
	}
	return name, true
}
