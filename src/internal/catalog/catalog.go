// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"fmt"
	"io/fs"

	"github.com/sailflow/planks-mcp/src/internal/helper/gc"
	"github.com/sailflow/planks-mcp/src/logger"
)

// Catalog composes a [Scanner] and an [Extractor] into component lookups.
//
// A Catalog holds no component state: every method rescans the tree.
// It is safe for concurrent use as long as the underlying [fs.FS] is.
type Catalog struct {
	opts      Options
	fsys      fs.FS
	scanner   *Scanner
	extractor *Extractor
	examples  *ExampleGenerator
	log       logger.Logger
}

// New creates a Catalog over fsys, which must be rooted at the components directory.
//
// Parameters:
//   - fsys: Component tree (for example [os.DirFS] of src/components)
//   - opts: Scan and snippet options; empty fields take their defaults
//   - log: Destination for extraction misses and I/O failures
//
// Returns:
//   - *Catalog: Catalog ready for use
//   - error: If the embedded example templates cannot be parsed
func New(fsys fs.FS, opts Options, log logger.Logger) (*Catalog, error) {
	opts = opts.withDefaults()

	examples, err := NewExampleGenerator(opts.Library, opts.StylesImport)
	if err != nil {
		return nil, fmt.Errorf("failed to load example templates: %w", err)
	}

	return &Catalog{
		opts:      opts,
		fsys:      fsys,
		scanner:   NewScanner(fsys, opts, log),
		extractor: NewExtractor(log),
		examples:  examples,
		log:       log,
	}, nil
}

// All scans the tree and attaches extracted metadata to every component.
// A component whose source cannot be read is kept with its identity only.
func (c *Catalog) All() Snapshot {
	snapshot := c.scanner.Scan()
	for gi := range snapshot {
		components := snapshot[gi].Components
		for i := range components {
			source, err := c.readSource(components[i].FilePath)
			if err != nil {
				c.log.Errorf("failed to read component %q: %v", components[i].FilePath, err)
				continue
			}
			md := c.extractor.Extract(source)
			if md.Description == "" && md.Props == nil && md.Variants == nil {
				c.log.Printf("no metadata found in %s", components[i].FilePath)
			}
			components[i].Description = md.Description
			components[i].Props = md.Props
			components[i].Variants = md.Variants
		}
	}
	return snapshot
}

// ByName returns the first component whose name matches name case-insensitively,
// searching categories in scan order.
func (c *Catalog) ByName(name string) (Component, bool) {
	return c.All().Lookup(name)
}

// Source re-reads the source text of the named component.
// A read failure is logged and reported as not found.
func (c *Catalog) Source(name string) (string, bool) {
	component, ok := c.ByName(name)
	if !ok {
		return "", false
	}

	source, err := c.readSource(component.FilePath)
	if err != nil {
		c.log.Errorf("failed to read component source %q: %v", component.FilePath, err)
		return "", false
	}
	return source, true
}

// Example renders the usage snippet of the named component.
func (c *Catalog) Example(name string) (string, bool) {
	component, ok := c.ByName(name)
	if !ok {
		return "", false
	}

	example, err := c.examples.Generate(component)
	if err != nil {
		c.log.Errorf("%v", err)
		return "", false
	}
	return example, true
}

// Options returns the effective options, defaults applied.
func (c *Catalog) Options() Options { return c.opts }

// readSource reads one file through a pooled buffer.
func (c *Catalog) readSource(name string) (string, error) {
	f, err := c.fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return "", err
	}
	return buf.String(), nil
}
