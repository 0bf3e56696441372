// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed all:examples
var exampleFS embed.FS

// defaultTemplate is the template name used when neither the component nor
// its category has a dedicated template.
const defaultTemplate = "_default"

// exampleData is the data passed to usage templates.
type exampleData struct {
	// Name is the display identifier, e.g. "DataTable" for data-table.
	Name string
	// Library is the package the component is imported from.
	Library string
}

// ExampleGenerator renders usage snippets from the embedded templates.
//
// Templates live under examples/ and are selected in this order:
//
//	examples/<category>/<name>.tmpl
//	examples/<category>/_default.tmpl
//	examples/_default.tmpl
//
// Rendering is deterministic: the same component always yields the same text.
type ExampleGenerator struct {
	library   string
	styles    string
	templates map[string]*template.Template
}

// NewExampleGenerator parses the embedded templates.
//
// Parameters:
//   - library: Package name used in import lines (e.g. "@sailflow/planks")
//   - styles: Stylesheet module imported by every snippet
//
// Returns:
//   - *ExampleGenerator: Generator ready for use
//   - error: If a template cannot be read or parsed
func NewExampleGenerator(library, styles string) (*ExampleGenerator, error) {
	g := &ExampleGenerator{
		library:   library,
		styles:    styles,
		templates: make(map[string]*template.Template),
	}

	err := fs.WalkDir(exampleFS, "examples", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".tmpl" {
			return nil
		}

		content, err := exampleFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read example template %s: %w", p, err)
		}

		key := strings.TrimSuffix(strings.TrimPrefix(p, "examples/"), ".tmpl")
		tmpl, err := template.New(key).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse example template %s: %w", p, err)
		}
		g.templates[key] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := g.templates[defaultTemplate]; !ok {
		return nil, fmt.Errorf("missing %s example template", defaultTemplate)
	}
	return g, nil
}

// Generate renders the usage snippet for c: an import line for the component,
// the stylesheet import, then the selected template body.
//
// Parameters:
//   - c: Component to render; only Name and Category are used
//
// Returns:
//   - string: The snippet text
//   - error: If template execution fails
func (g *ExampleGenerator) Generate(c Component) (string, error) {
	name := DisplayName(c.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '%s';\nimport '%s';\n\n", name, g.library, g.styles)

	data := exampleData{Name: name, Library: g.library}
	if err := g.lookup(c).Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render example for %s: %w", c.Name, err)
	}
	return b.String(), nil
}

// lookup selects the most specific template for c.
func (g *ExampleGenerator) lookup(c Component) *template.Template {
	for _, key := range []string{
		c.Category + "/" + c.Name,
		c.Category + "/" + defaultTemplate,
	} {
		if tmpl, ok := g.templates[key]; ok {
			return tmpl
		}
	}
	return g.templates[defaultTemplate]
}

// DisplayName converts a hyphenated component name to its exported
// identifier by upper-casing the first letter of every segment.
// The rest of each segment is kept as is, so "data-table" becomes
// "DataTable" and "otp-Input" becomes "OtpInput".
func DisplayName(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, segment := range strings.Split(name, "-") {
		b.WriteString(caser.String(segment))
	}
	return b.String()
}
