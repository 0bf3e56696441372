// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/sailflow/planks-mcp/src/logger"
)

// Resource identifiers.
const (
	ListURI              = "planks://components/list"
	TailwindURI          = "planks://config/tailwind"
	ComponentURIPrefix   = "planks://components/"
	ExampleURIPrefix     = "planks://examples/"
	ComponentURITemplate = ComponentURIPrefix + "{name}"
	ExampleURITemplate   = ExampleURIPrefix + "{name}"
)

// Payload content types.
const (
	MIMETypeJSON = "application/json"
	MIMETypeText = "text/plain"
)

// cssColorVariables are the theme variables the stylesheet defines.
var cssColorVariables = []string{
	"--background",
	"--foreground",
	"--primary",
	"--primary-foreground",
	"--secondary",
	"--secondary-foreground",
	"--muted",
	"--muted-foreground",
	"--accent",
	"--accent-foreground",
	"--destructive",
	"--destructive-foreground",
	"--border",
	"--input",
	"--ring",
}

// Handler produces the payload text of one resource.
type Handler func() (string, error)

// Descriptor is one addressable resource.
//
// Handlers close over the component name only, so reading a descriptor always
// reflects the current source tree.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Handler     Handler
}

// Resources enumerates and reads the planks:// resources.
type Resources struct {
	catalog      *Catalog
	root         fs.FS
	tailwindPath string
	log          logger.Logger
}

// NewResources creates the resource catalog.
//
// Parameters:
//   - cat: Component catalog
//   - root: Project root holding the Tailwind configuration
//   - tailwindPath: Slash-separated path of the Tailwind configuration inside root
//   - log: Destination for handler failures
//
// Returns:
//   - *Resources: Resource catalog ready for use
func NewResources(cat *Catalog, root fs.FS, tailwindPath string, log logger.Logger) *Resources {
	return &Resources{catalog: cat, root: root, tailwindPath: tailwindPath, log: log}
}

// MIMETypeFor infers the payload type of uri: examples are plain text,
// everything else is JSON.
func MIMETypeFor(uri string) string {
	if strings.Contains(uri, "/examples/") {
		return MIMETypeText
	}
	return MIMETypeJSON
}

// ComponentURI returns the detail resource identifier of a component.
func ComponentURI(name string) string { return ComponentURIPrefix + name }

// ExampleURI returns the example resource identifier of a component.
func ExampleURI(name string) string { return ExampleURIPrefix + name }

// Fixed returns the two global descriptors.
func (r *Resources) Fixed() []Descriptor {
	return []Descriptor{
		{
			URI:         ListURI,
			Name:        "Component List",
			Description: "List all available components organized by category",
			MIMEType:    MIMETypeJSON,
			Handler:     r.ListSummary,
		},
		{
			URI:         TailwindURI,
			Name:        "Tailwind Configuration",
			Description: "Get the Tailwind CSS configuration used by the component library",
			MIMEType:    MIMETypeJSON,
			Handler:     r.TailwindConfig,
		},
	}
}

// List returns the global descriptors followed by a detail and an example
// descriptor for every component, in catalog order.
func (r *Resources) List() []Descriptor {
	snapshot := r.catalog.All()
	descriptors := make([]Descriptor, 0, 2+2*snapshot.Total())
	descriptors = append(descriptors, r.Fixed()...)

	for _, group := range snapshot {
		for _, c := range group.Components {
			name := c.Name
			descriptors = append(descriptors,
				Descriptor{
					URI:         ComponentURI(name),
					Name:        name + " Component",
					Description: fmt.Sprintf("Metadata and usage information for the %s component", name),
					MIMEType:    MIMETypeJSON,
					Handler:     func() (string, error) { return r.ComponentDetail(name) },
				},
				Descriptor{
					URI:         ExampleURI(name),
					Name:        name + " Example",
					Description: fmt.Sprintf("Usage example for the %s component", name),
					MIMEType:    MIMETypeText,
					Handler:     func() (string, error) { return r.ComponentExample(name) },
				},
			)
		}
	}
	return descriptors
}

// Read resolves uri and runs its handler.
//
// The fixed identifiers are matched first, then the component and example
// prefixes. Any other identifier, or a handler error, is reported as not found.
func (r *Resources) Read(uri string) (string, bool) {
	handler, ok := r.resolve(uri)
	if !ok {
		return "", false
	}

	text, err := handler()
	if err != nil {
		r.log.Errorf("failed to read resource %s: %v", uri, err)
		return "", false
	}
	return text, true
}

// resolve maps uri to its handler.
func (r *Resources) resolve(uri string) (Handler, bool) {
	switch uri {
	case ListURI:
		return r.ListSummary, true
	case TailwindURI:
		return r.TailwindConfig, true
	}

	if name, ok := strings.CutPrefix(uri, ComponentURIPrefix); ok && name != "" {
		return func() (string, error) { return r.ComponentDetail(name) }, true
	}
	if name, ok := strings.CutPrefix(uri, ExampleURIPrefix); ok && name != "" {
		return func() (string, error) { return r.ComponentExample(name) }, true
	}
	return nil, false
}

type componentSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HasVariants bool   `json:"hasVariants"`
}

type categorySummary struct {
	Category   string             `json:"category"`
	Count      int                `json:"count"`
	Components []componentSummary `json:"components"`
}

type listSummary struct {
	TotalComponents int               `json:"totalComponents"`
	Categories      []string          `json:"categories"`
	Components      []categorySummary `json:"components"`
}

// ListSummary renders the planks://components/list payload.
func (r *Resources) ListSummary() (string, error) {
	snapshot := r.catalog.All()

	summary := listSummary{
		TotalComponents: snapshot.Total(),
		Categories:      snapshot.Categories(),
		Components:      make([]categorySummary, 0, len(snapshot)),
	}
	for _, group := range snapshot {
		cs := categorySummary{
			Category:   group.Category,
			Count:      len(group.Components),
			Components: make([]componentSummary, 0, len(group.Components)),
		}
		for _, c := range group.Components {
			cs.Components = append(cs.Components, componentSummary{
				Name:        c.Name,
				Description: c.Description,
				HasVariants: c.HasVariants(),
			})
		}
		summary.Components = append(summary.Components, cs)
	}

	return EncodeJSON(summary)
}

type cssVariables struct {
	Colors []string `json:"colors"`
	Radius string   `json:"radius"`
}

type tailwindPayload struct {
	Description  string       `json:"description"`
	Note         string       `json:"note"`
	Config       string       `json:"config"`
	CSSVariables cssVariables `json:"cssVariables"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// TailwindConfig renders the planks://config/tailwind payload.
// When the configuration file cannot be read, the payload is an error object.
func (r *Resources) TailwindConfig() (string, error) {
	data, err := fs.ReadFile(r.root, r.tailwindPath)
	if err != nil {
		r.log.Errorf("failed to read Tailwind config %q: %v", r.tailwindPath, err)
		return EncodeJSON(errorPayload{Error: "Failed to read Tailwind config"})
	}

	library := r.catalog.Options().Library
	return EncodeJSON(tailwindPayload{
		Description: "Tailwind CSS configuration for " + library,
		Note:        "This library uses CSS variables for theming. Import the styles.css file to use the components.",
		Config:      string(data),
		CSSVariables: cssVariables{
			Colors: cssColorVariables,
			Radius: "--radius",
		},
	})
}

type usageHint struct {
	Import string `json:"import"`
	Styles string `json:"styles"`
}

type componentDetail struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Props       []string  `json:"props,omitempty"`
	Variants    *Variants `json:"variants,omitempty"`
	Source      *string   `json:"source"`
	Example     *string   `json:"example"`
	Usage       usageHint `json:"usage"`
}

// ComponentDetail renders the planks://components/<name> payload.
// An unknown name yields an error object, not an error.
func (r *Resources) ComponentDetail(name string) (string, error) {
	c, ok := r.catalog.ByName(name)
	if !ok {
		return EncodeJSON(errorPayload{Error: fmt.Sprintf("Component '%s' not found", name)})
	}

	opts := r.catalog.Options()
	detail := componentDetail{
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Props:       c.Props,
		Variants:    c.Variants,
		Usage: usageHint{
			Import: fmt.Sprintf("import { %s } from '%s';", DisplayName(c.Name), opts.Library),
			Styles: fmt.Sprintf("import '%s';", opts.StylesImport),
		},
	}
	if source, ok := r.catalog.Source(c.Name); ok {
		detail.Source = &source
	}
	if example, ok := r.catalog.Example(c.Name); ok {
		detail.Example = &example
	}

	return EncodeJSON(detail)
}

// ComponentExample renders the planks://examples/<name> payload.
// An unknown name yields a comment placeholder.
func (r *Resources) ComponentExample(name string) (string, error) {
	example, ok := r.catalog.Example(name)
	if !ok {
		return fmt.Sprintf("// Component '%s' not found", name), nil
	}
	return example, nil
}
