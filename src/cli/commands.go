// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/spf13/cobra"
)

// Highlighting settings for terminal output.
const (
	highlightLexer     = "tsx"
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// CatalogLoader opens the component catalog for one command invocation.
//
// Parameters:
//   - log: Destination for catalog logs
//
// Returns:
//   - *catalog.Catalog: Component catalog
//   - *catalog.Resources: Resource catalog over the same tree
//   - error: If the configuration or the catalog cannot be loaded
type CatalogLoader func(log logger.Logger) (*catalog.Catalog, *catalog.Resources, error)

// Commands returns the catalog subcommands: list, show, example and search.
//
// Every command scans the source tree once through load. Catalog errors go to
// stderr; informational catalog logs are shown with --verbose.
func Commands(load CatalogLoader) []*cobra.Command {
	cmds := []*cobra.Command{
		newListCommand(load),
		newShowCommand(load),
		newExampleCommand(load),
		newSearchCommand(load),
	}
	for _, cmd := range cmds {
		cmd.Flags().BoolP("verbose", "v", false, "log catalog details to stderr")
	}
	return cmds
}

func newListCommand(load CatalogLoader) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := load(commandLogger(cmd))
			if err != nil {
				return err
			}

			snapshot := cat.All()
			if tree {
				_, err = fmt.Fprint(cmd.OutOrStdout(), catalog.RenderTree(snapshot))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalog.RenderTable(snapshot))
			return err
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the category tree instead of the table")
	return cmd
}

func newShowCommand(load CatalogLoader) *cobra.Command {
	var source, color bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the details of a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cat, res, err := load(commandLogger(cmd))
			if err != nil {
				return err
			}
			if _, ok := cat.ByName(name); !ok {
				return notFound(name)
			}

			if source {
				src, ok := cat.Source(name)
				if !ok {
					return fmt.Errorf("failed to read source of component %q", name)
				}
				return write(cmd.OutOrStdout(), src, color)
			}

			detail, err := res.ComponentDetail(name)
			if err != nil {
				return fmt.Errorf("failed to render component %q: %w", name, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), detail)
			return err
		},
	}
	cmd.Flags().BoolVar(&source, "source", false, "print the component source instead of the details")
	cmd.Flags().BoolVar(&color, "color", false, "highlight the source for a 256-color terminal")
	return cmd
}

func newExampleCommand(load CatalogLoader) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "example <name>",
		Short: "Print a usage example for a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cat, _, err := load(commandLogger(cmd))
			if err != nil {
				return err
			}

			snippet, ok := cat.Example(name)
			if !ok {
				return notFound(name)
			}
			return write(cmd.OutOrStdout(), snippet, color)
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "highlight the example for a 256-color terminal")
	return cmd
}

func newSearchCommand(load CatalogLoader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search components by name or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := load(commandLogger(cmd))
			if err != nil {
				return err
			}

			results := catalog.Search(cat.All(), args[0])
			out := cmd.OutOrStdout()

			if asJSON {
				payload, err := catalog.EncodeJSON(results)
				if err != nil {
					return fmt.Errorf("failed to encode search results: %w", err)
				}
				_, err = fmt.Fprintln(out, payload)
				return err
			}

			if len(results) == 0 {
				_, err = fmt.Fprintf(out, "No components match %q\n", args[0])
				return err
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s:\n", r.Category)
				for _, name := range r.Components {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the same JSON as the search_components tool")
	return cmd
}

// notFound is the error of every command given an unknown component.
func notFound(name string) error {
	return fmt.Errorf("component %q not found", name)
}

// write prints text, highlighted as TSX when color is set.
func write(w io.Writer, text string, color bool) error {
	if color {
		if err := quick.Highlight(w, text, highlightLexer, highlightFormatter, highlightStyle); err != nil {
			return fmt.Errorf("failed to highlight output: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
