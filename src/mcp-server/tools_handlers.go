// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
)

// handleSearchComponents searches the catalog by component name or category.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing the query
//   - cat: Component catalog, scanned fresh for this call
//
// Returns:
//   - The tool result holding the JSON array of {category, components} groups
//   - An error if the result cannot be encoded
//
// The query is matched case-insensitively. A category equal to the query contributes
// all of its components first; every category then contributes the components whose
// name contains the query. No match yields an empty array.
func handleSearchComponents(ctx context.Context, request mcp.CallToolRequest, cat *catalog.Catalog) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query parameter required: %v", err)), nil
	}

	payload, err := catalog.EncodeJSON(catalog.Search(cat.All(), query))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search results: %w", err)
	}

	return mcp.NewToolResultText(payload), nil
}

// handleGetComponentInfo returns the metadata of a single component.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing the component name
//   - cat: Component catalog, scanned fresh for this call
//
// Returns:
//   - The tool result holding the component JSON, or the text
//     "Component '<name>' not found"
//   - An error if the component cannot be encoded
func handleGetComponentInfo(ctx context.Context, request mcp.CallToolRequest, cat *catalog.Catalog) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("name parameter required: %v", err)), nil
	}

	component, ok := cat.ByName(name)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Component '%s' not found", name)), nil
	}

	payload, err := catalog.EncodeJSON(component)
	if err != nil {
		return nil, fmt.Errorf("failed to encode component: %w", err)
	}

	return mcp.NewToolResultText(payload), nil
}
