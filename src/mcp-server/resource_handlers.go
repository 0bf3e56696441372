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

// handleCatalogResource returns a read handler that serves any planks:// resource
// from the resource catalog.
//
// Parameters:
//   - res: Resource catalog the reads are delegated to
//
// Returns:
//   - ResourceHandler: Handler for both fixed resources and URI template matches
//
// The payload type is inferred from the identifier: examples are plain text and
// everything else is JSON. Component names that do not exist still read
// successfully with a not-found payload; identifiers outside the planks:// scheme
// fail with "resource not found".
func handleCatalogResource(res *catalog.Resources) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI

		text, ok := res.Read(uri)
		if !ok {
			return nil, fmt.Errorf("resource not found: %s", uri)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: catalog.MIMETypeFor(uri),
				Text:     text,
			},
		}, nil
	}
}
