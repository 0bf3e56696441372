// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/logger"
)

const testButtonSource = `/**
 * Primary action trigger.
 */
export interface ButtonProps {
  asChild?: boolean;
  loading?: boolean;
}

const buttonVariants = cva('', {
  variants: {
    variant: {
      default: 'bg-primary',
      outline: 'border',
    },
  },
});
`

const testTailwindConfig = `export default {
  theme: {
    extend: {
      borderRadius: { lg: 'var(--radius)' },
    },
  },
};
`

// testComponentsFS holds three components; the index file is not one.
func testComponentsFS() fstest.MapFS {
	return fstest.MapFS{
		"primitives/button.tsx": {Data: []byte(testButtonSource)},
		"primitives/index.tsx":  {Data: []byte("export * from './button';\n")},
		"layout/card.tsx":       {Data: []byte("export const Card = () => null;\n")},
		"feedback/alert.tsx":    {Data: []byte("/**\n * Inline status message.\n */\nexport const Alert = () => null;\n")},
	}
}

func discardLogger() logger.Logger { return logger.NewMCPLogger(io.Discard, true) }

func newTestCatalog(t *testing.T) (*catalog.Catalog, *catalog.Resources) {
	t.Helper()

	log := discardLogger()
	cat, err := catalog.New(testComponentsFS(), catalog.DefaultOptions(), log)
	if err != nil {
		t.Fatalf("failed to create catalog: %v", err)
	}

	root := fstest.MapFS{"tailwind.config.ts": {Data: []byte(testTailwindConfig)}}
	return cat, catalog.NewResources(cat, root, "tailwind.config.ts", log)
}

// newTestServer builds the catalog server with the default tools and resources.
func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()

	cat, res := newTestCatalog(t)
	s, err := NewServerBuilder().
		WithVersion("1.2.3").
		WithCatalog(cat, res).
		WithDefaultTools().
		WithDefaultResources().
		Build()
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return s
}

// newTestClient starts and initializes an in-process client for s.
func newTestClient(t *testing.T, s *server.MCPServer) *client.Client {
	t.Helper()

	c, err := client.NewInProcessClient(s)
	if err != nil {
		t.Fatalf("failed to create in-process client: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("failed to start client: %v", err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "test-client", Version: "1.0.0"}
	if _, err := c.Initialize(ctx, req); err != nil {
		t.Fatalf("failed to initialize client: %v", err)
	}
	return c
}

// resultText concatenates the text content of a tool result.
func resultText(result *mcp.CallToolResult) string {
	content := ""
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			content += tc.Text
		}
	}
	return content
}
