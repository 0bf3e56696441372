// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
)

func TestServerBuilder_Initialize(t *testing.T) {
	c, err := client.NewInProcessClient(newTestServer(t))
	if err != nil {
		t.Fatalf("failed to create in-process client: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("failed to start client: %v", err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "test-client", Version: "1.0.0"}
	result, err := c.Initialize(ctx, req)
	if err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}

	if result.ServerInfo.Name != ServerName {
		t.Errorf("expected server name %s, got %s", ServerName, result.ServerInfo.Name)
	}
	if result.ServerInfo.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", result.ServerInfo.Version)
	}
	if result.Capabilities.Tools == nil {
		t.Error("expected tool capability")
	}
	if result.Capabilities.Resources == nil {
		t.Error("expected resource capability")
	}
}

func TestServerBuilder_UnknownTool(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	req := mcp.CallToolRequest{}
	req.Params.Name = "unknown_tool"
	req.Params.Arguments = map[string]any{}

	_, err := c.CallTool(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(err.Error(), "unknown tool: unknown_tool") {
		t.Errorf("expected error to contain 'unknown tool: unknown_tool', got: %v", err)
	}

	// Registered tools still work on the same session.
	req.Params.Name = ToolSearchComponents
	req.Params.Arguments = map[string]any{"query": "card"}
	result, err := c.CallTool(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(result), `"card"`) {
		t.Errorf("expected card in result, got %s", resultText(result))
	}
}

func TestServerBuilder_ListTools(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	result, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("failed to list tools: %v", err)
	}

	names := map[string]bool{}
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	if len(names) != 2 || !names[ToolSearchComponents] || !names[ToolGetComponentInfo] {
		t.Errorf("expected exactly the two catalog tools, got %v", names)
	}
}

func TestServerBuilder_ListResources(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	result, err := c.ListResources(context.Background(), mcp.ListResourcesRequest{})
	if err != nil {
		t.Fatalf("failed to list resources: %v", err)
	}

	want := []struct{ uri, name, mime string }{
		{catalog.ListURI, "Component List", catalog.MIMETypeJSON},
		{catalog.TailwindURI, "Tailwind Configuration", catalog.MIMETypeJSON},
		{"planks://components/button", "button Component", catalog.MIMETypeJSON},
		{"planks://examples/button", "button Example", catalog.MIMETypeText},
		{"planks://components/card", "card Component", catalog.MIMETypeJSON},
		{"planks://examples/card", "card Example", catalog.MIMETypeText},
		{"planks://components/alert", "alert Component", catalog.MIMETypeJSON},
		{"planks://examples/alert", "alert Example", catalog.MIMETypeText},
	}

	if len(result.Resources) != len(want) {
		t.Fatalf("expected %d resources, got %d: %+v", len(want), len(result.Resources), result.Resources)
	}
	for i, w := range want {
		got := result.Resources[i]
		if got.URI != w.uri || got.Name != w.name || got.MIMEType != w.mime {
			t.Errorf("resource %d: expected %s %q %s, got %s %q %s", i, w.uri, w.name, w.mime, got.URI, got.Name, got.MIMEType)
		}
	}
}

func TestServerBuilder_ListResourcesFollowsTree(t *testing.T) {
	dir := t.TempDir()
	components := filepath.Join(dir, "src", "components", "primitives")
	if err := os.MkdirAll(components, 0o755); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.Paths.Root = dir

	s, err := NewServerBuilder().WithConfig(config).WithDefaultTools().WithDefaultResources().Build()
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	c := newTestClient(t, s)

	count := func() int {
		result, err := c.ListResources(context.Background(), mcp.ListResourcesRequest{})
		if err != nil {
			t.Fatalf("failed to list resources: %v", err)
		}
		return len(result.Resources)
	}

	if got := count(); got != 2 {
		t.Errorf("expected 2 resources for an empty tree, got %d", got)
	}

	if err := os.WriteFile(filepath.Join(components, "button.tsx"), []byte(testButtonSource), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := count(); got != 4 {
		t.Errorf("expected 4 resources after adding a component, got %d", got)
	}

	if err := os.Remove(filepath.Join(components, "button.tsx")); err != nil {
		t.Fatal(err)
	}
	if got := count(); got != 2 {
		t.Errorf("expected 2 resources after removing the component, got %d", got)
	}
}

func TestServerBuilder_ListResourceTemplates(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	result, err := c.ListResourceTemplates(context.Background(), mcp.ListResourceTemplatesRequest{})
	if err != nil {
		t.Fatalf("failed to list resource templates: %v", err)
	}

	uris := map[string]string{}
	for _, tmpl := range result.ResourceTemplates {
		uris[tmpl.URITemplate.Raw()] = tmpl.MIMEType
	}
	if uris[catalog.ComponentURITemplate] != catalog.MIMETypeJSON {
		t.Errorf("expected %s with %s, got %v", catalog.ComponentURITemplate, catalog.MIMETypeJSON, uris)
	}
	if uris[catalog.ExampleURITemplate] != catalog.MIMETypeText {
		t.Errorf("expected %s with %s, got %v", catalog.ExampleURITemplate, catalog.MIMETypeText, uris)
	}
}

func TestServerBuilder_ReadResource(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	tests := []struct {
		name         string
		uri          string
		expectMIME   string
		expectSubstr []string
		expectExact  string
	}{
		{
			name:         "component list",
			uri:          catalog.ListURI,
			expectMIME:   catalog.MIMETypeJSON,
			expectSubstr: []string{`"totalComponents": 3`, `"primitives"`, `"hasVariants": true`},
		},
		{
			name:         "tailwind config",
			uri:          catalog.TailwindURI,
			expectMIME:   catalog.MIMETypeJSON,
			expectSubstr: []string{"var(--radius)", `"--primary"`},
		},
		{
			name:       "component detail",
			uri:        "planks://components/button",
			expectMIME: catalog.MIMETypeJSON,
			expectSubstr: []string{
				`"name": "button"`,
				`"import": "import { Button } from '@sailflow/planks';"`,
				`"styles": "import '@sailflow/planks/styles.css';"`,
			},
		},
		{
			name:        "component detail not found",
			uri:         "planks://components/nonexistent",
			expectMIME:  catalog.MIMETypeJSON,
			expectExact: "{\n  \"error\": \"Component 'nonexistent' not found\"\n}",
		},
		{
			name:         "example",
			uri:          "planks://examples/card",
			expectMIME:   catalog.MIMETypeText,
			expectSubstr: []string{"import { Card } from '@sailflow/planks';", "<Card>"},
		},
		{
			name:        "example not found",
			uri:         "planks://examples/nonexistent",
			expectMIME:  catalog.MIMETypeText,
			expectExact: "// Component 'nonexistent' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.ReadResourceRequest{}
			req.Params.URI = tt.uri

			result, err := c.ReadResource(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Contents) != 1 {
				t.Fatalf("expected 1 content, got %d", len(result.Contents))
			}

			content, ok := result.Contents[0].(mcp.TextResourceContents)
			if !ok {
				t.Fatalf("expected TextResourceContents, got %T", result.Contents[0])
			}
			if content.URI != tt.uri {
				t.Errorf("expected URI %s, got %s", tt.uri, content.URI)
			}
			if content.MIMEType != tt.expectMIME {
				t.Errorf("expected MIME type %s, got %s", tt.expectMIME, content.MIMEType)
			}
			if tt.expectExact != "" && content.Text != tt.expectExact {
				t.Errorf("expected text %q, got %q", tt.expectExact, content.Text)
			}
			for _, expected := range tt.expectSubstr {
				if !strings.Contains(content.Text, expected) {
					t.Errorf("expected text to contain %q. Text: %s", expected, content.Text)
				}
			}
		})
	}
}

func TestServerBuilder_ReadUnknownResource(t *testing.T) {
	c := newTestClient(t, newTestServer(t))

	for _, uri := range []string{"planks://unknown", "file:///etc/passwd"} {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = uri
		if _, err := c.ReadResource(context.Background(), req); err == nil {
			t.Errorf("expected error reading %s", uri)
		}
	}
}

func TestServerBuilder_Metrics(t *testing.T) {
	cat, res := newTestCatalog(t)
	reg := prometheus.NewRegistry()

	s, err := NewServerBuilder().
		WithCatalog(cat, res).
		WithDefaultTools().
		WithDefaultResources().
		WithMetrics(reg).
		Build()
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	c := newTestClient(t, s)

	req := mcp.CallToolRequest{}
	req.Params.Name = ToolSearchComponents
	req.Params.Arguments = map[string]any{"query": "butt"}
	if _, err := c.CallTool(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	read := mcp.ReadResourceRequest{}
	read.Params.URI = "planks://unknown"
	_, _ = c.ReadResource(context.Background(), read)

	if n, err := testutil.GatherAndCount(reg, "planks_mcp_requests_total"); err != nil || n == 0 {
		t.Errorf("expected request counters, got %d (%v)", n, err)
	}

	expected := `
# HELP planks_mcp_request_errors_total Total number of failed MCP requests by method.
# TYPE planks_mcp_request_errors_total counter
planks_mcp_request_errors_total{method="resources/read"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "planks_mcp_request_errors_total"); err != nil {
		t.Errorf("unexpected error metrics: %v", err)
	}
}

func TestServerBuilder_DefaultConfigMissingTree(t *testing.T) {
	config := DefaultConfig()
	config.Paths.Root = t.TempDir()

	s, err := NewServerBuilder().WithConfig(config).WithDefaultTools().WithDefaultResources().Build()
	if err != nil {
		t.Fatalf("expected missing tree to build, got %v", err)
	}

	req := mcp.ReadResourceRequest{}
	req.Params.URI = catalog.ListURI
	result, err := newTestClient(t, s).ReadResource(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := result.Contents[0].(mcp.TextResourceContents).Text
	if !strings.Contains(text, `"totalComponents": 0`) {
		t.Errorf("expected empty catalog, got %s", text)
	}
}

func TestLoadInstructions(t *testing.T) {
	instructions, err := loadInstructions(templates.MagicEmbed, "@acme/ui", createTools(), createResources(), createResourceTemplates())
	if err != nil {
		t.Fatalf("failed to load instructions: %v", err)
	}

	for _, expected := range []string{
		"# @acme/ui component catalog",
		"`search_components`: Search for components by name or category",
		"`get_component_info`: Get detailed information about a specific component",
		"Call `search_components` with a component name fragment",
		"Call `get_component_info` with an exact name",
		"`planks://components/list` (application/json)",
		"`planks://config/tailwind` (application/json)",
		"`planks://components/{name}` (application/json)",
		"`planks://examples/{name}` (text/plain)",
	} {
		if !strings.Contains(instructions, expected) {
			t.Errorf("expected instructions to contain %q", expected)
		}
	}
}

func TestLoadInstructions_MissingTemplate(t *testing.T) {
	_, err := loadInstructions(fstest.MapFS{}, "@acme/ui", nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if !strings.Contains(err.Error(), "failed to load MCP server instructions template") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateResourcesMatchCatalog(t *testing.T) {
	_, res := newTestCatalog(t)

	fixed := res.Fixed()
	resources := createResources()
	if len(resources) != len(fixed) {
		t.Fatalf("expected %d fixed resources, got %d", len(fixed), len(resources))
	}
	for i, r := range resources {
		if r.Resource.URI != fixed[i].URI || r.Resource.Name != fixed[i].Name ||
			r.Resource.Description != fixed[i].Description || r.Resource.MIMEType != fixed[i].MIMEType {
			t.Errorf("resource %d: %+v does not match catalog descriptor %+v", i, r.Resource, fixed[i])
		}
	}
}
