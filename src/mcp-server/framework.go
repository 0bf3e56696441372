// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
)

// ServerName identifies the server in the initialize handshake.
const ServerName = "@sailflow/planks"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// CatalogToolHandler is a tool handler that queries the component catalog.
// The builder binds the catalog when the server is built.
type CatalogToolHandler func(ctx context.Context, request mcp.CallToolRequest, cat *catalog.Catalog) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// ToolDefinition pairs an MCP tool specification with its implementation.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Stable role name the instructions template refers to
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler CatalogToolHandler
	Role    string
}

// ResourceDefinition is a fixed resource whose handler reads from the resource catalog.
type ResourceDefinition struct {
	Resource mcp.Resource
	Handler  func(res *catalog.Resources) ResourceHandler
}

// ResourceTemplateDefinition is a URI template whose handler reads from the resource catalog.
type ResourceTemplateDefinition struct {
	Template mcp.ResourceTemplate
	Handler  func(res *catalog.Resources) ResourceHandler
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Server configuration
//   - Embed: Embedded templates (instructions, CLI help, config schema)
//   - Version: Server version string
//   - Logger: Destination for server and catalog logs
//   - Catalog: Component catalog; built from Config when nil
//   - Resources: Resource catalog; built from Config when nil
//   - Tools: Tool definitions
//   - FixedResources: Resources registered once at startup
//   - ResourceTemplates: URI templates that route per-component reads
//   - Instructions: Instructions sent during initialization
//   - Registerer: Prometheus registerer for request metrics; nil disables metrics
//
// This struct is used internally by ServerBuilder and [CLIFramework].
type ServerDependencies struct {
	Config            *Config
	Embed             templates.EmbedFS
	Version           string
	Logger            logger.Logger
	Catalog           *catalog.Catalog
	Resources         *catalog.Resources
	Tools             []ToolDefinition
	FixedResources    []ResourceDefinition
	ResourceTemplates []ResourceTemplateDefinition
	Instructions      string
	Registerer        prometheus.Registerer
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion(version.Version).
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration. A nil config means defaults.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for templates.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string used for identification.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger used by the server and the catalog.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithCatalog sets the component and resource catalogs directly,
// bypassing the configured paths.
func (b *ServerBuilder) WithCatalog(cat *catalog.Catalog, res *catalog.Resources) *ServerBuilder {
	b.deps.Catalog = cat
	b.deps.Resources = res
	return b
}

// WithTools adds tool definitions to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds fixed resources to the server.
func (b *ServerBuilder) WithResources(resources ...ResourceDefinition) *ServerBuilder {
	b.deps.FixedResources = append(b.deps.FixedResources, resources...)
	return b
}

// WithResourceTemplates adds URI templates to the server.
func (b *ServerBuilder) WithResourceTemplates(tmpls ...ResourceTemplateDefinition) *ServerBuilder {
	b.deps.ResourceTemplates = append(b.deps.ResourceTemplates, tmpls...)
	return b
}

// WithDefaultTools adds search_components and get_component_info.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithDefaultResources adds the component list, the Tailwind configuration and
// the per-component URI templates.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	return b.WithResources(createResources()...).
		WithResourceTemplates(createResourceTemplates()...)
}

// WithInstructions sets the instructions sent to clients during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithMetrics enables request metrics registered on reg.
func (b *ServerBuilder) WithMetrics(reg prometheus.Registerer) *ServerBuilder {
	b.deps.Registerer = reg
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if the catalog cannot be opened
//
// Per-component resources are not registered: they are appended to every
// resources/list response from a fresh scan and read through the URI templates.
// Calls to unregistered tools are rejected with "unknown tool: <name>".
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	config := b.deps.Config
	if config == nil {
		config = DefaultConfig()
	}

	log := b.deps.Logger
	if log == nil {
		log = logger.NewMCPLogger(io.Discard, true)
	}

	cat, res := b.deps.Catalog, b.deps.Resources
	if cat == nil || res == nil {
		var err error
		if cat, res, err = config.OpenCatalog(log); err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
	}

	hooks := &server.Hooks{}
	known := make(map[string]struct{}, len(b.deps.Tools))
	for _, tool := range b.deps.Tools {
		known[tool.Tool.Name] = struct{}{}
	}
	hooks.AddOnRequestInitialization(rejectUnknownTools(known))
	hooks.AddAfterListResources(appendComponentResources(res))

	if b.deps.Registerer != nil {
		NewMetrics(b.deps.Registerer).Register(hooks)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithHooks(hooks),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(ServerName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, bindCatalog(tool.Handler, cat))
	}

	for _, r := range b.deps.FixedResources {
		s.AddResource(r.Resource, r.Handler(res))
	}

	for _, t := range b.deps.ResourceTemplates {
		s.AddResourceTemplate(t.Template, t.Handler(res))
	}

	return s, nil
}

// bindCatalog adapts a [CatalogToolHandler] to the MCP handler signature.
func bindCatalog(h CatalogToolHandler, cat *catalog.Catalog) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, request, cat)
	}
}
