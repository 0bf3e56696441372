// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
	"github.com/sailflow/planks-mcp/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version the server reports during initialization.
//
// It is the version from the version package until [Run] is called with
// another value.
func GetVersion() string {
	return appVersion
}

// DefaultDependencies returns the dependencies of the catalog server: the
// embedded templates, both catalog tools, the fixed resources and the
// per-component URI templates.
//
// Parameters:
//   - version: Version string reported to clients
//
// Returns:
//   - ServerDependencies: Dependencies for [NewCLIFramework]
func DefaultDependencies(version string) ServerDependencies {
	return ServerDependencies{
		Embed:             templates.MagicEmbed,
		Version:           version,
		Tools:             createTools(),
		FixedResources:    createResources(),
		ResourceTemplates: createResourceTemplates(),
	}
}

// Run executes the planks-mcp command line.
//
// Without arguments the MCP server starts on stdio (or streamable HTTP with
// --http) and runs until SIGINT or SIGTERM, which is reported as success.
// The catalog subcommands run once and return.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Configuration, catalog, transport or subcommand errors
//
// Configuration:
//   - --config, or the PLANKS_MCP_CONFIG_FILE environment variable
//   - PLANKS_ROOT overrides the project root
func Run(version string) error {
	appVersion = version

	return NewCLIFramework("", DefaultDependencies(version)).
		BuildRootCommand().
		Execute()
}
