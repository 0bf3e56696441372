// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// planks-mcp serves the @sailflow/planks UI component catalog to AI assistants
// over the Model Context Protocol, and browses the same catalog from a terminal.
//
// # Installation
//
//	go install github.com/sailflow/planks-mcp/cmd/planks-mcp@latest
//
// # Usage
//
//	planks-mcp [--config FILE] [--http] [--instructions]
//	planks-mcp list [--tree]
//	planks-mcp search QUERY [--json]
//	planks-mcp show NAME [--source] [--color]
//	planks-mcp example NAME [--color]
//
// # Server
//
// Without a subcommand the server speaks JSON-RPC on stdin and stdout. It
// exposes two tools, search_components and get_component_info, and the
// planks:// resources: the component list, the Tailwind configuration, and a
// detail and an example resource per component. With --http it serves
// streamable HTTP on http.addr, plus /metrics and /healthz.
//
// # Configuration
//
// A JSON, JSONC or YAML file given by --config or PLANKS_MCP_CONFIG_FILE:
//
//	library:
//	  name: "@sailflow/planks"
//	paths:
//	  root: /work/planks
//	  components: src/components
//	  tailwindConfig: tailwind.config.ts
//	http:
//	  addr: 127.0.0.1:8080
//
// PLANKS_ROOT overrides paths.root.
//
// # Examples
//
// Register the server with an MCP client:
//
//	{"mcpServers": {"planks": {"command": "planks-mcp", "env": {"PLANKS_ROOT": "/work/planks"}}}}
//
// Find a component from the terminal:
//
//	planks-mcp search butt
//	planks-mcp example button --color
package main
