// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the catalog subcommands of the planks-mcp binary.
//
// The commands (list, show, example and search) read the same component tree
// as the MCP server and print the same payloads, so the catalog can be checked
// from a terminal without an MCP client. Source and examples can be highlighted
// for 256-color terminals.
package cli
