// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The embedded files are:
//   - planks_instructions.md: text/template source of the instructions sent to MCP clients
//   - cli_help.md: text/template source of the root command help, split at "## Examples"
//   - config.schema.json: JSON Schema that JSON, JSONC and YAML configuration files are validated against
//
// [MagicEmbed] is the default [EmbedFS] implementation:
//
//	import "github.com/sailflow/planks-mcp/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile(templates.InstructionsFile)
//	if err != nil {
//		return fmt.Errorf("failed to read instructions: %w", err)
//	}
package templates
