// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for the planks UI component catalog.
//
// The server exposes two tools, search_components and get_component_info, and
// the planks:// resources: the component list, the Tailwind configuration, and
// a detail and an example resource for every component. Every request rescans
// the component source tree, so answers always match the files on disk.
//
// The package uses a builder pattern for server construction, serves stdio by
// default and streamable HTTP with Prometheus metrics on request, and offers an
// in-memory transport for agents built on the official Go SDK.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
//
//go:generate go run ../../tools/codegen
package mcpserver
