// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen generates the MCP tool and resource tables of the server.
//
// The definitions live in config/tools.json and config/resources.json (fixed
// resources and URI templates); templates/*.go.tmpl turn them into
// src/mcp-server/tools.go and src/mcp-server/resources.go.
package codegen
