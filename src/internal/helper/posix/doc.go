// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// The CLI uses it to derive the executable name shown in usage strings and in
// the rendered help template, so that "planks-mcp", "./planks-mcp" and
// "C:\tools\planks-mcp.exe" all print the same command name.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - BaseName: Extracts the command name from an arbitrary argv[0] value
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/planks-mcp" → "planks-mcp"
//   - Windows: "C:\bin\planks-mcp.exe" → "planks-mcp"
//   - Fallback: Empty args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
