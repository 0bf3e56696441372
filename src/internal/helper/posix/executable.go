// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is returned when argv[0] is unavailable.
const FallbackName = "planks-mcp"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return BaseName(os.Args[0])
}

// BaseName extracts a command name from arg.
// Both slash styles are treated as separators regardless of the host OS, and a
// trailing ".exe" is removed.
//
// Parameters:
//   - arg: An argv[0]-style path
//
// Returns:
//   - string: The command name, or [FallbackName] when arg yields nothing
func BaseName(arg string) string {
	parts := strings.FieldsFunc(arg, func(r rune) bool {
		return r == '/' || r == '\\' || r == filepath.Separator
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." {
		return FallbackName
	}
	return name
}
