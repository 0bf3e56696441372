// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"encoding/json"
	"strings"

	"github.com/sailflow/planks-mcp/src/internal/helper/gc"
)

// EncodeJSON renders v as JSON indented with two spaces.
// HTML characters are kept literal because payloads embed JSX source.
func EncodeJSON(v any) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
