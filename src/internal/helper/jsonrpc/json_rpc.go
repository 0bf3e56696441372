// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Envelope is the routing view of a JSON-RPC request.
//
// Fields:
//   - ID: Request identifier (nil for notifications)
//   - Method: Method name such as "tools/call"
//   - Params: Decoded params object (nil when absent or not an object)
type Envelope struct {
	ID     any
	Method string
	Params map[string]any
}

// Decode parses raw JSON-RPC bytes into an [Envelope].
//
// Parameters:
//   - data: Raw JSON-RPC message
//
// Returns:
//   - Envelope: The normalized routing view
//   - error: If data is not a JSON object or the method is not a string
func Decode(data []byte) (Envelope, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode JSON-RPC message: %w", err)
	}

	msg := Map(raw)
	env := Envelope{ID: msg["id"]}

	if m, ok := msg["method"]; ok {
		method, ok := m.(string)
		if !ok {
			return Envelope{}, fmt.Errorf("invalid method: expected string, got %T", m)
		}
		env.Method = method
	}

	if p, ok := msg["params"].(map[string]any); ok {
		env.Params = p
	}

	return env, nil
}

// StringParam returns the named string parameter of the envelope.
// The second result is false when the parameter is missing or not a string.
func (e Envelope) StringParam(name string) (string, bool) {
	if e.Params == nil {
		return "", false
	}
	s, ok := e.Params[name].(string)
	return s, ok
}

// Map normalizes a decoded JSON-RPC object.
// Top-level keys are lowercased, integral float IDs become int64, an empty
// object ID becomes nil, and a missing "jsonrpc" member is filled with
// [mcp.JSONRPC_VERSION].
//
// Parameters:
//   - temp: Decoded JSON object
//
// Returns:
//   - map[string]any: A new normalized map; temp is not modified
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any, len(temp)+1)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case "id":
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed["id"] = nil
			} else {
				fixed["id"] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed["jsonrpc"]; !ok {
		fixed["jsonrpc"] = mcp.JSONRPC_VERSION
	}

	return fixed
}

// normalizeIDValue converts whole-number float IDs produced by encoding/json to int64.
func normalizeIDValue(v any) any {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}

// UnmarshalFromMap converts a generic decoded value into dest by round-tripping through JSON.
//
// Parameters:
//   - src: Source value (usually map[string]any)
//   - dest: Pointer to the typed destination
//
// Returns:
//   - error: Any marshal or unmarshal error
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
