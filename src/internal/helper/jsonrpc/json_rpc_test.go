// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name:  "adds jsonrpc version",
			input: map[string]any{"id": float64(1), "method": "resources/list"},
			expected: map[string]any{
				"id":      int64(1),
				"method":  "resources/list",
				"jsonrpc": "2.0",
			},
		},
		{
			name:  "empty id object becomes nil",
			input: map[string]any{"id": map[string]any{}, "method": "ping"},
			expected: map[string]any{
				"id":      nil,
				"method":  "ping",
				"jsonrpc": "2.0",
			},
		},
		{
			name:  "lowercases keys",
			input: map[string]any{"ID": "abc", "Method": "tools/list", "JSONRPC": "2.0"},
			expected: map[string]any{
				"id":      "abc",
				"method":  "tools/list",
				"jsonrpc": "2.0",
			},
		},
		{
			name:  "keeps fractional id",
			input: map[string]any{"id": 1.5},
			expected: map[string]any{
				"id":      1.5,
				"jsonrpc": "2.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Map(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantMethod string
		wantID     any
		wantTool   string
	}{
		{
			name:       "tools call",
			input:      `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"search_components","arguments":{"query":"butt"}}}`,
			wantMethod: string(mcp.MethodToolsCall),
			wantID:     int64(7),
			wantTool:   "search_components",
		},
		{
			name:       "notification without params",
			input:      `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			wantMethod: "notifications/initialized",
		},
		{
			name:    "method is not a string",
			input:   `{"jsonrpc":"2.0","id":1,"method":42}`,
			wantErr: true,
		},
		{
			name:    "not json",
			input:   `tools/call`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, env.Method)
			assert.Equal(t, tt.wantID, env.ID)

			tool, ok := env.StringParam("name")
			assert.Equal(t, tt.wantTool != "", ok)
			assert.Equal(t, tt.wantTool, tool)
		})
	}
}

func TestUnmarshalFromMap(t *testing.T) {
	var params mcp.ReadResourceParams
	err := UnmarshalFromMap(map[string]any{"uri": "planks://components/list"}, &params)
	require.NoError(t, err)
	assert.Equal(t, "planks://components/list", params.URI)

	err = UnmarshalFromMap(map[string]any{"bad": func() {}}, &params)
	assert.Error(t, err)
}
