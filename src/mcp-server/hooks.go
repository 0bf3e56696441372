// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/internal/helper/jsonrpc"
)

// rejectUnknownTools returns a request-initialization hook that fails tools/call
// requests naming a tool outside known.
//
// Parameters:
//   - known: Names of the registered tools
//
// Returns:
//   - server.OnRequestInitializationFunc: Hook returning "unknown tool: <name>"
//
// Messages that cannot be decoded are left to the server, which reports its own
// parse errors.
func rejectUnknownTools(known map[string]struct{}) server.OnRequestInitializationFunc {
	return func(ctx context.Context, id any, message any) error {
		data, err := rawMessage(message)
		if err != nil {
			return nil
		}

		env, err := jsonrpc.Decode(data)
		if err != nil || env.Method != string(mcp.MethodToolsCall) {
			return nil
		}

		name, _ := env.StringParam("name")
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown tool: %s", name)
		}
		return nil
	}
}

// rawMessage returns the JSON bytes of an incoming message.
func rawMessage(message any) ([]byte, error) {
	switch m := message.(type) {
	case json.RawMessage:
		return m, nil
	case []byte:
		return m, nil
	default:
		return json.Marshal(m)
	}
}

// appendComponentResources returns an after-list hook that adds the detail and
// example resources of every component to the resources/list response.
//
// Parameters:
//   - res: Resource catalog scanned on every call
//
// Returns:
//   - server.OnAfterListResourcesFunc: Hook appending the per-component descriptors
//
// Only the first page carries them, so a paginated listing never repeats entries.
func appendComponentResources(res *catalog.Resources) server.OnAfterListResourcesFunc {
	return func(ctx context.Context, id any, request *mcp.ListResourcesRequest, result *mcp.ListResourcesResult) {
		if result == nil || (request != nil && request.Params.Cursor != "") {
			return
		}

		fixed := len(res.Fixed())
		for _, d := range res.List()[fixed:] {
			result.Resources = append(result.Resources, mcp.NewResource(
				d.URI,
				d.Name,
				mcp.WithResourceDescription(d.Description),
				mcp.WithMIMEType(d.MIMEType),
			))
		}
	}
}
