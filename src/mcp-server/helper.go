// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"github.com/sailflow/planks-mcp/src/internal/helper/jsonrpc"
)

// requireParams fails when a request carries no params object.
func requireParams(env jsonrpc.Envelope) error {
	if env.Params == nil {
		return fmt.Errorf("missing params for %s", env.Method)
	}
	return nil
}

// requireStringParam returns the named string parameter of env.
func requireStringParam(env jsonrpc.Envelope, name string) (string, error) {
	if err := requireParams(env); err != nil {
		return "", err
	}
	s, ok := env.StringParam(name)
	if !ok {
		return "", fmt.Errorf("invalid params for %s: %q must be a string", env.Method, name)
	}
	return s, nil
}

// mapParam returns the named object parameter of env, or nil when absent.
func mapParam(env jsonrpc.Envelope, name string) (map[string]any, error) {
	v, ok := env.Params[name]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid params for %s: %q must be an object, got %T", env.Method, name, v)
	}
	return m, nil
}

// decodeParam decodes the named parameter of env into dest. An absent or null
// parameter leaves dest untouched.
func decodeParam(env jsonrpc.Envelope, name string, dest any) error {
	v, ok := env.Params[name]
	if !ok || v == nil {
		return nil
	}
	if err := jsonrpc.UnmarshalFromMap(v, dest); err != nil {
		return fmt.Errorf("invalid params for %s: %q: %w", env.Method, name, err)
	}
	return nil
}
