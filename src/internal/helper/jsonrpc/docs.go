// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It normalizes decoded payloads (lowercase keys, integral IDs, a default
// "jsonrpc" member) and exposes a light routing view of a raw request so that
// protocol hooks can inspect the method and tool name without a full decode.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
