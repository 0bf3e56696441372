// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	mcptransport "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	jsonrpcInternal "github.com/sailflow/planks-mcp/src/internal/helper/jsonrpc"
)

// JSON-RPC 2.0 error codes used by the bridge.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// maxInflight limits concurrently processed bridge requests.
const maxInflight = 100

// errMethodNotSupported marks methods the bridge does not forward.
var errMethodNotSupported = errors.New("method not supported")

// jsonRPCError represents a JSON-RPC 2.0 error object
type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// jsonRPCResponse represents a JSON-RPC 2.0 response object
type jsonRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonRPCError `json:"error,omitempty"`
}

// InMemoryTransport implements the go-sdk [mcptransport.Transport] interface on top
// of a [mark3labs/mcp-go] in-process client, so agents built on the [Official MCP SDK]
// can query the catalog without a subprocess.
//
// [mark3labs/mcp-go]: https://pkg.go.dev/github.com/mark3labs/mcp-go
// [Official MCP SDK]: https://pkg.go.dev/github.com/modelcontextprotocol/go-sdk
type InMemoryTransport struct {
	client     *client.Client // mark3labs in-process client
	started    bool
	mu         sync.Mutex
	recvCh     chan []byte // messages for the go-sdk side (ReadMessage)
	sendCh     chan []byte // messages from the go-sdk side (WriteMessage)
	ctx        context.Context
	cancel     context.CancelFunc
	sem        chan struct{}  // Semaphore to limit concurrency
	shutdownWg sync.WaitGroup // In-flight request handlers
	processWg  sync.WaitGroup // Message processing loop
}

// NewInMemoryTransport creates a new in-memory transport.
// The transport stops when ctx is cancelled or [InMemoryTransport.Close] is called.
func NewInMemoryTransport(ctx context.Context) *InMemoryTransport {
	ctx, cancel := context.WithCancel(ctx)
	return &InMemoryTransport{
		recvCh: make(chan []byte, 1),
		sendCh: make(chan []byte, 1),
		ctx:    ctx,
		cancel: cancel,
		sem:    make(chan struct{}, maxInflight),
	}
}

// ReadMessage returns the next JSON-RPC response or notification for the client.
// It blocks until a message is available and returns [io.EOF] once the transport is closed.
func (t *InMemoryTransport) ReadMessage() ([]byte, error) {
	select {
	case msg := <-t.recvCh:
		return msg, nil
	case <-t.ctx.Done():
		return nil, io.EOF
	}
}

// WriteMessage queues a JSON-RPC message from the client.
func (t *InMemoryTransport) WriteMessage(data []byte) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	select {
	case t.sendCh <- data:
		return nil
	case <-t.ctx.Done():
		return t.ctx.Err()
	}
}

// Close stops the transport and waits for in-flight requests.
func (t *InMemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	t.processWg.Wait()
	t.shutdownWg.Wait()

	// Channels stay open; goroutines exit through the cancelled context.
	t.started = false
	return nil
}

// Connect implements [mcptransport.Transport].
func (t *InMemoryTransport) Connect(ctx context.Context) (mcptransport.Connection, error) {
	return &ADKTransportConnection{transport: t}, nil
}

// ConnectServer attaches srv through an in-process client and starts processing messages.
//
// Server notifications are forwarded to the client side unchanged.
func (t *InMemoryTransport) ConnectServer(ctx context.Context, srv *server.MCPServer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("transport already connected")
	}

	var err error
	t.client, err = client.NewInProcessClient(srv)
	if err != nil {
		return fmt.Errorf("failed to create in-process client: %w", err)
	}

	t.client.OnNotification(func(n mcp.JSONRPCNotification) {
		t.sendResponse(map[string]any{
			"jsonrpc": mcp.JSONRPC_VERSION,
			"method":  n.Method,
			"params":  n.Params,
		})
	})

	if err := t.client.Start(t.ctx); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	t.processWg.Add(1)
	go t.processMessages()

	t.started = true
	return nil
}

// processMessages dispatches queued client messages until the transport stops.
// Each request runs in its own goroutine so a slow call never blocks the loop.
func (t *InMemoryTransport) processMessages() {
	defer t.processWg.Done()

	for {
		select {
		case <-t.ctx.Done():
			return
		case data := <-t.sendCh:
			select {
			case t.sem <- struct{}{}:
				t.shutdownWg.Add(1)
				go func(data []byte) {
					defer func() {
						<-t.sem
						t.shutdownWg.Done()
					}()
					t.handleMessage(data)
				}(data)
			case <-t.ctx.Done():
				return
			}
		}
	}
}

// handleMessage forwards one client message and writes the response.
func (t *InMemoryTransport) handleMessage(data []byte) {
	env, err := jsonrpcInternal.Decode(data)
	if err != nil {
		code := codeInvalidRequest
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			code = codeParseError
		}
		t.sendResponse(jsonRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			Error:   &jsonRPCError{Code: code, Message: err.Error()},
		})
		return
	}

	// Notifications need no forwarding; the in-process client already initialized.
	if strings.HasPrefix(env.Method, "notifications/") {
		return
	}

	result, err := t.dispatch(env)

	// A notification (no id) never gets a reply.
	if env.ID == nil {
		return
	}

	resp := jsonRPCResponse{JSONRPC: mcp.JSONRPC_VERSION, ID: env.ID}
	if err != nil {
		resp.Error = &jsonRPCError{Code: errorCode(err), Message: err.Error()}
	} else {
		resp.Result = result
	}
	t.sendResponse(resp)
}

// dispatch forwards a request to the in-process client.
func (t *InMemoryTransport) dispatch(env jsonrpcInternal.Envelope) (any, error) {
	switch env.Method {
	case string(mcp.MethodInitialize):
		version, err := requireStringParam(env, "protocolVersion")
		if err != nil {
			return nil, err
		}
		var capabilities mcp.ClientCapabilities
		if err := decodeParam(env, "capabilities", &capabilities); err != nil {
			return nil, err
		}
		var info mcp.Implementation
		if err := decodeParam(env, "clientInfo", &info); err != nil {
			return nil, err
		}

		resp, err := t.client.Initialize(t.ctx, mcp.InitializeRequest{
			Params: mcp.InitializeParams{
				ProtocolVersion: version,
				Capabilities:    capabilities,
				ClientInfo:      info,
			},
		})
		if err != nil {
			if mcp.IsUnsupportedProtocolVersion(err) {
				return nil, fmt.Errorf("unsupported protocol version: %w", err)
			}
			return nil, err
		}
		return resp, nil

	case string(mcp.MethodPing):
		if err := t.client.Ping(t.ctx); err != nil {
			return nil, err
		}
		return map[string]any{}, nil

	case string(mcp.MethodToolsList):
		return t.client.ListTools(t.ctx, mcp.ListToolsRequest{})

	case string(mcp.MethodToolsCall):
		name, err := requireStringParam(env, "name")
		if err != nil {
			return nil, err
		}
		args, err := mapParam(env, "arguments")
		if err != nil {
			return nil, err
		}
		return t.client.CallTool(t.ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: name, Arguments: args},
		})

	case string(mcp.MethodResourcesList):
		req := mcp.ListResourcesRequest{}
		if cursor, ok := env.StringParam("cursor"); ok {
			req.Params.Cursor = mcp.Cursor(cursor)
		}
		return t.client.ListResources(t.ctx, req)

	case string(mcp.MethodResourcesTemplatesList):
		return t.client.ListResourceTemplates(t.ctx, mcp.ListResourceTemplatesRequest{})

	case string(mcp.MethodResourcesRead):
		uri, err := requireStringParam(env, "uri")
		if err != nil {
			return nil, err
		}
		return t.client.ReadResource(t.ctx, mcp.ReadResourceRequest{
			Params: mcp.ReadResourceParams{URI: uri},
		})

	default:
		return nil, fmt.Errorf("%w: %s", errMethodNotSupported, env.Method)
	}
}

// errorCode maps a dispatch error to its JSON-RPC code.
func errorCode(err error) int {
	switch {
	case errors.Is(err, errMethodNotSupported):
		return codeMethodNotFound
	case strings.Contains(err.Error(), "invalid params"), strings.Contains(err.Error(), "missing params"):
		return codeInvalidParams
	default:
		return codeInternalError
	}
}

// sendResponse queues a JSON-RPC message for the client side.
func (t *InMemoryTransport) sendResponse(resp any) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case t.recvCh <- data:
	case <-t.ctx.Done():
	}
}

// ADKTransportConnection wraps InMemoryTransport as a go-sdk connection.
type ADKTransportConnection struct {
	transport *InMemoryTransport
}

// Read implements [mcptransport.Connection.Read]
func (c *ADKTransportConnection) Read(ctx context.Context) (jsonrpc.Message, error) {
	data, err := c.transport.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := jsonrpc.DecodeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON-RPC message: %w", err)
	}

	return msg, nil
}

// Write implements [mcptransport.Connection.Write]
func (c *ADKTransportConnection) Write(ctx context.Context, msg jsonrpc.Message) error {
	data, err := jsonrpc.EncodeMessage(msg)
	if err != nil {
		return err
	}

	return c.transport.WriteMessage(data)
}

// Close implements [mcptransport.Connection.Close]
func (c *ADKTransportConnection) Close() error {
	return c.transport.Close()
}

// SessionID implements [mcptransport.Connection.SessionID]
func (c *ADKTransportConnection) SessionID() string {
	return "in-memory-transport"
}

// TransportBuilder constructs in-memory transports around a fully built catalog server.
type TransportBuilder struct {
	serverBuilder *ServerBuilder
}

// NewTransportBuilder creates a new transport builder
func NewTransportBuilder() *TransportBuilder {
	return &TransportBuilder{serverBuilder: NewServerBuilder()}
}

// WithConfig sets the server configuration
func (tb *TransportBuilder) WithConfig(config *Config) *TransportBuilder {
	tb.serverBuilder.WithConfig(config)
	return tb
}

// WithVersion sets the server version
func (tb *TransportBuilder) WithVersion(version string) *TransportBuilder {
	tb.serverBuilder.WithVersion(version)
	return tb
}

// WithCatalog sets the catalogs directly instead of opening the configured paths.
func (tb *TransportBuilder) WithCatalog(cat *catalog.Catalog, res *catalog.Resources) *TransportBuilder {
	tb.serverBuilder.WithCatalog(cat, res)
	return tb
}

// WithDefaultTools adds the catalog tools and resources.
func (tb *TransportBuilder) WithDefaultTools() *TransportBuilder {
	tb.serverBuilder.WithDefaultTools().WithDefaultResources()
	return tb
}

// BuildInMemoryTransport builds the server and returns a connected transport.
//
// This follows the go-sdk pattern where the client side of an in-memory pair is
// handed to the agent toolset; here the server side is the mark3labs server
// reached through an in-process client.
func (tb *TransportBuilder) BuildInMemoryTransport(ctx context.Context) (*InMemoryTransport, error) {
	srv, err := tb.serverBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}

	transport := NewInMemoryTransport(ctx)
	if err := transport.ConnectServer(ctx, srv); err != nil {
		return nil, fmt.Errorf("failed to connect server to transport: %w", err)
	}

	return transport, nil
}
