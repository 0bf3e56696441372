// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sailflow/planks-mcp/src/logger"
)

// HealthPath answers liveness probes in HTTP mode.
const HealthPath = "/healthz"

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

// HTTPServer serves the MCP server over streamable HTTP.
//
// Routes:
//   - http.endpoint (default /mcp): Streamable HTTP MCP transport
//   - http.metricsPath (default /metrics): Prometheus exposition
//   - /healthz: Liveness probe answering "ok"
type HTTPServer struct {
	config     *Config
	streamable *server.StreamableHTTPServer
	router     chi.Router
	log        logger.Logger
}

// NewHTTPServer wires the MCP server, the metrics handler and the health probe
// into a chi router.
//
// Parameters:
//   - s: MCP server to expose
//   - config: Server configuration supplying the routes and listen address
//   - gatherer: Source of the /metrics exposition; nil disables the route
//   - log: Destination for request and lifecycle logs
//
// Returns:
//   - *HTTPServer: Server ready for [HTTPServer.Serve] or [HTTPServer.Handler]
func NewHTTPServer(s *server.MCPServer, config *Config, gatherer prometheus.Gatherer, log logger.Logger) *HTTPServer {
	streamable := server.NewStreamableHTTPServer(s, server.WithEndpointPath(config.HTTP.Endpoint))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  printLogger{log},
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Handle(config.HTTP.Endpoint, streamable)
	if gatherer != nil {
		r.Handle(config.HTTP.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return &HTTPServer{config: config, streamable: streamable, router: r, log: log}
}

// Handler returns the router, for mounting or for tests.
func (h *HTTPServer) Handler() http.Handler { return h.router }

// Serve listens on http.addr and serves until ctx is cancelled.
//
// Returns:
//   - nil: After a shutdown triggered by ctx
//   - error: If the address cannot be bound or the server fails
func (h *HTTPServer) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.config.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.config.HTTP.Addr, err)
	}
	return h.serve(ctx, ln)
}

// serve runs the HTTP server on ln and shuts it down when ctx is done.
func (h *HTTPServer) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		h.log.Printf("MCP server listening on http://%s%s", ln.Addr(), h.config.HTTP.Endpoint)
		errChan <- srv.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.streamable.Shutdown(shutdownCtx); err != nil {
		h.log.Errorf("failed to close MCP sessions: %v", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

// printLogger adapts [logger.Logger] to the chi request logger.
type printLogger struct{ logger.Logger }

func (p printLogger) Print(v ...any) { p.Println(v...) }
