// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsNamespace prefixes every request metric.
const MetricsNamespace = "planks_mcp"

// Metrics records MCP request counts, errors and latencies per method.
//
// Metrics are fed by server hooks, so every transport (stdio, HTTP, in-memory)
// is measured the same way.
type Metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec

	// inflight maps a session-scoped request key to its start time.
	inflight sync.Map
}

// NewMetrics creates the request metrics and registers them on reg.
//
// Parameters:
//   - reg: Registerer receiving the collectors
//
// Returns:
//   - *Metrics: Collectors ready to be attached with [Metrics.Register]
//
// Registering twice on the same registerer panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of MCP requests by method.",
		}, []string{"method"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "request_errors_total",
			Help:      "Total number of failed MCP requests by method.",
		}, []string{"method"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "MCP request handling latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Register attaches the metric hooks to hooks.
func (m *Metrics) Register(hooks *server.Hooks) {
	hooks.AddBeforeAny(m.before)
	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		m.observe(ctx, id, method, false)
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		m.observe(ctx, id, method, true)
	})
}

func (m *Metrics) before(ctx context.Context, id any, method mcp.MCPMethod, message any) {
	m.inflight.Store(requestKey(ctx, id), time.Now())
}

// observe counts a finished request and records its latency when the start
// time is known.
func (m *Metrics) observe(ctx context.Context, id any, method mcp.MCPMethod, failed bool) {
	label := string(method)
	m.requests.WithLabelValues(label).Inc()
	if failed {
		m.errors.WithLabelValues(label).Inc()
	}

	if start, ok := m.inflight.LoadAndDelete(requestKey(ctx, id)); ok {
		m.duration.WithLabelValues(label).Observe(time.Since(start.(time.Time)).Seconds())
	}
}

// requestKey scopes a JSON-RPC id to its client session.
func requestKey(ctx context.Context, id any) string {
	session := ""
	if s := server.ClientSessionFromContext(ctx); s != nil {
		session = s.SessionID()
	}
	return fmt.Sprintf("%s/%v", session, id)
}
