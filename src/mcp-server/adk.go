// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/sailflow/planks-mcp/src/version"
)

// TransportInMemory is the only transport type the ADK builder supports.
const TransportInMemory = "inmemory"

// ADKTransportConfig holds configuration for creating MCP transports for [Google ADK] integration.
//
// Example usage:
//
//	transport, err := NewADKTransportBuilder().WithInMemoryTransport().BuildTransport(ctx)
//	toolset, err := mcptoolset.New(mcptoolset.Config{Transport: transport})
//
// [Google ADK]: https://pkg.go.dev/google.golang.org/adk
type ADKTransportConfig struct {
	// MCP server configuration
	MCPConfigFile string
	Version       string

	// Transport type: "inmemory"
	TransportType string
}

// ADKTransportBuilder helps construct MCP transports for ADK integration
type ADKTransportBuilder struct{ config ADKTransportConfig }

// NewADKTransportBuilder creates a builder reading its configuration file from
// PLANKS_MCP_CONFIG_FILE.
func NewADKTransportBuilder() *ADKTransportBuilder {
	return &ADKTransportBuilder{
		config: ADKTransportConfig{
			MCPConfigFile: os.Getenv(EnvConfigFile),
			Version:       version.Version,
			TransportType: TransportInMemory,
		},
	}
}

// WithMCPConfig sets the MCP server configuration file path
func (b *ADKTransportBuilder) WithMCPConfig(configFile string) *ADKTransportBuilder {
	b.config.MCPConfigFile = configFile
	return b
}

// WithVersion sets the MCP server version
func (b *ADKTransportBuilder) WithVersion(version string) *ADKTransportBuilder {
	b.config.Version = version
	return b
}

// WithInMemoryTransport configures in-memory transport (connects directly to handlers)
func (b *ADKTransportBuilder) WithInMemoryTransport() *ADKTransportBuilder {
	b.config.TransportType = TransportInMemory
	return b
}

// ValidateConfig validates the transport builder configuration
func (b *ADKTransportBuilder) ValidateConfig() error {
	if b.config.TransportType != TransportInMemory {
		return fmt.Errorf("unsupported transport type: %s", b.config.TransportType)
	}
	return nil
}

// BuildTransport loads the configuration and returns a transport connected to a
// catalog server with the default tools and resources.
func (b *ADKTransportBuilder) BuildTransport(ctx context.Context) (*InMemoryTransport, error) {
	if err := b.ValidateConfig(); err != nil {
		return nil, err
	}

	config, err := loadConfig(b.config.MCPConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load MCP config: %w", err)
	}

	return NewTransportBuilder().
		WithConfig(config).
		WithVersion(b.config.Version).
		WithDefaultTools().
		BuildInMemoryTransport(ctx)
}
