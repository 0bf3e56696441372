// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/sailflow/planks-mcp/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
//
// Methods:
//   - Printf: Logs a formatted informational message
//   - Println: Logs an informational message built from its operands
//   - Errorf: Logs a formatted error message
//   - SetOutput: Redirects subsequent output to w
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Errorf(format string, v ...any)
	SetOutput(w io.Writer)
}

// CLILogger is a human-readable logger for command-line usage.
// It writes plain lines without timestamps.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLILogger writing to stdout.
//
// Returns:
//   - *CLILogger: Logger ready for use
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stdout, "", 0)}
}

// Printf logs a formatted message.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println logs its operands.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf logs a formatted message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) {
	c.logger.Printf("error: "+format, v...)
}

// SetOutput sets the output destination.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger is a structured JSON logger for MCP server mode.
// Each call writes exactly one line of the form:
//
//	{"level":"info","message":"..."}
//
// Writes are serialized with a mutex so lines never interleave.
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// entry is one structured log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewMCPLogger creates a structured logger.
//
// Parameters:
//   - writer: Output destination; nil discards output
//   - silent: When true, every call is a no-op
//
// Returns:
//   - *MCPLogger: Logger ready for use
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{writer: writer, silent: silent}
}

// Printf logs a formatted message at info level.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.write("info", fmt.Sprintf(format, v...))
}

// Println logs its operands at info level.
func (m *MCPLogger) Println(v ...any) {
	m.write("info", fmt.Sprint(v...))
}

// Errorf logs a formatted message at error level.
func (m *MCPLogger) Errorf(format string, v ...any) {
	m.write("error", fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination. A nil writer discards output.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

// write encodes one entry into a pooled buffer and emits it in a single Write call.
func (m *MCPLogger) write(level, msg string) {
	if m.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry{Level: level, Message: msg}); err != nil {
		return
	}

	m.mu.Lock()
	m.writer.Write(buf.Bytes())
	m.mu.Unlock()
}
