// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func decodeLines(t *testing.T, data string) []logLine {
	t.Helper()
	var lines []logLine
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		var l logLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &l), "line is not JSON: %q", scanner.Text())
		lines = append(lines, l)
	}
	return lines
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name  string
		write func(l logger.Logger)
		want  string
	}{
		{
			name:  "Printf",
			write: func(l logger.Logger) { l.Printf("scanned %d components", 3) },
			want:  "scanned 3 components\n",
		},
		{
			name:  "Println",
			write: func(l logger.Logger) { l.Println("catalog", "ready") },
			want:  "catalog ready\n",
		},
		{
			name:  "Errorf",
			write: func(l logger.Logger) { l.Errorf("failed to read %s", "button.tsx") },
			want:  "error: failed to read button.tsx\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.NewCLILogger()
			l.SetOutput(&buf)

			tt.write(l)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCLILoggerSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.NewCLILogger()

	l.SetOutput(&first)
	l.Println("first")
	l.SetOutput(&second)
	l.Println("second")

	assert.Equal(t, "first\n", first.String())
	assert.Equal(t, "second\n", second.String())
}

func TestMCPLogger(t *testing.T) {
	tests := []struct {
		name      string
		write     func(l logger.Logger)
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "Printf is info",
			write:     func(l logger.Logger) { l.Printf("server %s started", "@sailflow/planks") },
			wantLevel: "info",
			wantMsg:   "server @sailflow/planks started",
		},
		{
			name:      "Println is info",
			write:     func(l logger.Logger) { l.Println("resources", 12) },
			wantLevel: "info",
			wantMsg:   "resources12",
		},
		{
			name:      "Errorf is error",
			write:     func(l logger.Logger) { l.Errorf("failed to read %q", "tailwind.config.ts") },
			wantLevel: "error",
			wantMsg:   `failed to read "tailwind.config.ts"`,
		},
		{
			name:      "html is not escaped",
			write:     func(l logger.Logger) { l.Printf("rendered <Button />") },
			wantLevel: "info",
			wantMsg:   "rendered <Button />",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.NewMCPLogger(&buf, false)

			tt.write(l)

			lines := decodeLines(t, buf.String())
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0].Level)
			assert.Equal(t, tt.wantMsg, lines[0].Message)
			if tt.name == "html is not escaped" {
				assert.Contains(t, buf.String(), "<Button />")
			}
		})
	}
}

func TestMCPLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewMCPLogger(&buf, true)

	l.Printf("hidden")
	l.Println("hidden")
	l.Errorf("hidden")

	assert.Empty(t, buf.String())
}

func TestMCPLoggerNilWriter(t *testing.T) {
	l := logger.NewMCPLogger(nil, false)
	assert.NotPanics(t, func() { l.Printf("discarded") })

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Println("kept")
	l.SetOutput(nil)
	l.Println("discarded")

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0].Message)
}

func TestMCPLoggerConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewMCPLogger(&buf, false)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				l.Printf("component %d", n)
			} else {
				l.Errorf("component %d", n)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, decodeLines(t, buf.String()), 50)
}

func TestLoggerInterfaceCompliance(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
	var _ logger.Logger = logger.NewMCPLogger(nil, false)
}
