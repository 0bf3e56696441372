// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and MCPLogger for structured JSON logging
// while stdout carries protocol frames. Both implementations are safe for
// concurrent use. MCPLogger encodes each line in a pooled buffer.
//
// Two levels exist. Informational messages go through Printf and Println;
// failures that were recovered from (unreadable component sources, a missing
// Tailwind config) go through Errorf so operators can filter on "level":"error".
package logger
