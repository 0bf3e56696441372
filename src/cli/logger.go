// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/spf13/cobra"
)

// quietLogger keeps errors and drops informational messages.
type quietLogger struct{ logger.Logger }

func (quietLogger) Printf(string, ...any) {}

func (quietLogger) Println(...any) {}

// commandLogger returns a CLI logger on the command's stderr.
// Informational messages are kept only with --verbose.
func commandLogger(cmd *cobra.Command) logger.Logger {
	l := logger.NewCLILogger()
	l.SetOutput(cmd.ErrOrStderr())

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return l
	}
	return quietLogger{l}
}
