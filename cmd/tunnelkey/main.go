// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		exitFunc(exitCode(err))
	}
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrKeysDiffer):
		return ExitKeysDiffer
	case errors.Is(err, ErrInvalidInput):
		return ExitInputError
	default:
		return ExitFailure
	}
}
