// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import "errors"

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a key, file or lookup operation failed.
	ExitFailure = 1

	// ExitInputError indicates malformed input such as an invalid key.
	ExitInputError = 2

	// ExitKeysDiffer indicates compare found two different keys.
	ExitKeysDiffer = 3
)

// Sentinel errors for CLI operations.
var (
	// ErrInvalidInput is returned when required input is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrKeyOperation is returned when a key generation or derivation fails.
	ErrKeyOperation = errors.New("key operation failed")

	// ErrFileOperation is returned when a file read or write operation fails.
	ErrFileOperation = errors.New("file operation failed")

	// ErrLookupFailed is returned when a DNS key lookup or verification fails.
	ErrLookupFailed = errors.New("lookup failed")

	// ErrKeysDiffer is returned by compare when the keys are not equal.
	ErrKeysDiffer = errors.New("keys differ")
)
