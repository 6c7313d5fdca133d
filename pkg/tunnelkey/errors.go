// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package tunnelkey provides fixed-length Curve25519 tunnel keys as typed
// values, constant-time base64 and hex codecs for their textual forms, and
// a constant-time comparator. The codecs never branch on or index memory by
// secret bytes; invalid input is detected by accumulating a flag over the
// whole input and checking it once at the end.
package tunnelkey

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure returned by this package. It
// implements error so kinds can be returned and matched directly.
type ErrorKind uint32

const (
	// KindOk is the zero kind. It is never returned as an error.
	KindOk ErrorKind = 0x0

	// KindFailed indicates the input failed deep validation, for example
	// a character outside the base64 or hex alphabet.
	KindFailed ErrorKind = 0x1000

	// KindNullInput indicates a required input was absent (nil).
	KindNullInput ErrorKind = 0x1001

	// KindInvalidInput indicates input of the right length but with a
	// structural defect, such as a missing base64 pad character.
	KindInvalidInput ErrorKind = 0x1002

	// KindInvalidInputLength indicates input of the wrong length.
	KindInvalidInputLength ErrorKind = 0x1003
)

// Sentinel errors for use with errors.Is.
var (
	ErrFailed             error = KindFailed
	ErrNullInput          error = KindNullInput
	ErrInvalidInput       error = KindInvalidInput
	ErrInvalidInputLength error = KindInvalidInputLength
)

var kindNames = map[ErrorKind]string{
	KindOk:                 "ok",
	KindFailed:             "failed",
	KindNullInput:          "null input",
	KindInvalidInput:       "invalid input",
	KindInvalidInputLength: "invalid input length",
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	if name, ok := kindNames[k]; ok {
		return "tunnelkey: " + name
	}
	return fmt.Sprintf("tunnelkey: unknown error (errno = %#x)", uint32(k))
}

// Errno returns the numeric error code.
func (k ErrorKind) Errno() int32 {
	return int32(k)
}

// KindOf returns the ErrorKind carried by err, KindOk for a nil error, or
// KindFailed for errors that did not originate in this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindOk
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return KindFailed
}
