// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package wgconfig renders and parses WireGuard cross-platform userspace
// API (UAPI) configuration using typed tunnel keys. Keys travel in their
// hex form on this interface.
package wgconfig

import "errors"

// Sentinel errors for the wgconfig package.
var (
	// ErrInvalidConfig indicates a configuration that cannot be rendered,
	// such as a peer with an invalid allowed IP prefix.
	ErrInvalidConfig = errors.New("wgconfig: invalid configuration")

	// ErrDuplicatePeer indicates two peers share the same public key.
	ErrDuplicatePeer = errors.New("wgconfig: duplicate peer")

	// ErrInvalidLine indicates a UAPI line that is not a key=value pair.
	ErrInvalidLine = errors.New("wgconfig: invalid UAPI line")

	// ErrInvalidValue indicates a UAPI value that could not be parsed.
	ErrInvalidValue = errors.New("wgconfig: invalid UAPI value")

	// ErrUnexpectedKey indicates a peer attribute appeared before any
	// public_key line.
	ErrUnexpectedKey = errors.New("wgconfig: peer attribute without peer")

	// ErrDeviceErrno indicates the device reported a non-zero errno.
	ErrDeviceErrno = errors.New("wgconfig: device returned error")

	// ErrDevice indicates the device rejected or failed an IPC operation.
	ErrDevice = errors.New("wgconfig: device operation failed")
)
