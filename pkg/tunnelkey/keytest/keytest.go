// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package keytest provides mock tunnel keys and a deterministic derivation
// stub for tests and development tooling. Keys from this package come from
// a non-cryptographic random source and must never be used to protect
// real traffic.
package keytest

import (
	"math/rand/v2"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// mockBytes returns KeyLen bytes from math/rand/v2.
func mockBytes() []byte {
	b := make([]byte, tunnelkey.KeyLen)
	for i := range b {
		b[i] = byte(rand.UintN(256))
	}
	return b
}

// Mock returns a key of type K filled with non-cryptographic random bytes.
// newKey is one of the tunnelkey constructors, e.g. tunnelkey.NewPublicKey.
func Mock[K tunnelkey.Key](newKey func([]byte) (K, error)) K {
	k, err := newKey(mockBytes())
	if err != nil {
		// mockBytes always returns KeyLen bytes.
		panic("keytest: constructing mock key: " + err.Error())
	}
	return k
}

// MockPrivateKey returns a random, non-cryptographic private key.
func MockPrivateKey() tunnelkey.PrivateKey {
	return Mock(tunnelkey.NewPrivateKey)
}

// MockPublicKey returns a random, non-cryptographic public key.
func MockPublicKey() tunnelkey.PublicKey {
	return Mock(tunnelkey.NewPublicKey)
}

// MockPreSharedKey returns a random, non-cryptographic pre-shared key.
func MockPreSharedKey() tunnelkey.PreSharedKey {
	return Mock(tunnelkey.NewPreSharedKey)
}

// StubScalarBaseMult is a deterministic tunnelkey.ScalarBaseMult that
// reverses the scalar and flips every bit. It lets tests observe exactly
// which bytes crossed the derivation boundary.
func StubScalarBaseMult(dst, scalar *[tunnelkey.KeyLen]byte) {
	for i := range scalar {
		dst[tunnelkey.KeyLen-1-i] = ^scalar[i]
	}
}

// RecordingScalarBaseMult returns a tunnelkey.ScalarBaseMult that records
// every scalar it is called with and delegates to next.
func RecordingScalarBaseMult(next tunnelkey.ScalarBaseMult) (tunnelkey.ScalarBaseMult, *[][tunnelkey.KeyLen]byte) {
	var calls [][tunnelkey.KeyLen]byte
	return func(dst, scalar *[tunnelkey.KeyLen]byte) {
		calls = append(calls, *scalar)
		next(dst, scalar)
	}, &calls
}
