// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

import (
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// ScalarBaseMult multiplies the curve base point by scalar and writes the
// resulting point to dst. Implementations are trusted: their output is
// wrapped into a PublicKey without further validation, and they must panic
// rather than return a partial result.
type ScalarBaseMult func(dst, scalar *[KeyLen]byte)

// X25519ScalarBaseMult is the default ScalarBaseMult, backed by
// golang.org/x/crypto/curve25519. The scalar is clamped by X25519 itself.
func X25519ScalarBaseMult(dst, scalar *[KeyLen]byte) {
	out, err := curve25519.X25519(scalar[:], curve25519.Basepoint)
	if err != nil {
		panic(fmt.Sprintf("tunnelkey: X25519 base point multiplication failed: %v", err))
	}
	copy(dst[:], out)
}

// PublicKey derives the corresponding public key with X25519ScalarBaseMult.
func (k PrivateKey) PublicKey() PublicKey {
	return k.DerivePublicKey(X25519ScalarBaseMult)
}

// DerivePublicKey derives the corresponding public key with mult. It only
// marshals the scalar in and wraps the point out.
func (k PrivateKey) DerivePublicKey(mult ScalarBaseMult) PublicKey {
	scalar := k.k
	defer WipeBytes(scalar[:])

	var pub PublicKey
	mult(&pub.k, &scalar)
	return pub
}
