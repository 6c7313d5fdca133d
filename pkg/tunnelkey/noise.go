// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/flynn/noise"
)

// GeneratePrivateKey generates a new clamped Curve25519 private key from
// crypto/rand.
func GeneratePrivateKey() (PrivateKey, error) {
	return GeneratePrivateKeyFrom(rand.Reader)
}

// GeneratePrivateKeyFrom generates a new clamped private key using rng.
// Clamping does not change the derived public key, since X25519 clamps
// the scalar itself, but it matches the form WireGuard tools emit.
func GeneratePrivateKeyFrom(rng io.Reader) (PrivateKey, error) {
	pair, err := noise.DH25519.GenerateKeypair(rng)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: generating keypair: %w", ErrFailed, err)
	}
	defer WipeBytes(pair.Private)

	k, err := NewPrivateKey(pair.Private)
	if err != nil {
		return PrivateKey{}, err
	}
	k.clamp()
	return k, nil
}

// clamp applies the RFC 7748 scalar clamping.
func (k *PrivateKey) clamp() {
	k.k[0] &= 248
	k.k[31] &= 127
	k.k[31] |= 64
}

// GeneratePreSharedKey generates a new random pre-shared key from
// crypto/rand.
func GeneratePreSharedKey() (PreSharedKey, error) {
	var k PreSharedKey
	if _, err := io.ReadFull(rand.Reader, k.k[:]); err != nil {
		return PreSharedKey{}, fmt.Errorf("%w: reading random bytes: %w", ErrFailed, err)
	}
	return k, nil
}

// SharedSecret computes the X25519 Diffie-Hellman shared secret between k
// and peer. It fails with ErrFailed if peer is a low-order point.
func (k PrivateKey) SharedSecret(peer PublicKey) ([]byte, error) {
	scalar := k.k
	defer WipeBytes(scalar[:])

	secret, err := noise.DH25519.DH(scalar[:], peer.k[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailed, err)
	}
	return secret, nil
}

// DHKey returns k and its public key as a Noise static keypair for use
// with github.com/flynn/noise handshakes. The returned slices are copies.
func (k PrivateKey) DHKey() noise.DHKey {
	return noise.DHKey{
		Private: k.RawValue(),
		Public:  k.PublicKey().RawValue(),
	}
}

// PrivateKeyFromDHKey wraps the private component of a Noise static
// keypair. The public component is ignored and re-derived on demand.
func PrivateKeyFromDHKey(key *noise.DHKey) (PrivateKey, error) {
	if key == nil {
		return PrivateKey{}, ErrNullInput
	}
	return NewPrivateKey(key.Private)
}
