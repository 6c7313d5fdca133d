// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/flynn/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrivateKey(t *testing.T) {
	k, err := GeneratePrivateKey()
	require.NoError(t, err)

	assert.False(t, k.IsZero())
	raw := k.RawValue()
	assert.Equal(t, byte(0), raw[0]&7, "low bits must be clamped")
	assert.Equal(t, byte(0x40), raw[31]&0xc0, "high bits must be clamped")
}

func TestGeneratePrivateKey_Uniqueness(t *testing.T) {
	a, err := GeneratePrivateKey()
	require.NoError(t, err)
	b, err := GeneratePrivateKey()
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.PublicKey().Equal(b.PublicKey()))
}

func TestGeneratePrivateKeyFrom_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, KeyLen)

	a, err := GeneratePrivateKeyFrom(bytes.NewReader(seed))
	require.NoError(t, err)
	b, err := GeneratePrivateKeyFrom(bytes.NewReader(seed))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestGeneratePrivateKeyFrom_ShortReader(t *testing.T) {
	_, err := GeneratePrivateKeyFrom(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrFailed)
}

func TestGeneratePreSharedKey(t *testing.T) {
	a, err := GeneratePreSharedKey()
	require.NoError(t, err)
	b, err := GeneratePreSharedKey()
	require.NoError(t, err)

	assert.False(t, a.IsZero())
	assert.False(t, a.Equal(b))
}

func TestSharedSecret_RFC7748(t *testing.T) {
	alice, err := PrivateKeyFromHex(alicePrivateHex)
	require.NoError(t, err)
	bob, err := PrivateKeyFromHex(bobPrivateHex)
	require.NoError(t, err)

	ab, err := alice.SharedSecret(bob.PublicKey())
	require.NoError(t, err)
	ba, err := bob.SharedSecret(alice.PublicKey())
	require.NoError(t, err)

	assert.Equal(t, sharedHex, mustHexSlice(t, ab))
	assert.True(t, Equal(ab, ba))
}

func TestSharedSecret_LowOrderPoint(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	var zero PublicKey
	_, err = priv.SharedSecret(zero)
	assert.ErrorIs(t, err, ErrFailed)
}

func TestDHKey_MatchesNoise(t *testing.T) {
	priv, err := PrivateKeyFromHex(alicePrivateHex)
	require.NoError(t, err)

	dh := priv.DHKey()
	assert.Equal(t, priv.RawValue(), dh.Private)
	assert.Equal(t, alicePublicHex, mustHexSlice(t, dh.Public))

	back, err := PrivateKeyFromDHKey(&dh)
	require.NoError(t, err)
	assert.True(t, priv.Equal(back))
}

func TestPrivateKeyFromDHKey_Noise(t *testing.T) {
	pair, err := noise.DH25519.GenerateKeypair(rand.Reader)
	require.NoError(t, err)

	priv, err := PrivateKeyFromDHKey(&pair)
	require.NoError(t, err)
	assert.Equal(t, pair.Public, priv.PublicKey().RawValue())
}

func TestPrivateKeyFromDHKey_Invalid(t *testing.T) {
	_, err := PrivateKeyFromDHKey(nil)
	assert.ErrorIs(t, err, ErrNullInput)

	_, err = PrivateKeyFromDHKey(&noise.DHKey{Private: []byte{1, 2}})
	assert.True(t, errors.Is(err, ErrInvalidInputLength))
}

func mustHexSlice(t *testing.T, b []byte) string {
	t.Helper()
	out, err := EncodeHex(b)
	require.NoError(t, err)
	return string(out)
}
