// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

import (
	"fmt"
	"log/slog"
)

// redacted is printed in place of secret key material.
const redacted = "[redacted]"

// Key is the capability set shared by PrivateKey, PublicKey and
// PreSharedKey. Each variant also has an Equal method that accepts only
// its own type.
type Key interface {
	// RawValue returns a copy of the raw key bytes.
	RawValue() []byte

	// Base64String returns the 44-character base64 form.
	Base64String() string

	// HexString returns the 64-character lowercase hex form.
	HexString() string

	// IsZero reports whether every key byte is zero.
	IsZero() bool
}

// incomparable makes a struct unusable with ==, forcing callers through
// the constant-time Equal methods.
type incomparable [0]func()

// PrivateKey is a Curve25519 private scalar. It is the only variant that
// can derive a PublicKey.
type PrivateKey struct {
	_ incomparable
	k [KeyLen]byte
}

// PublicKey is a Curve25519 public point.
type PublicKey struct {
	_ incomparable
	k [KeyLen]byte
}

// PreSharedKey is a symmetric secret with the same shape as a PrivateKey.
// It is never used for derivation.
type PreSharedKey struct {
	_ incomparable
	k [KeyLen]byte
}

var (
	_ Key = PrivateKey{}
	_ Key = PublicKey{}
	_ Key = PreSharedKey{}

	_ slog.LogValuer = PrivateKey{}
	_ slog.LogValuer = PublicKey{}
	_ slog.LogValuer = PreSharedKey{}
)

// rawKey validates raw as key material and copies it into a fixed array.
func rawKey(raw []byte) ([KeyLen]byte, error) {
	var k [KeyLen]byte
	if raw == nil {
		return k, ErrNullInput
	}
	if len(raw) != KeyLen {
		return k, ErrInvalidInputLength
	}
	copy(k[:], raw)
	return k, nil
}

// fromText decodes text with decode and wraps the result with wrap. The
// intermediate slice is wiped before returning.
func fromText[K Key](text string, decode func(string) ([]byte, error), wrap func([]byte) (K, error)) (K, error) {
	raw, err := decode(text)
	if err != nil {
		var zero K
		return zero, err
	}
	defer WipeBytes(raw)
	return wrap(raw)
}

// mustBase64 encodes a valid key. Keys are always KeyLen bytes, so any
// error here is an invariant violation.
func mustBase64(k *[KeyLen]byte) string {
	s, err := EncodeBase64(k[:])
	if err != nil {
		panic(fmt.Sprintf("tunnelkey: encoding a valid key failed: %v", err))
	}
	return s
}

// mustHex is the hex counterpart of mustBase64.
func mustHex(k *[KeyLen]byte) string {
	b, err := EncodeHex(k[:])
	if err != nil {
		panic(fmt.Sprintf("tunnelkey: encoding a valid key failed: %v", err))
	}
	return string(b)
}

func isZero(k *[KeyLen]byte) bool {
	var zero [KeyLen]byte
	return Equal(k[:], zero[:])
}

// unmarshalBase64 implements UnmarshalText for all variants.
func unmarshalBase64(dst *[KeyLen]byte, text []byte) error {
	raw, err := DecodeBase64(text)
	if err != nil {
		return err
	}
	copy(dst[:], raw)
	WipeBytes(raw)
	return nil
}

// NewPrivateKey wraps raw as a private key. raw must be exactly KeyLen
// bytes; it is copied.
func NewPrivateKey(raw []byte) (PrivateKey, error) {
	k, err := rawKey(raw)
	return PrivateKey{k: k}, err
}

// PrivateKeyFromHex decodes a private key from its hex form.
func PrivateKeyFromHex(text string) (PrivateKey, error) {
	return fromText(text, DecodeHexString, NewPrivateKey)
}

// PrivateKeyFromBase64 decodes a private key from its base64 form.
func PrivateKeyFromBase64(text string) (PrivateKey, error) {
	return fromText(text, DecodeBase64String, NewPrivateKey)
}

// RawValue returns a copy of the raw key bytes.
func (k PrivateKey) RawValue() []byte {
	out := k.k
	return out[:]
}

// Base64String returns the 44-character base64 form of the key.
func (k PrivateKey) Base64String() string {
	return mustBase64(&k.k)
}

// HexString returns the 64-character lowercase hex form of the key.
func (k PrivateKey) HexString() string {
	return mustHex(&k.k)
}

// IsZero reports whether every key byte is zero.
func (k PrivateKey) IsZero() bool {
	return isZero(&k.k)
}

// Equal reports whether k and other hold the same bytes, in constant time.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return Equal(k.k[:], other.k[:])
}

// String returns a redacted placeholder so private keys are not printed
// by accident.
func (k PrivateKey) String() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (k PrivateKey) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalText encodes the key in base64. It is intended for configuration
// files that must hold the private key.
func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(mustBase64(&k.k)), nil
}

// UnmarshalText decodes a base64 key.
func (k *PrivateKey) UnmarshalText(text []byte) error {
	return unmarshalBase64(&k.k, text)
}

// NewPublicKey wraps raw as a public key. raw must be exactly KeyLen
// bytes; it is copied.
func NewPublicKey(raw []byte) (PublicKey, error) {
	k, err := rawKey(raw)
	return PublicKey{k: k}, err
}

// PublicKeyFromHex decodes a public key from its hex form.
func PublicKeyFromHex(text string) (PublicKey, error) {
	return fromText(text, DecodeHexString, NewPublicKey)
}

// PublicKeyFromBase64 decodes a public key from its base64 form.
func PublicKeyFromBase64(text string) (PublicKey, error) {
	return fromText(text, DecodeBase64String, NewPublicKey)
}

// RawValue returns a copy of the raw key bytes.
func (k PublicKey) RawValue() []byte {
	out := k.k
	return out[:]
}

// Base64String returns the 44-character base64 form of the key.
func (k PublicKey) Base64String() string {
	return mustBase64(&k.k)
}

// HexString returns the 64-character lowercase hex form of the key.
func (k PublicKey) HexString() string {
	return mustHex(&k.k)
}

// IsZero reports whether every key byte is zero.
func (k PublicKey) IsZero() bool {
	return isZero(&k.k)
}

// Equal reports whether k and other hold the same bytes, in constant time.
func (k PublicKey) Equal(other PublicKey) bool {
	return Equal(k.k[:], other.k[:])
}

// String returns the base64 form.
func (k PublicKey) String() string {
	return mustBase64(&k.k)
}

// LogValue implements slog.LogValuer.
func (k PublicKey) LogValue() slog.Value {
	return slog.StringValue(mustBase64(&k.k))
}

// MarshalText encodes the key in base64.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(mustBase64(&k.k)), nil
}

// UnmarshalText decodes a base64 key.
func (k *PublicKey) UnmarshalText(text []byte) error {
	return unmarshalBase64(&k.k, text)
}

// NewPreSharedKey wraps raw as a pre-shared key. raw must be exactly
// KeyLen bytes; it is copied.
func NewPreSharedKey(raw []byte) (PreSharedKey, error) {
	k, err := rawKey(raw)
	return PreSharedKey{k: k}, err
}

// PreSharedKeyFromHex decodes a pre-shared key from its hex form.
func PreSharedKeyFromHex(text string) (PreSharedKey, error) {
	return fromText(text, DecodeHexString, NewPreSharedKey)
}

// PreSharedKeyFromBase64 decodes a pre-shared key from its base64 form.
func PreSharedKeyFromBase64(text string) (PreSharedKey, error) {
	return fromText(text, DecodeBase64String, NewPreSharedKey)
}

// RawValue returns a copy of the raw key bytes.
func (k PreSharedKey) RawValue() []byte {
	out := k.k
	return out[:]
}

// Base64String returns the 44-character base64 form of the key.
func (k PreSharedKey) Base64String() string {
	return mustBase64(&k.k)
}

// HexString returns the 64-character lowercase hex form of the key.
func (k PreSharedKey) HexString() string {
	return mustHex(&k.k)
}

// IsZero reports whether every key byte is zero.
func (k PreSharedKey) IsZero() bool {
	return isZero(&k.k)
}

// Equal reports whether k and other hold the same bytes, in constant time.
func (k PreSharedKey) Equal(other PreSharedKey) bool {
	return Equal(k.k[:], other.k[:])
}

// String returns a redacted placeholder.
func (k PreSharedKey) String() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (k PreSharedKey) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalText encodes the key in base64.
func (k PreSharedKey) MarshalText() ([]byte, error) {
	return []byte(mustBase64(&k.k)), nil
}

// UnmarshalText decodes a base64 key.
func (k *PreSharedKey) UnmarshalText(text []byte) error {
	return unmarshalBase64(&k.k, text)
}
