// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

const (
	// KeyLen is the length in bytes of every raw key.
	KeyLen = 32

	// Base64Len is the length of the base64 form of a key, including the
	// single trailing pad character.
	Base64Len = 4 * ((KeyLen + 2) / 3)

	// HexLen is the length of the hexadecimal form of a key.
	HexLen = 2 * KeyLen
)

// Equal reports whether a and b hold the same key bytes. It returns false
// if either slice is nil or not exactly KeyLen bytes long; lengths are not
// secret, so that check may return early. For well-formed inputs the
// running time does not depend on the byte values or on where they differ.
func Equal(a, b []byte) bool {
	if a == nil || b == nil || len(a) != KeyLen || len(b) != KeyLen {
		return false
	}
	var acc int32
	for i := 0; i < KeyLen; i++ {
		acc |= int32(a[i] ^ b[i])
	}
	// acc is in [0, 255]; acc-1 is negative only when acc == 0.
	return 1&((acc-1)>>8) == 1
}
