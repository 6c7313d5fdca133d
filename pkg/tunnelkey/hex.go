// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

// hexSymbol maps a nibble to a lowercase hex digit. For n < 10 the mask
// ^38 subtracts 39, turning the 'a' offset (87) into the '0' offset (48).
func hexSymbol(n int32) byte {
	return byte(87 + n + (((n - 10) >> 8) & ^38))
}

// hexValue maps a hex digit of either case to its nibble value. bad is
// -1 when c is not a hex digit and 0 otherwise; the returned nibble is
// then meaningless.
func hexValue(c int32) (nibble int32, bad int32) {
	num := c ^ '0'
	num0 := ((num - 10) >> 8) & 0xff
	alpha := (c &^ 32) - 55
	alpha0 := (((alpha - 10) ^ (alpha - 16)) >> 8) & 0xff
	bad = ((num0 | alpha0) - 1) >> 8
	nibble = (num0 & num) | (alpha0 & alpha)
	return nibble, bad
}

// EncodeHex encodes a raw key into 64 lowercase ASCII hex digits.
func EncodeHex(raw []byte) ([]byte, error) {
	if raw == nil {
		return nil, ErrNullInput
	}
	if len(raw) != KeyLen {
		return nil, ErrInvalidInputLength
	}

	out := make([]byte, HexLen)
	for i, b := range raw {
		out[i*2] = hexSymbol(int32(b >> 4))
		out[i*2+1] = hexSymbol(int32(b & 0xf))
	}
	return out, nil
}

// DecodeHex decodes 64 hex digits of either case into a raw key. All
// pairs are decoded before validity is checked, so an invalid digit yields
// ErrFailed in the same time wherever it appears.
func DecodeHex(text []byte) ([]byte, error) {
	if text == nil {
		return nil, ErrNullInput
	}
	if len(text) != HexLen {
		return nil, ErrInvalidInputLength
	}

	key := make([]byte, KeyLen)
	var ret int32
	for i := 0; i < HexLen; i += 2 {
		hi, badHi := hexValue(int32(text[i]))
		lo, badLo := hexValue(int32(text[i+1]))
		ret |= badHi | badLo
		key[i/2] = byte(hi*16 + lo)
	}

	if ret != 0 {
		WipeBytes(key)
		return nil, ErrFailed
	}
	return key, nil
}

// DecodeHexString is DecodeHex for string input. Strings cannot be
// absent, so it never returns ErrNullInput.
func DecodeHexString(s string) ([]byte, error) {
	if len(s) != HexLen {
		return nil, ErrInvalidInputLength
	}
	return DecodeHex([]byte(s))
}
