// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

// fullGroups is the number of complete 3-byte groups in a raw key. The two
// remaining bytes form one short group.
const fullGroups = KeyLen / 3

// encodeBase64Group encodes three bytes into four base64 characters.
func encodeBase64Group(dst []byte, src [3]byte) {
	in := [4]int32{
		int32(src[0]>>2) & 63,
		int32(src[0]<<4|src[1]>>4) & 63,
		int32(src[1]<<2|src[2]>>6) & 63,
		int32(src[2]) & 63,
	}
	for i, v := range in {
		dst[i] = base64Symbol(v)
	}
}

// base64Symbol maps a 6-bit value to its alphabet character. Each range
// adjustment is selected by the sign of (bound - v) shifted down, so no
// branch or table lookup depends on v.
func base64Symbol(v int32) byte {
	c := v + 'A' +
		(((25 - v) >> 8) & 6) -
		(((51 - v) >> 8) & 75) -
		(((61 - v) >> 8) & 15) +
		(((62 - v) >> 8) & 3)
	return byte(c & 0xff)
}

// decodeBase64Group decodes four characters into a 24-bit value. An
// invalid character decodes to -1, which makes the result negative.
func decodeBase64Group(src [4]byte) int32 {
	var val int32
	for i, b := range src {
		val |= base64Value(int32(b)) << uint(18-6*i)
	}
	return val
}

// base64Value maps an alphabet character to its 6-bit value, or to -1 if c
// is not in the alphabet. Each term is non-zero only when c falls inside
// its range, tested as the sign of (lo-1-c) & (c-(hi+1)).
func base64Value(c int32) int32 {
	return -1 +
		(((('A' - 1 - c) & (c - ('Z' + 1))) >> 8) & (c - 64)) +
		(((('a' - 1 - c) & (c - ('z' + 1))) >> 8) & (c - 70)) +
		(((('0' - 1 - c) & (c - ('9' + 1))) >> 8) & (c + 5)) +
		(((('+' - 1 - c) & (c - ('+' + 1))) >> 8) & 63) +
		(((('/' - 1 - c) & (c - ('/' + 1))) >> 8) & 64)
}

// EncodeBase64 encodes a raw key into its 44-character base64 form.
func EncodeBase64(raw []byte) (string, error) {
	if raw == nil {
		return "", ErrNullInput
	}
	if len(raw) != KeyLen {
		return "", ErrInvalidInputLength
	}

	out := make([]byte, Base64Len)
	for i := 0; i < fullGroups; i++ {
		encodeBase64Group(out[i*4:], [3]byte{raw[i*3], raw[i*3+1], raw[i*3+2]})
	}
	encodeBase64Group(out[fullGroups*4:], [3]byte{raw[fullGroups*3], raw[fullGroups*3+1], 0})
	out[Base64Len-1] = '='

	return string(out), nil
}

// DecodeBase64 decodes the 44-character base64 form of a key. Every
// character is decoded before validity is checked, so an invalid symbol
// yields ErrFailed in the same time wherever it appears.
func DecodeBase64(text []byte) ([]byte, error) {
	if text == nil {
		return nil, ErrNullInput
	}
	if len(text) != Base64Len {
		return nil, ErrInvalidInputLength
	}
	if text[Base64Len-1] != '=' {
		return nil, ErrInvalidInput
	}

	key := make([]byte, KeyLen)
	var bad int32
	for i := 0; i < fullGroups; i++ {
		val := decodeBase64Group([4]byte{text[i*4], text[i*4+1], text[i*4+2], text[i*4+3]})
		bad |= (val >> 31) & 0xff
		key[i*3] = byte(val >> 16)
		key[i*3+1] = byte(val >> 8)
		key[i*3+2] = byte(val)
	}

	// The pad is replaced by 'A' (zero). The low byte must then be zero,
	// otherwise the third character carried bits beyond the key.
	val := decodeBase64Group([4]byte{text[fullGroups*4], text[fullGroups*4+1], text[fullGroups*4+2], 'A'})
	bad |= ((val >> 31) | val) & 0xff
	key[fullGroups*3] = byte(val >> 16)
	key[fullGroups*3+1] = byte(val >> 8)

	if 1&((bad-1)>>8) != 1 {
		WipeBytes(key)
		return nil, ErrFailed
	}
	return key, nil
}

// DecodeBase64String is DecodeBase64 for string input. Strings cannot be
// absent, so it never returns ErrNullInput.
func DecodeBase64String(s string) ([]byte, error) {
	if len(s) != Base64Len {
		return nil, ErrInvalidInputLength
	}
	return DecodeBase64([]byte(s))
}
