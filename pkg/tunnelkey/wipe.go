// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

// WipeBytes zeros the contents of a byte slice in-place. Callers holding a
// copy from RawValue of a secret key should wipe it when done. The Go
// garbage collector may copy memory, so this does not guarantee complete
// erasure.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Wipe zeros the private key in-place.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	WipeBytes(k.k[:])
}

// Wipe zeros the pre-shared key in-place.
func (k *PreSharedKey) Wipe() {
	if k == nil {
		return
	}
	WipeBytes(k.k[:])
}
