// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package tunnelkey

// knownVectors are WireGuard-style keys with their base64 and hex forms.
var knownVectors = []struct {
	raw    []byte
	base64 string
	hex    string
}{
	{
		raw: []byte{
			0x00, 0x37, 0x60, 0x8c, 0x14, 0xe6, 0xcd, 0xce, 0xc5, 0x09, 0x70, 0x45, 0xc6, 0x00, 0xf9, 0x3f,
			0x3d, 0xd4, 0x5d, 0xa9, 0x7b, 0x4c, 0x3a, 0xa5, 0x13, 0xde, 0x48, 0x8c, 0x95, 0xec, 0xf6, 0x42,
		},
		base64: "ADdgjBTmzc7FCXBFxgD5Pz3UXal7TDqlE95IjJXs9kI=",
		hex:    "0037608c14e6cdcec5097045c600f93f3dd45da97b4c3aa513de488c95ecf642",
	},
	{
		raw: []byte{
			0xe8, 0xbe, 0x61, 0xe2, 0xf6, 0xc2, 0x11, 0x54, 0x4b, 0x83, 0x16, 0x7f, 0xce, 0x7a, 0x4d, 0x50,
			0x3f, 0xb4, 0x9b, 0xf1, 0x5a, 0xf8, 0x3b, 0x58, 0xe1, 0xe5, 0x78, 0x0c, 0x08, 0x78, 0xa4, 0x40,
		},
		base64: "6L5h4vbCEVRLgxZ/znpNUD+0m/Fa+DtY4eV4DAh4pEA=",
		hex:    "e8be61e2f6c211544b83167fce7a4d503fb49bf15af83b58e1e5780c0878a440",
	},
	{
		raw: []byte{
			0xd8, 0x5c, 0xd2, 0x58, 0x77, 0xff, 0x0a, 0x26, 0xf7, 0x2a, 0x79, 0x7c, 0x56, 0xe2, 0x32, 0xe6,
			0xc9, 0x1e, 0x74, 0xd5, 0x60, 0x5c, 0xeb, 0x2b, 0xfc, 0x12, 0x9d, 0x5b, 0x88, 0x27, 0xba, 0x5f,
		},
		base64: "2FzSWHf/Cib3Knl8VuIy5skedNVgXOsr/BKdW4gnul8=",
		hex:    "d85cd25877ff0a26f72a797c56e232e6c91e74d5605ceb2bfc129d5b8827ba5f",
	},
	{
		raw: []byte{
			0xb8, 0x10, 0xc4, 0x1d, 0xfa, 0xed, 0x74, 0xb3, 0xd4, 0x4c, 0x32, 0x38, 0x50, 0x7e, 0x0e, 0x6e,
			0x5f, 0x33, 0x9e, 0xc0, 0x07, 0x10, 0xfc, 0x47, 0x97, 0xa3, 0x8b, 0xd9, 0xb1, 0x35, 0xc1, 0x78,
		},
		base64: "uBDEHfrtdLPUTDI4UH4Obl8znsAHEPxHl6OL2bE1wXg=",
		hex:    "b810c41dfaed74b3d44c3238507e0e6e5f339ec00710fc4797a38bd9b135c178",
	},
	{
		raw: []byte{
			0xe8, 0xd3, 0xca, 0x36, 0x33, 0xfc, 0xa3, 0x64, 0xe8, 0xbc, 0x76, 0xa6, 0xf4, 0x93, 0x12, 0x22,
			0xeb, 0x97, 0xa1, 0x6c, 0xa5, 0x97, 0xcf, 0x1f, 0xe1, 0x43, 0x0d, 0x80, 0x5d, 0xfb, 0xa3, 0x59,
		},
		base64: "6NPKNjP8o2TovHam9JMSIuuXoWyll88f4UMNgF37o1k=",
		hex:    "e8d3ca3633fca364e8bc76a6f4931222eb97a16ca597cf1fe1430d805dfba359",
	},
}

// randomKeys returns n deterministic pseudo-random 32-byte buffers.
func randomKeys(n int) [][]byte {
	out := make([][]byte, n)
	var state uint32 = 0x9e3779b9
	for i := range out {
		b := make([]byte, KeyLen)
		for j := range b {
			state ^= state << 13
			state ^= state >> 17
			state ^= state << 5
			b[j] = byte(state)
		}
		out[i] = b
	}
	return out
}
