package scryptpw

import "encoding/binary"

// salsa208 applies the Salsa20/8 core permutation to the given 64-byte
// block in place: eight rounds (four double-rounds of column/row
// quarter-rounds) over the block's 16 little-endian 32-bit words,
// followed by adding the original words back in modulo 2^32.
func salsa208(b []byte) {
	var w [16]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.LittleEndian.Uint32(b[i*4:])
	}

	x0, x1, x2, x3, x4, x5, x6, x7, x8 := w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7], w[8]
	x9, x10, x11, x12, x13, x14, x15 := w[9], w[10], w[11], w[12], w[13], w[14], w[15]

	for i := 0; i < 8; i += 2 {
		// Operate on columns.
		x4 ^= rotl32(x0+x12, 7)
		x8 ^= rotl32(x4+x0, 9)
		x12 ^= rotl32(x8+x4, 13)
		x0 ^= rotl32(x12+x8, 18)

		x9 ^= rotl32(x5+x1, 7)
		x13 ^= rotl32(x9+x5, 9)
		x1 ^= rotl32(x13+x9, 13)
		x5 ^= rotl32(x1+x13, 18)

		x14 ^= rotl32(x10+x6, 7)
		x2 ^= rotl32(x14+x10, 9)
		x6 ^= rotl32(x2+x14, 13)
		x10 ^= rotl32(x6+x2, 18)

		x3 ^= rotl32(x15+x11, 7)
		x7 ^= rotl32(x3+x15, 9)
		x11 ^= rotl32(x7+x3, 13)
		x15 ^= rotl32(x11+x7, 18)

		// Operate on rows.
		x1 ^= rotl32(x0+x3, 7)
		x2 ^= rotl32(x1+x0, 9)
		x3 ^= rotl32(x2+x1, 13)
		x0 ^= rotl32(x3+x2, 18)

		x6 ^= rotl32(x5+x4, 7)
		x7 ^= rotl32(x6+x5, 9)
		x4 ^= rotl32(x7+x6, 13)
		x5 ^= rotl32(x4+x7, 18)

		x11 ^= rotl32(x10+x9, 7)
		x8 ^= rotl32(x11+x10, 9)
		x9 ^= rotl32(x8+x11, 13)
		x10 ^= rotl32(x9+x8, 18)

		x12 ^= rotl32(x15+x14, 7)
		x13 ^= rotl32(x12+x15, 9)
		x14 ^= rotl32(x13+x12, 13)
		x15 ^= rotl32(x14+x13, 18)
	}

	w[0] += x0
	w[1] += x1
	w[2] += x2
	w[3] += x3
	w[4] += x4
	w[5] += x5
	w[6] += x6
	w[7] += x7
	w[8] += x8
	w[9] += x9
	w[10] += x10
	w[11] += x11
	w[12] += x12
	w[13] += x13
	w[14] += x14
	w[15] += x15

	for i, v := range w {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
}

// rotl32 rotates v left by n bits, 0 < n < 32.
func rotl32(v uint32, n uint) uint32 {
	return v<<n | v>>(32-n)
}
