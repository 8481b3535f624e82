package scryptpw

// blockMix implements BlockMix_{Salsa20/8, r}: it mixes the 2r 64-byte
// subblocks of b in place using the Salsa20/8 core, writing its scratch
// output into the caller-supplied y (which must be at least 128*r bytes,
// the same size as b).
func blockMix(b, y []byte, r int) {
	x := make([]byte, 64)

	blockCopy(x, b[(2*r-1)*64:], 64)

	for i := 0; i < 2*r; i++ {
		blockXOR(x, b[i*64:], 64)
		salsa208(x)
		blockCopy(y[i*64:], x, 64)
	}

	// De-interleave: even-indexed subblocks first, then odd-indexed.
	for i := 0; i < r; i++ {
		blockCopy(b[i*64:], y[(i*2)*64:], 64)
	}
	for i := 0; i < r; i++ {
		blockCopy(b[(i+r)*64:], y[(i*2+1)*64:], 64)
	}
}

func blockCopy(dst, src []byte, n int) {
	copy(dst, src[:n])
}

func blockXOR(dst, src []byte, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}
