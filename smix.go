package scryptpw

import "encoding/binary"

// smix implements ROMix: it fills the scratch array v with N successive
// states of b, then performs N pseudo-random-addressed reads into v,
// mixing each back into the running state. b is 128*r bytes and is
// overwritten in place with the final state. v must be N*128*r bytes,
// and xy must be 256*r bytes of scratch split into an X half and a Y
// half for blockMix.
//
// The mix pass's addressing into v depends on the running state and is
// therefore inherently sequential and data-dependent; this is what
// enforces scrypt's memory-hardness. No caching or memoization of v
// reads is permitted without breaking that property, so none is done
// here.
func smix(b []byte, r, n int, v, xy []byte) {
	blockLen := 128 * r
	x := xy
	y := xy[blockLen:]

	blockCopy(x, b, blockLen)

	for i := 0; i < n; i++ {
		blockCopy(v[i*blockLen:], x, blockLen)
		blockMix(x, y, r)
	}

	for i := 0; i < n; i++ {
		j := int(integerify(x, r) & uint64(n-1))
		blockXOR(x, v[j*blockLen:], blockLen)
		blockMix(x, y, r)
	}

	blockCopy(b, x, blockLen)
}

// integerify returns the first little-endian 64-bit word of the final
// 64-byte subblock of x, the value ROMix uses to address into V. N is
// always a power of two, so callers reduce it modulo N with a bitmask.
func integerify(x []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(x[(2*r-1)*64:])
}
