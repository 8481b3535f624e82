package scryptpw

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// mcfID is the Modular Crypt Format identifier for this codec.
const mcfID = "s1"

// mcfPrefix is the full leading token of an encoded record, including
// both dollar signs around the identifier.
const mcfPrefix = "$" + mcfID + "$"

// mcfMaxLen bounds a well-formed $s1$ record: 4 octets of prefix, 6 of
// packed hex params, 2 separating '$', up to 24 of salt base64, up to
// 88 of hash base64, for a worst case of 124 octets total; the bound of
// 125 leaves one octet of slack.
const mcfMaxLen = 125

// decodedMCF is the in-memory representation the $s1$ codec decodes to:
// cost parameters plus the raw salt and hash bytes they were computed
// over. The $7$ interop codec in base64scrypt.go returns the same three
// values as separate results.
type decodedMCF struct {
	Params
	Salt []byte
	Hash []byte
}

// encodeMCF formats (N, r, p, salt, hash) as an $s1$ Modular Crypt
// Format record. salt must be 1-16 bytes and hash exactly 64 bytes;
// N, r, p must satisfy Params.validateMCF.
func encodeMCF(p Params, salt, hash []byte) (string, error) {
	if err := p.validateMCF(); err != nil {
		return "", err
	}
	if len(salt) < 1 || len(salt) > 16 {
		return "", fmt.Errorf("%w: salt must be 1-16 bytes", ErrInvalidParameter)
	}
	if len(hash) != 64 {
		return "", fmt.Errorf("%w: hash must be 64 bytes", ErrInvalidParameter)
	}

	t := log2(p.N)
	packed := p.P | (p.R << 8) | (t << 16)

	var b strings.Builder
	b.Grow(mcfMaxLen)
	b.WriteString(mcfPrefix)
	fmt.Fprintf(&b, "%06x", packed)
	b.WriteByte('$')
	b.WriteString(base64.StdEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(base64.StdEncoding.EncodeToString(hash))
	return b.String(), nil
}

// decodeMCF parses an $s1$ Modular Crypt Format record, returning its
// cost parameters and raw salt and hash. Decoding is strict: it does not
// repair missing base64 padding or otherwise tolerate malformed input.
func decodeMCF(s string) (decodedMCF, error) {
	if !isASCII(s) {
		return decodedMCF{}, fmt.Errorf("%w: non-ASCII input", ErrMalformedHash)
	}

	parts := strings.Split(s, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != mcfID {
		return decodedMCF{}, fmt.Errorf("%w: unrecognized MCF record", ErrMalformedHash)
	}
	paramsHex, saltB64, hashB64 := parts[2], parts[3], parts[4]

	raw, err := hex.DecodeString(paramsHex)
	if err != nil || len(raw) != 3 {
		return decodedMCF{}, fmt.Errorf("%w: malformed parameter field", ErrMalformedHash)
	}
	t, r, p := int(raw[0]), int(raw[1]), int(raw[2])
	if t < 1 || t > 31 || r < 1 || p < 1 {
		return decodedMCF{}, fmt.Errorf("%w: parameters out of range", ErrMalformedHash)
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil || len(salt) < 1 || len(salt) > 16 {
		return decodedMCF{}, fmt.Errorf("%w: malformed salt", ErrMalformedHash)
	}
	hash, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil || len(hash) != 64 {
		return decodedMCF{}, fmt.Errorf("%w: malformed hash", ErrMalformedHash)
	}

	return decodedMCF{
		Params: Params{N: 1 << uint(t), R: r, P: p},
		Salt:   salt,
		Hash:   hash,
	}, nil
}

// log2 returns the base-2 logarithm of n, which must be a power of two.
// Callers validate n beforehand; log2 does not check.
func log2(n int) int {
	t := 0
	for 1<<uint(t) < n {
		t++
	}
	return t
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
