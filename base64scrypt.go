package scryptpw

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// mcf7ID is the identifier used by the $7$ crypt-style scrypt record
// produced by libscrypt and some *BSD crypt(3) implementations.
const mcf7ID = "7"

// mcf7Prefix is the full leading token of a $7$ record.
const mcf7Prefix = "$" + mcf7ID + "$"

// crypt64Alphabet is the non-padded base64 alphabet crypt(3)-family
// formats use in place of RFC 4648's standard alphabet, ordered
// "./0-9A-Za-z" rather than "A-Za-z0-9+/".
const crypt64Alphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var crypt64Encoding = base64.NewEncoding(crypt64Alphabet).WithPadding(base64.NoPadding)

// EncodeMCF7 formats (N, r, p, salt, hash) as a $7$ record sharing the
// same packed parameter layout as $s1$ (see decodeMCF), but using the
// crypt(3)-family base64 alphabet instead of standard base64, and
// folding the packed parameters and salt into a single field ahead of
// the hash. It is not a byte-exact clone of libscrypt's own $7$ encoder,
// but it preserves the same (N, r, p, salt, hash) tuple across a round
// trip through DecodeMCF7, which is the interop this package promises.
func EncodeMCF7(p Params, salt, hash []byte) (string, error) {
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
	head := append([]byte{byte(t), byte(p.R), byte(p.P)}, salt...)

	var b strings.Builder
	b.WriteString(mcf7Prefix)
	b.WriteString(crypt64Encoding.EncodeToString(head))
	b.WriteByte('$')
	b.WriteString(crypt64Encoding.EncodeToString(hash))
	return b.String(), nil
}

// DecodeMCF7 parses a $7$ record produced by EncodeMCF7 into the same
// Params, salt and hash values that decodeMCF produces for $s1$ records, so
// that either codec can be re-encoded as the other without losing or
// altering (N, r, p, salt, hash).
func DecodeMCF7(s string) (Params, []byte, []byte, error) {
	if !isASCII(s) {
		return Params{}, nil, nil, fmt.Errorf("%w: non-ASCII input", ErrMalformedHash)
	}

	parts := strings.Split(s, "$")
	if len(parts) != 4 || parts[0] != "" || parts[1] != mcf7ID {
		return Params{}, nil, nil, fmt.Errorf("%w: unrecognized MCF7 record", ErrMalformedHash)
	}

	head, err := crypt64Encoding.DecodeString(parts[2])
	if err != nil || len(head) < 4 || len(head) > 19 {
		return Params{}, nil, nil, fmt.Errorf("%w: malformed MCF7 parameter field", ErrMalformedHash)
	}
	t, r, p := int(head[0]), int(head[1]), int(head[2])
	if t < 1 || t > 31 || r < 1 || p < 1 {
		return Params{}, nil, nil, fmt.Errorf("%w: parameters out of range", ErrMalformedHash)
	}
	salt := head[3:]

	hash, err := crypt64Encoding.DecodeString(parts[3])
	if err != nil || len(hash) != 64 {
		return Params{}, nil, nil, fmt.Errorf("%w: malformed MCF7 hash", ErrMalformedHash)
	}

	return Params{N: 1 << uint(t), R: r, P: p}, salt, hash, nil
}
