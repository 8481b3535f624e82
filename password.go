package scryptpw

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// dkLenMCF is the derived-key length scrypt MCF records always use: a
// 64-byte hash, matching both pylibscrypt's scrypt_mcf and libscrypt.
const dkLenMCF = 64

// defaultSaltLen is how many random bytes HashPassword draws from the
// byte-source collaborator when the caller does not supply a salt via
// WithSalt.
const defaultSaltLen = 16

// HashPassword derives a scrypt key from password and encodes it, along
// with its cost parameters and salt, as an $s1$ Modular Crypt Format
// string suitable for storage.
//
// By default it uses DefaultParams and draws a fresh 16-byte salt from
// crypto/rand.Reader; both can be overridden with Option values such as
// WithN, WithR, WithP, WithSalt, and WithRandReader.
func HashPassword(password []byte, opts ...Option) (string, error) {
	p := newParams(opts)

	salt := p.pendingSalt
	if salt == nil {
		var err error
		salt, err = drawSalt(p.rand, defaultSaltLen)
		if err != nil {
			return "", err
		}
	} else if len(salt) < 1 || len(salt) > 16 {
		return "", fmt.Errorf("%w: salt must be 1-16 bytes", ErrInvalidParameter)
	}

	if err := p.validateMCF(); err != nil {
		return "", err
	}
	if ceilingErr := p.checkMaxMemory(); ceilingErr != nil {
		return "", ceilingErr
	}

	hash, err := Derive(password, salt, p.N, p.R, p.P, dkLenMCF)
	if err != nil {
		return "", err
	}
	defer zero(hash)

	return encodeMCF(p, salt, hash)
}

// VerifyPassword decodes mcf, re-derives a scrypt key for password using
// the decoded cost parameters and salt, and compares it against the
// decoded hash in constant time.
//
// It returns (true, nil) on a match and (false, nil) on a mismatch; it
// never returns an error for a wrong password. It returns
// (false, ErrMalformedHash) only when mcf itself fails to decode, before
// any password-dependent computation runs.
func VerifyPassword(mcf string, password []byte) (bool, error) {
	d, err := decodeMCF(mcf)
	if err != nil {
		return false, err
	}

	got, err := Derive(password, d.Salt, d.N, d.R, d.P, dkLenMCF)
	if err != nil {
		return false, err
	}
	defer zero(got)

	return subtle.ConstantTimeCompare(got, d.Hash) == 1, nil
}

// drawSalt reads n bytes from the byte-source collaborator r. It fails
// loudly with ErrResourceExhausted rather than returning a short or
// zero-padded salt if r cannot supply n full bytes.
func drawSalt(r io.Reader, n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("%w: byte-source collaborator: %w", ErrResourceExhausted, err)
	}
	return salt, nil
}

// checkMaxMemory enforces the optional soft ceiling set by
// WithMaxMemory against the ROMix scratch allocation this call's
// parameters would require, before Derive allocates anything.
func (p Params) checkMaxMemory() error {
	if p.MaxMemory <= 0 {
		return nil
	}
	need := int64(128) * int64(p.R) * int64(p.N)
	if need > p.MaxMemory {
		return fmt.Errorf("%w: scratch allocation of %d bytes exceeds configured ceiling of %d",
			ErrResourceExhausted, need, p.MaxMemory)
	}
	return nil
}
