package scryptpw

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/bits"
)

// maxInt is the largest value a platform int can hold. All overflow
// checks in the driver are expressed against it, the same way the
// teacher implementation checked against a 32-bit maxInt, just widened
// to whatever the host platform's int actually is.
const maxInt = 1<<(bits.UintSize-1) - 1

// Params bundles the scrypt cost parameters used by HashPassword and
// VerifyPassword. The zero value is not valid; start from DefaultParams.
type Params struct {
	N int // CPU/memory cost factor, must be a power of two > 1.
	R int // Block size factor.
	P int // Parallelization factor.

	// MaxMemory is a soft ceiling, in bytes, on the size of the ROMix
	// scratch allocation (V). Zero means no ceiling beyond maxInt. See
	// Option WithMaxMemory.
	MaxMemory int64

	rand        io.Reader
	pendingSalt []byte
}

// DefaultParams holds the "interactive" work factor from the original
// scrypt paper: N=2^14, r=8, p=1. Applications doing long-term credential
// storage should raise N via WithN.
var DefaultParams = Params{
	N: 1 << 14,
	R: 8,
	P: 1,
}

func newParams(opts []Option) Params {
	p := DefaultParams
	p.rand = rand.Reader
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Option configures HashPassword. See WithN, WithR, WithP, WithSalt,
// WithMaxMemory, and WithRandReader.
type Option func(*Params)

// WithN overrides the cost factor N.
func WithN(n int) Option {
	return func(p *Params) { p.N = n }
}

// WithR overrides the block size factor r.
func WithR(r int) Option {
	return func(p *Params) { p.R = r }
}

// WithP overrides the parallelization factor p.
func WithP(pp int) Option {
	return func(p *Params) { p.P = pp }
}

// WithMaxMemory sets a soft ceiling, in bytes, on the ROMix scratch
// allocation. HashPassword fails with ErrResourceExhausted before
// allocating if the configured parameters would exceed it.
func WithMaxMemory(bytes int64) Option {
	return func(p *Params) { p.MaxMemory = bytes }
}

// WithRandReader overrides the byte-source collaborator used to draw a
// random salt when none is supplied via WithSalt. It defaults to
// crypto/rand.Reader. A caller-supplied reader must be safe for
// concurrent use if HashPassword is called concurrently.
func WithRandReader(r io.Reader) Option {
	return func(p *Params) { p.rand = r }
}

// WithSalt supplies an explicit salt instead of drawing one from the
// byte-source collaborator. salt must be 1-16 octets for HashPassword.
func WithSalt(salt []byte) Option {
	return func(p *Params) {
		p.pendingSalt = salt
	}
}

// validateMCF checks the subset of the parameter space that the MCF
// format can represent: 1<=r,p<=255 and 2<=N<=2^31, N a power of two.
func (p Params) validateMCF() error {
	if p.R < 1 || p.R > 255 {
		return fmt.Errorf("%w: r out of range [1,255] for MCF", ErrInvalidParameter)
	}
	if p.P < 1 || p.P > 255 {
		return fmt.Errorf("%w: p out of range [1,255] for MCF", ErrInvalidParameter)
	}
	if p.N < 2 || p.N > 1<<31 {
		return fmt.Errorf("%w: N out of range [2,2^31] for MCF", ErrInvalidParameter)
	}
	if p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be a power of two", ErrInvalidParameter)
	}
	return nil
}
