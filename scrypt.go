package scryptpw

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// parallelThreshold is the largest p that always runs serially; Derive
// fans the independent SMix calls out across goroutines only for
// p > parallelThreshold. p<=2 always runs serially in the calling
// goroutine, matching the spec's
// requirement that parallel execution never be the default for small p.
const parallelThreshold = 2

// Derive computes a derived key from password and salt using the scrypt
// KDF with cost parameters N, r, p, returning dkLen bytes.
//
// N is the CPU/memory cost parameter; it must be a power of two greater
// than 1. r and p must satisfy r*p < 2^30. dkLen must be at least 1.
// Callers needing an MCF-encodable key should additionally observe the
// tighter ranges documented on Params: N<=2^31, 1<=r,p<=255.
//
// For example, a 32-byte key suitable for AES-256 can be derived with:
//
//	dk, err := scryptpw.Derive(password, salt, 1<<14, 8, 1, 32)
//
// Derive validates all parameters and bounds every size computation
// against platform int overflow before allocating anything; on failure
// it returns a nil slice and an error wrapping ErrInvalidParameter.
func Derive(password, salt []byte, n, r, p, dkLen int) ([]byte, error) {
	if err := validateDeriveParams(n, r, p, dkLen); err != nil {
		return nil, err
	}

	// Bound every size computation against platform int overflow before
	// allocating anything, the same three-way check the teacher
	// implementation used: p*r*128 (B), r*256 (XY), N*r*128 (V).
	if r > maxInt/128/p {
		return nil, fmt.Errorf("%w: p*r*128 overflows platform int", ErrInvalidParameter)
	}
	if r > maxInt/256 {
		return nil, fmt.Errorf("%w: r*256 overflows platform int", ErrInvalidParameter)
	}
	if n > maxInt/128/r {
		return nil, fmt.Errorf("%w: N*r*128 overflows platform int", ErrInvalidParameter)
	}
	blockLen := 128 * r

	b := pbkdf2.Key(password, salt, 1, p*blockLen, sha256.New)
	defer zero(b)

	runSMix(b, r, n, p, blockLen)

	out := pbkdf2.Key(password, b, 1, dkLen, sha256.New)
	return out, nil
}

// runSMix drives the p independent SMix invocations. For p<=parallelThreshold
// it runs serially in the calling goroutine, reusing a single V/XY scratch
// pair across all p calls. For larger p it fans the work out across
// goroutines; each goroutine gets its own V/XY scratch pair, since SMix
// fully overwrites and reads back V on every call and sharing one across
// concurrently-running goroutines would be a data race, not just an
// allocation to save. Giving each worker its own scratch means the
// parallel path's peak memory scales with the worker count, not just
// N — the price of actual concurrency, not a shared read-only table.
// Splitting p's independent calls across workers never changes any single
// call's inputs or outputs, so the result is bit-identical to the fully
// serial path either way.
func runSMix(b []byte, r, n, p, blockLen int) {
	if p <= parallelThreshold {
		v := make([]byte, blockLen*n)
		xy := make([]byte, 256*r)
		defer zero(v)
		defer zero(xy)
		for i := 0; i < p; i++ {
			smix(b[i*blockLen:(i+1)*blockLen], r, n, v, xy)
		}
		return
	}

	workers := numWorkers(p)
	var wg sync.WaitGroup
	jobs := make(chan int, p)
	for i := 0; i < p; i++ {
		jobs <- i
	}
	close(jobs)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := make([]byte, blockLen*n)
			xy := make([]byte, 256*r)
			defer zero(v)
			defer zero(xy)
			for i := range jobs {
				smix(b[i*blockLen:(i+1)*blockLen], r, n, v, xy)
			}
		}()
	}
	wg.Wait()
}

// numWorkers bounds how many goroutines runSMix fans out to: never more
// than p (no point in idle workers), and never more than a fixed cap of
// 8, whatever GOMAXPROCS is. The small constant cap keeps the scratch buffer
// count (and therefore memory overhead) predictable under hostile p.
func numWorkers(p int) int {
	const maxWorkers = 8
	if p < maxWorkers {
		return p
	}
	return maxWorkers
}

func validateDeriveParams(n, r, p, dkLen int) error {
	if n <= 1 || n&(n-1) != 0 {
		return fmt.Errorf("%w: N must be > 1 and a power of two", ErrInvalidParameter)
	}
	if r < 1 {
		return fmt.Errorf("%w: r must be >= 1", ErrInvalidParameter)
	}
	if p < 1 {
		return fmt.Errorf("%w: p must be >= 1", ErrInvalidParameter)
	}
	if uint64(r)*uint64(p) >= 1<<30 {
		return fmt.Errorf("%w: r*p must be < 2^30", ErrInvalidParameter)
	}
	if dkLen < 1 {
		return fmt.Errorf("%w: dkLen must be >= 1", ErrInvalidParameter)
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
