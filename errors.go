package scryptpw

import "errors"

// Sentinel errors returned by this package. Wrap them with additional
// context using fmt.Errorf("%w: ...", Err...); errors.Is keeps working
// across the wrap.
var (
	// ErrInvalidParameter is returned when a cost parameter, length, or
	// derived size is out of range, or when a size computation would
	// overflow the platform int.
	ErrInvalidParameter = errors.New("scryptpw: invalid parameter")

	// ErrMalformedHash is returned when an MCF string fails structural,
	// length, or base64 decoding checks.
	ErrMalformedHash = errors.New("scryptpw: malformed hash")

	// ErrResourceExhausted is returned when a requested allocation
	// exceeds the configured memory ceiling, or the byte-source
	// collaborator fails. An allocation the platform refuses is not
	// reported through this error.
	ErrResourceExhausted = errors.New("scryptpw: resource exhausted")
)
