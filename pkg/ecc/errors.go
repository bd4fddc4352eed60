package ecc

import "errors"

// Common errors returned by the curve engine.
var (
	// ErrPointNotOnCurve is returned when coordinates do not satisfy the
	// curve equation y² = x³ + ax + b (mod p). Untrusted points must be
	// rejected with this error before any arithmetic uses them.
	ErrPointNotOnCurve = errors.New("ecc: point is not on the curve")

	// ErrSingularCurve is returned when 4a³ + 27b² ≡ 0 (mod p). Singular
	// curves have no valid group law.
	ErrSingularCurve = errors.New("ecc: curve is singular")

	// ErrMissingOrder is returned by operations that need the order of the
	// base point (scalar generation, ECDSA) on a curve constructed without
	// one.
	ErrMissingOrder = errors.New("ecc: curve order is not set")

	// ErrInvalidParams is returned when curve parameters are absent or out
	// of range at construction time.
	ErrInvalidParams = errors.New("ecc: invalid curve parameters")

	// ErrInvalidScalar is returned when a private scalar is outside the
	// valid range [1, n-1].
	ErrInvalidScalar = errors.New("ecc: scalar out of range [1, n-1]")
)
