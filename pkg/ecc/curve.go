// Package ecc implements arithmetic on short-Weierstrass elliptic curves
// y² = x³ + ax + b over a prime field, together with key-pair generation.
// It is a generic big.Int engine: any curve in short-Weierstrass form works,
// at the cost of the constant-time and fixed-width optimizations that
// curve-specific implementations provide. Nothing here is constant time.
//
// The ECDH and ECDSA protocols built on this engine live in the ecdh and
// ecdsa packages.
package ecc

import (
	"fmt"
	"math/big"

	"github.com/akornfellner/go-ecc/internal/field"
)

// Curve holds the domain parameters of a short-Weierstrass curve and is the
// context for all point arithmetic. It is read-only after construction and
// safe for concurrent use.
type Curve struct {
	Name string

	A, B *big.Int // curve equation coefficients
	P    *big.Int // field modulus, must be prime (caller precondition)
	G    Point    // base point
	N    *big.Int // order of G; nil when unknown
}

// NewCurve builds a curve context from the coefficients a and b, the prime
// field modulus p, the base point (gx, gy) and the order n of the base
// point. n may be nil for callers that never need scalar-field arithmetic.
//
// The curve is checked for non-singularity (4a³ + 27b² ≠ 0 mod p) and the
// base point is checked against the curve equation. Primality of p is a
// caller precondition and is not verified here.
func NewCurve(a, b, p, gx, gy, n *big.Int) (*Curve, error) {
	if a == nil || b == nil || p == nil || gx == nil || gy == nil {
		return nil, fmt.Errorf("%w: nil parameter", ErrInvalidParams)
	}
	if p.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidParams)
	}
	if n != nil && n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: order must be positive", ErrInvalidParams)
	}

	c := &Curve{
		A: field.Normalize(a, p),
		B: field.Normalize(b, p),
		P: new(big.Int).Set(p),
	}
	if n != nil {
		c.N = new(big.Int).Set(n)
	}

	// 4a³ + 27b² ≠ 0 mod p, otherwise the curve has a cusp or node and
	// the group law breaks down.
	disc := field.Add(
		field.Mul(big.NewInt(4), field.Mul(c.A, field.Mul(c.A, c.A, p), p), p),
		field.Mul(big.NewInt(27), field.Mul(c.B, c.B, p), p),
		p,
	)
	if disc.Sign() == 0 {
		return nil, fmt.Errorf("%w: 4a³ + 27b² ≡ 0 mod p", ErrSingularCurve)
	}

	g, err := c.NewPoint(gx, gy)
	if err != nil {
		return nil, fmt.Errorf("base point: %w", err)
	}
	c.G = g

	return c, nil
}

// Polynomial evaluates the right-hand side of the curve equation,
// x³ + ax + b mod p.
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	rhs := field.Mul(x, x, c.P)
	rhs = field.Add(rhs, c.A, c.P) // x² + a
	rhs = field.Mul(rhs, x, c.P)   // x³ + ax
	return field.Add(rhs, c.B, c.P)
}

// IsOnCurve reports whether p is a valid element of the curve's group. The
// point at infinity is always valid; a coordinate pair is valid iff both
// coordinates are canonical residues and y² ≡ x³ + ax + b (mod p).
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	y2 := field.Mul(p.Y, p.Y, c.P)
	return y2.Cmp(c.Polynomial(p.X)) == 0
}

// NewPoint validates untrusted coordinates against the curve equation and
// returns the resulting point. Coordinates are normalized into [0, p-1]
// first, so negative or unreduced inputs are accepted. Off-curve coordinates
// are rejected with ErrPointNotOnCurve; never feed unvalidated peer input
// into the arithmetic directly.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return Point{}, fmt.Errorf("%w: nil coordinate", ErrPointNotOnCurve)
	}
	p := Point{field.Normalize(x, c.P), field.Normalize(y, c.P)}
	if !c.IsOnCurve(p) {
		return Point{}, fmt.Errorf("%w: (%s, %s)", ErrPointNotOnCurve, x, y)
	}
	return p, nil
}

// Negate returns -p, the reflection of p across the x-axis. The identity is
// its own negation.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Point{}
	}
	return Point{new(big.Int).Set(p.X), field.Normalize(new(big.Int).Neg(p.Y), c.P)}
}

// ComputeOrder finds the order of the base point by repeated addition: the
// smallest positive k with k·G = infinity. This takes k point additions and
// is only usable on toy curves, for setup and tests. Real curves ship their
// order as a domain parameter.
func (c *Curve) ComputeOrder() *big.Int {
	p := c.G
	order := big.NewInt(1)
	one := big.NewInt(1)
	for !p.IsInfinity() {
		p = c.Add(p, c.G)
		order.Add(order, one)
	}
	return order
}
