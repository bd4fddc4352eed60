package ecc

import (
	"fmt"
	"math/big"
)

// Point is a point on a short-Weierstrass curve: either an affine coordinate
// pair with X, Y in [0, p-1], or the point at infinity (the group identity),
// represented by nil coordinates.
//
// Points are immutable values. Arithmetic produces new points; nothing
// mutates a Point after it is created. Validated points come from
// Curve.NewPoint; the arithmetic itself only ever produces points that
// satisfy the curve equation, so its outputs need no re-validation.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the point at infinity, the neutral element of the group.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// Equal reports whether p and q are the same group element. Two points at
// infinity are equal; a coordinate point never equals the identity.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String renders the point for logs and test failures.
func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// clone returns a point with fresh coordinate values, so callers cannot
// alias the internals of a stored point.
func (p Point) clone() Point {
	if p.IsInfinity() {
		return Point{}
	}
	return Point{new(big.Int).Set(p.X), new(big.Int).Set(p.Y)}
}
