package ecc

import (
	"math/big"

	"github.com/akornfellner/go-ecc/internal/field"
)

// addCase enumerates the mutually exclusive cases of the group law. Add
// classifies its operands once and switches over the result, so the
// degenerate cases (identity operands, P = -Q, doubling a point with y = 0)
// are handled before any slope is computed. A slope denominator of zero is
// unreachable for on-curve inputs.
type addCase int

const (
	caseLeftIdentity  addCase = iota // P = O
	caseRightIdentity                // Q = O
	caseInverse                      // P = -Q, includes doubling with y = 0
	caseDouble                       // P = Q with y ≠ 0
	caseDistinct                     // general addition
)

func classify(p, q Point) addCase {
	switch {
	case p.IsInfinity():
		return caseLeftIdentity
	case q.IsInfinity():
		return caseRightIdentity
	}
	if p.X.Cmp(q.X) == 0 {
		// Same x: the points are equal or mutual inverses. A point with
		// y = 0 is its own inverse, so doubling it yields the identity.
		if p.Y.Cmp(q.Y) != 0 || p.Y.Sign() == 0 {
			return caseInverse
		}
		return caseDouble
	}
	return caseDistinct
}

// Add returns p + q under the curve's group law. Both operands must be on
// the curve (the identity counts); arithmetic outputs and points from
// NewPoint always are.
func (c *Curve) Add(p, q Point) Point {
	var lambda *big.Int

	switch classify(p, q) {
	case caseLeftIdentity:
		return q.clone()
	case caseRightIdentity:
		return p.clone()
	case caseInverse:
		return Point{}
	case caseDouble:
		// λ = (3x₁² + a) / 2y₁
		num := field.Add(field.Mul(big.NewInt(3), field.Mul(p.X, p.X, c.P), c.P), c.A, c.P)
		den := c.mustInverse(field.Add(p.Y, p.Y, c.P))
		lambda = field.Mul(num, den, c.P)
	case caseDistinct:
		// λ = (y₂ - y₁) / (x₂ - x₁)
		num := field.Sub(q.Y, p.Y, c.P)
		den := c.mustInverse(field.Sub(q.X, p.X, c.P))
		lambda = field.Mul(num, den, c.P)
	}

	// x₃ = λ² - x₁ - x₂, y₃ = λ(x₁ - x₃) - y₁
	x3 := field.Sub(field.Sub(field.Mul(lambda, lambda, c.P), p.X, c.P), q.X, c.P)
	y3 := field.Sub(field.Mul(lambda, field.Sub(p.X, x3, c.P), c.P), p.Y, c.P)
	return Point{x3, y3}
}

// Double returns 2p. Doubling a point with y = 0 yields the identity.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// ScalarMult returns k·p by double-and-add over the bits of k, least
// significant first. k = 0 yields the identity. When the curve order is
// known, k is reduced modulo it first (n·p = O for any p in the subgroup);
// otherwise a negative k multiplies the negated point.
func (c *Curve) ScalarMult(k *big.Int, p Point) Point {
	k = new(big.Int).Set(k)
	if c.N != nil {
		k.Mod(k, c.N) // big.Int.Mod is Euclidean, so this also fixes the sign
	} else if k.Sign() < 0 {
		k.Neg(k)
		p = c.Negate(p)
	}

	result := Point{}
	addend := p
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			result = c.Add(result, addend)
		}
		addend = c.Add(addend, addend)
		k.Rsh(k, 1)
	}
	return result
}

// ScalarBaseMult returns k·G for the curve's base point.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(k, c.G)
}

// mustInverse inverts a slope denominator mod p. The classification in Add
// guarantees the denominator is nonzero for on-curve operands, so a failure
// here means an operand bypassed validation or the modulus is not prime.
func (c *Curve) mustInverse(x *big.Int) *big.Int {
	inv, err := field.Inverse(x, c.P)
	if err != nil {
		panic("ecc: slope denominator not invertible: off-curve operand or non-prime modulus")
	}
	return inv
}
