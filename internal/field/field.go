// Package field implements modular arithmetic over a prime field.
//
// Every function takes the modulus explicitly. The engine uses two distinct
// modular domains, the field modulus p and the group order n, and an explicit
// modulus argument at every call site keeps the two from being confused.
package field

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when a modular inverse is requested for a
// residue that has none (x ≡ 0 mod m, or gcd(x, m) > 1 for a bad modulus).
var ErrDivisionByZero = errors.New("field: no modular inverse exists")

// Normalize reduces x into the canonical range [0, m-1]. big.Int.Mod is
// Euclidean, so negative inputs wrap: Normalize(-1, m) = m-1.
func Normalize(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}

// Add returns (x + y) mod m in [0, m-1].
func Add(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, m)
}

// Sub returns (x - y) mod m in [0, m-1].
func Sub(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return Normalize(r, m)
}

// Mul returns (x * y) mod m in [0, m-1].
func Mul(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, m)
}

// Inverse returns the unique y in [1, m-1] with x*y ≡ 1 (mod m).
// The caller guarantees m is prime; with a prime modulus the inverse exists
// for every x not divisible by m, and ErrDivisionByZero otherwise.
func Inverse(x, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(x, m)
	if inv == nil {
		return nil, ErrDivisionByZero
	}
	return inv, nil
}

// IsZero reports whether x ≡ 0 (mod m).
func IsZero(x, m *big.Int) bool {
	return new(big.Int).Mod(x, m).Sign() == 0
}
