package ecc

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the secp256k1 curve (y² = x³ + 7) with domain parameters
// taken from the decred implementation. The returned context runs on this
// package's generic engine; the decred library is only consulted for the
// parameters (and as a cross-checking oracle in tests).
func Secp256k1() *Curve {
	return fromParams(secp256k1.S256().Params(), big.NewInt(0))
}

// P256 returns the NIST P-256 curve with parameters from crypto/elliptic.
// P-256 uses a = -3 like all NIST prime curves.
func P256() *Curve {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return fromParams(params, a)
}

// P384 returns the NIST P-384 curve with parameters from crypto/elliptic.
func P384() *Curve {
	params := elliptic.P384().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return fromParams(params, a)
}

func fromParams(params *elliptic.CurveParams, a *big.Int) *Curve {
	c, err := NewCurve(a, params.B, params.P, params.Gx, params.Gy, params.N)
	if err != nil {
		// Standardized parameters are known-good; failing here means the
		// constructor itself is broken.
		panic("ecc: " + params.Name + " parameters rejected: " + err.Error())
	}
	c.Name = params.Name
	return c
}
