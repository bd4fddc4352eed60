// Package ecdh implements Elliptic Curve Diffie-Hellman key agreement on
// top of the ecc engine. Both parties generate a key pair on the same curve,
// exchange public points, and derive the same shared secret point
// a·B = b·A = (a·b)·G.
package ecdh

import (
	"fmt"
	"io"
	"math/big"

	"github.com/akornfellner/go-ecc/pkg/ecc"
)

// GenerateKeyPair draws a fresh ECDH key pair on the given curve. rand must
// be a cryptographically secure source; each call must produce an
// independent scalar.
func GenerateKeyPair(rand io.Reader, curve *ecc.Curve) (*ecc.KeyPair, error) {
	return curve.GenerateKeyPair(rand)
}

// DeriveSharedSecret computes own·peer, the shared secret point. The peer's
// point is untrusted input and is validated against the curve equation
// first; skipping that check would allow an invalid-curve attack in which a
// crafted point leaks bits of the private scalar. The identity is likewise
// rejected: it is not a valid public key and would pin the result to the
// identity.
func DeriveSharedSecret(own *big.Int, peer ecc.Point, curve *ecc.Curve) (ecc.Point, error) {
	if err := curve.CheckScalar(own); err != nil {
		return ecc.Point{}, fmt.Errorf("ecdh: private scalar: %w", err)
	}
	if peer.IsInfinity() {
		return ecc.Point{}, fmt.Errorf("ecdh: peer public key is the identity: %w", ecc.ErrPointNotOnCurve)
	}
	if !curve.IsOnCurve(peer) {
		return ecc.Point{}, fmt.Errorf("ecdh: peer public key: %w", ecc.ErrPointNotOnCurve)
	}
	return curve.ScalarMult(own, peer), nil
}
