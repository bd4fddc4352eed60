// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm
// over the ecc engine, following SEC 1 version 2.0, section 4.1.
//
// Callers hash the message themselves and pass the digest bytes; HashToInt
// defines the digest-to-integer convention and is applied identically during
// signing and verification.
//
// Security invariant: the nonce k must be fresh and uniformly random for
// every signature. Reusing a nonce across two signatures under the same key,
// or using a biased source, allows full private-key recovery. rand must be a
// CSPRNG in production.
package ecdsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/akornfellner/go-ecc/internal/field"
	"github.com/akornfellner/go-ecc/pkg/ecc"
)

// Signature is an ECDSA signature: a pair of integers in [1, n-1].
type Signature struct {
	R, S *big.Int
}

// maxNonceRetries bounds the degenerate-nonce retry loop in Sign. A
// degenerate draw (r = 0 or s = 0) has probability on the order of 1/n, so
// hitting the cap means the randomness source is broken, not bad luck.
const maxNonceRetries = 32

// ErrNonceRetries is returned when signing keeps producing degenerate
// signature components, which indicates a broken randomness source.
var ErrNonceRetries = errors.New("ecdsa: nonce retries exhausted")

// Sign produces a signature over the message digest using the private
// scalar priv. The digest is reduced with HashToInt. A draw of the nonce k
// that yields r = 0 or s = 0 would produce an invalid, structure-leaking
// signature, so such nonces are discarded and redrawn.
func Sign(rand io.Reader, curve *ecc.Curve, priv *big.Int, digest []byte) (*Signature, error) {
	if err := curve.CheckScalar(priv); err != nil {
		return nil, fmt.Errorf("ecdsa: private key: %w", err)
	}
	n := curve.N
	z := HashToInt(digest, n)

	for i := 0; i < maxNonceRetries; i++ {
		k, err := curve.RandomScalar(rand)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: drawing nonce: %w", err)
		}

		// r = (k·G).x mod n
		kg := curve.ScalarBaseMult(k)
		r := new(big.Int).Mod(kg.X, n)
		if r.Sign() == 0 {
			continue
		}

		// s = k⁻¹ (z + r·d) mod n
		kInv, err := field.Inverse(k, n)
		if err != nil {
			// k is in [1, n-1] and n is prime, so this cannot happen
			// unless the curve order is wrong.
			return nil, fmt.Errorf("ecdsa: inverting nonce: %w", err)
		}
		s := field.Mul(kInv, field.Add(z, field.Mul(r, priv, n), n), n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
	return nil, ErrNonceRetries
}

// Verify reports whether sig is a valid signature over the digest for the
// public key pub. An invalid signature, including one with r or s outside
// [1, n-1], yields false. An error means verification could not be evaluated
// at all: the public key is not a point on the curve, or the curve carries
// no order.
func Verify(curve *ecc.Curve, pub ecc.Point, digest []byte, sig *Signature) (bool, error) {
	n := curve.N
	if n == nil {
		return false, ecc.ErrMissingOrder
	}
	if pub.IsInfinity() || !curve.IsOnCurve(pub) {
		return false, fmt.Errorf("ecdsa: public key: %w", ecc.ErrPointNotOnCurve)
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, nil
	}
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false, nil
	}

	z := HashToInt(digest, n)

	// w = s⁻¹, u₁ = z·w, u₂ = r·w; valid iff (u₁·G + u₂·Q).x ≡ r (mod n).
	w, err := field.Inverse(sig.S, n)
	if err != nil {
		return false, nil
	}
	u1 := field.Mul(z, w, n)
	u2 := field.Mul(sig.R, w, n)

	p := curve.Add(curve.ScalarBaseMult(u1), curve.ScalarMult(u2, pub))
	if p.IsInfinity() {
		return false, nil
	}
	return new(big.Int).Mod(p.X, n).Cmp(sig.R) == 0, nil
}

// HashToInt converts digest bytes to an integer modulo n. The digest is read
// as a big-endian integer, truncated to the bit length of n as in FIPS 186-4
// section 6.4, then reduced modulo n. Signing and verification both go
// through this function, so any consistent external hash works.
func HashToInt(digest []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	z := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z.Mod(z, n)
}

func inRange(x, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}
