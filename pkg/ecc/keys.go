package ecc

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// KeyPair is a private scalar d in [1, n-1] together with the derived public
// point Q = d·G. The scalar is the only secret; the public point may be
// disclosed freely.
type KeyPair struct {
	D      *big.Int
	Public Point
}

// RandomScalar draws a uniformly random scalar in [1, n-1] from rand, which
// must be a cryptographically secure source (crypto/rand.Reader in
// production; tests may inject a deterministic reader). Returns
// ErrMissingOrder on a curve constructed without an order.
func (c *Curve) RandomScalar(rand io.Reader) (*big.Int, error) {
	if c.N == nil {
		return nil, ErrMissingOrder
	}
	// rand.Int draws from [0, n-2]; shifting by one gives [1, n-1] without
	// rejection sampling.
	max := new(big.Int).Sub(c.N, big.NewInt(1))
	k, err := crand.Int(rand, max)
	if err != nil {
		return nil, fmt.Errorf("ecc: drawing scalar: %w", err)
	}
	return k.Add(k, big.NewInt(1)), nil
}

// GenerateKeyPair draws a private scalar from rand and computes the matching
// public point. Both ECDH and ECDSA key pairs are generated this way.
func (c *Curve) GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	d, err := c.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	return &KeyPair{D: d, Public: c.ScalarBaseMult(d)}, nil
}

// CheckScalar validates that d is a usable private scalar for this curve:
// the order must be known and d must lie in [1, n-1].
func (c *Curve) CheckScalar(d *big.Int) error {
	if c.N == nil {
		return ErrMissingOrder
	}
	if d == nil || d.Sign() <= 0 || d.Cmp(c.N) >= 0 {
		return ErrInvalidScalar
	}
	return nil
}
