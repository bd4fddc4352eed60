package ecc

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// toyMultiples lists k·G on the toy curve for k = 1..18; 19·G is the
// identity. Taken from the standard worked example for this curve.
var toyMultiples = [][2]int64{
	{5, 1}, {6, 3}, {10, 6}, {3, 1}, {9, 16}, {16, 13},
	{0, 6}, {13, 7}, {7, 6}, {7, 11}, {13, 10}, {0, 11},
	{16, 4}, {9, 1}, {3, 16}, {10, 11}, {6, 14}, {5, 16},
}

func TestAddIdentity(t *testing.T) {
	c := toyCurve(t)

	for k := int64(1); k <= 18; k++ {
		p := c.ScalarBaseMult(big.NewInt(k))
		if !c.Add(p, Infinity()).Equal(p) {
			t.Errorf("%s + O != %s", p, p)
		}
		if !c.Add(Infinity(), p).Equal(p) {
			t.Errorf("O + %s != %s", p, p)
		}
	}
	if !c.Add(Infinity(), Infinity()).IsInfinity() {
		t.Error("O + O must be O")
	}
}

func TestAddInverse(t *testing.T) {
	c := toyCurve(t)

	for k := int64(1); k <= 18; k++ {
		p := c.ScalarBaseMult(big.NewInt(k))
		if !c.Add(p, c.Negate(p)).IsInfinity() {
			t.Errorf("%s + (-%s) must be O", p, p)
		}
	}
}

func TestAddKnownMultiples(t *testing.T) {
	c := toyCurve(t)

	p := c.G
	for i, want := range toyMultiples {
		if p.X.Int64() != want[0] || p.Y.Int64() != want[1] {
			t.Fatalf("%d·G = %s, want (%d, %d)", i+1, p, want[0], want[1])
		}
		p = c.Add(p, c.G)
	}
	if !p.IsInfinity() {
		t.Errorf("19·G = %s, want the identity", p)
	}
}

func TestDouble(t *testing.T) {
	c := toyCurve(t)

	t.Run("matches repeated addition", func(t *testing.T) {
		for k := int64(1); k <= 18; k++ {
			p := c.ScalarBaseMult(big.NewInt(k))
			if !c.Double(p).Equal(c.ScalarMult(big.NewInt(2), p)) {
				t.Errorf("2·%s: Double and ScalarMult disagree", p)
			}
		}
	})

	t.Run("identity doubles to identity", func(t *testing.T) {
		if !c.Double(Infinity()).IsInfinity() {
			t.Error("2·O must be O")
		}
	})

	t.Run("y = 0 doubles to identity", func(t *testing.T) {
		// y² = x³ + 3x over F_11 has (0, 0) as a valid point of order 2.
		c2, err := NewCurve(
			big.NewInt(3), big.NewInt(0), big.NewInt(11),
			big.NewInt(0), big.NewInt(0), nil,
		)
		if err != nil {
			t.Fatalf("order-2 curve construction failed: %v", err)
		}
		if !c2.Double(c2.G).IsInfinity() {
			t.Error("doubling a point with y = 0 must yield the identity")
		}
	})
}

func TestScalarMult(t *testing.T) {
	c := toyCurve(t)

	t.Run("zero scalar", func(t *testing.T) {
		if !c.ScalarBaseMult(big.NewInt(0)).IsInfinity() {
			t.Error("0·G must be O")
		}
	})

	t.Run("matches addition chain", func(t *testing.T) {
		for k := int64(1); k <= 18; k++ {
			got := c.ScalarBaseMult(big.NewInt(k))
			if got.X.Int64() != toyMultiples[k-1][0] || got.Y.Int64() != toyMultiples[k-1][1] {
				t.Errorf("%d·G = %s, want (%d, %d)", k, got, toyMultiples[k-1][0], toyMultiples[k-1][1])
			}
		}
	})

	t.Run("reduces modulo the order", func(t *testing.T) {
		if !c.ScalarBaseMult(big.NewInt(19)).IsInfinity() {
			t.Error("n·G must be O")
		}
		if !c.ScalarBaseMult(big.NewInt(45)).Equal(c.ScalarBaseMult(big.NewInt(7))) {
			t.Error("45·G must equal 7·G on a curve of order 19")
		}
	})

	t.Run("negative scalar", func(t *testing.T) {
		// -k·P = k·(-P), with or without a known order.
		if !c.ScalarBaseMult(big.NewInt(-3)).Equal(c.Negate(c.ScalarBaseMult(big.NewInt(3)))) {
			t.Error("-3·G must equal -(3·G)")
		}

		noOrder, err := NewCurve(
			big.NewInt(2), big.NewInt(2), big.NewInt(17),
			big.NewInt(5), big.NewInt(1), nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if !noOrder.ScalarBaseMult(big.NewInt(-3)).Equal(noOrder.Negate(noOrder.ScalarBaseMult(big.NewInt(3)))) {
			t.Error("-3·G must equal -(3·G) without a known order")
		}
	})

	t.Run("scalar linearity", func(t *testing.T) {
		// j·(k·G) = (j·k mod n)·G
		for _, jk := range [][2]int64{{2, 3}, {4, 7}, {5, 9}, {18, 18}, {6, 19}} {
			j, k := big.NewInt(jk[0]), big.NewInt(jk[1])
			left := c.ScalarMult(j, c.ScalarBaseMult(k))
			jkModN := new(big.Int).Mod(new(big.Int).Mul(j, k), c.N)
			right := c.ScalarBaseMult(jkModN)
			if !left.Equal(right) {
				t.Errorf("%d·(%d·G) = %s, want %s", jk[0], jk[1], left, right)
			}
		}
	})
}

func TestNegate(t *testing.T) {
	c := toyCurve(t)

	if !c.Negate(Infinity()).IsInfinity() {
		t.Error("-O must be O")
	}
	neg := c.Negate(c.G)
	if neg.X.Int64() != 5 || neg.Y.Int64() != 16 {
		t.Errorf("-G = %s, want (5, 16)", neg)
	}
	if !c.Negate(neg).Equal(c.G) {
		t.Error("double negation must restore the point")
	}
}

// TestAgainstDecredSecp256k1 cross-checks the generic engine against the
// optimized decred implementation on secp256k1.
func TestAgainstDecredSecp256k1(t *testing.T) {
	c := Secp256k1()
	oracle := secp256k1.S256()

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(0xdeadbeef),
		new(big.Int).Lsh(big.NewInt(1), 200),
		new(big.Int).Sub(c.N, big.NewInt(1)),
	}

	t.Run("scalar base mult", func(t *testing.T) {
		for _, k := range scalars {
			wantX, wantY := oracle.ScalarBaseMult(k.Bytes())
			got := c.ScalarBaseMult(k)
			if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
				t.Errorf("ScalarBaseMult(%s) disagrees with decred", k)
			}
		}
	})

	t.Run("scalar mult", func(t *testing.T) {
		p := c.ScalarBaseMult(big.NewInt(12345))
		k := big.NewInt(67891)
		wantX, wantY := oracle.ScalarMult(p.X, p.Y, k.Bytes())
		got := c.ScalarMult(k, p)
		if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Error("ScalarMult disagrees with decred")
		}
	})

	t.Run("addition and doubling", func(t *testing.T) {
		p := c.ScalarBaseMult(big.NewInt(7))
		q := c.ScalarBaseMult(big.NewInt(11))

		wantX, wantY := oracle.Add(p.X, p.Y, q.X, q.Y)
		if got := c.Add(p, q); got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Error("Add disagrees with decred")
		}

		wantX, wantY = oracle.Double(p.X, p.Y)
		if got := c.Double(p); got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Error("Double disagrees with decred")
		}
	})
}
