package elliptic

import (
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"
)

func TestModArithP256FastPathAgreesWithGeneric(t *testing.T) {
	g := p256Group
	fast := g.arith()

	generic := &Group{P: g.P, N: g.N, A: g.A, B: g.B, Gx: g.Gx, Gy: g.Gy, Bits: g.Bits}
	slow := generic.arith()

	inputs := []uint64{0, 1, 2, 3, 12345, 0xffffffff, 0xdeadbeef}
	for _, av := range inputs {
		for _, bv := range inputs {
			a := new(safenum.Nat).SetUint64(av)
			b := new(safenum.Nat).SetUint64(bv)
			require.Zero(t, fast.Mul(a, b).Cmp(slow.Mul(a, b)), "a=%d b=%d", av, bv)
		}
	}
}

func TestModArithSqrIsMulWithSelf(t *testing.T) {
	g := p384Group
	m := g.arith()
	a := new(safenum.Nat).SetUint64(123456789)
	require.Zero(t, m.Sqr(a).Cmp(m.Mul(a, a)))
}

func TestModArithAddSubRoundTrip(t *testing.T) {
	g := p384Group
	m := g.arith()
	a := new(safenum.Nat).SetUint64(7)
	b := new(safenum.Nat).SetUint64(19)
	sum := m.Add(a, b)
	back := m.Sub(sum, b)
	require.Zero(t, back.Cmp(a))
}

func TestModArithInverse(t *testing.T) {
	g := p256Group
	m := g.arith()
	a := new(safenum.Nat).SetUint64(5)
	inv := m.Inverse(a)
	require.Zero(t, m.Mul(a, inv).Cmp(new(safenum.Nat).SetUint64(1)))
}
