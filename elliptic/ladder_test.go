package elliptic

import (
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"
)

func TestLadderIdentity(t *testing.T) {
	g := x25519Group
	src := newRandomSource(testRandReader{seed: 11})

	x, err := g.mulLadder(g.Gx, new(safenum.Nat).SetUint64(1), g.Bits+1, false, src)
	require.NoError(t, err)
	require.Zero(t, x.Cmp(g.Gx))
}

func TestLadderMatchesDoubleAddMxz(t *testing.T) {
	g := x25519Group
	src := newRandomSource(testRandReader{seed: 12})

	ladderX, err := g.mulLadder(g.Gx, new(safenum.Nat).SetUint64(2), g.Bits+1, false, src)
	require.NoError(t, err)

	p := (&MxzPoint{}).SetX(g.Gx)
	q := (&MxzPoint{}).SetX(g.Gx)
	var r, s MxzPoint
	g.doubleAddMxz(&r, &s, p, q, g.Gx)
	g.NormaliseMxz(&r)

	require.Zero(t, ladderX.Cmp(r.X))
}

func TestLadderECDHAgreement(t *testing.T) {
	g := x25519Group
	srcA := newRandomSource(testRandReader{seed: 13})
	srcB := newRandomSource(testRandReader{seed: 17})

	a, err := genClampedScalar(g, srcA)
	require.NoError(t, err)
	b, err := genClampedScalar(g, srcB)
	require.NoError(t, err)

	bG, err := g.mulLadder(g.Gx, b, g.Bits+1, false, srcA)
	require.NoError(t, err)
	aG, err := g.mulLadder(g.Gx, a, g.Bits+1, false, srcB)
	require.NoError(t, err)

	abG, err := g.mulLadder(bG, a, g.Bits+1, false, srcA)
	require.NoError(t, err)
	baG, err := g.mulLadder(aG, b, g.Bits+1, false, srcB)
	require.NoError(t, err)

	require.Zero(t, abG.Cmp(baG))
}

func TestCswapMxzIsItsOwnInverse(t *testing.T) {
	a := (&MxzPoint{}).SetX(new(safenum.Nat).SetUint64(3))
	b := (&MxzPoint{}).SetX(new(safenum.Nat).SetUint64(5))
	origA, origB := new(safenum.Nat).SetNat(a.X), new(safenum.Nat).SetNat(b.X)

	cswapMxz(1, a, b)
	require.Zero(t, a.X.Cmp(origB))
	require.Zero(t, b.X.Cmp(origA))

	cswapMxz(1, a, b)
	require.Zero(t, a.X.Cmp(origA))
	require.Zero(t, b.X.Cmp(origB))

	cswapMxz(0, a, b)
	require.Zero(t, a.X.Cmp(origA))
	require.Zero(t, b.X.Cmp(origB))
}
