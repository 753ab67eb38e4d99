package elliptic

import (
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"
)

func hexNat(t *testing.T, s string) *safenum.Nat {
	t.Helper()
	n, ok := fromString(s, 16)
	require.True(t, ok)
	return n
}

func TestMulCombP256Identity(t *testing.T) {
	g := p256Group
	src := newRandomSource(testRandReader{seed: 2})

	r, err := g.Mul(new(safenum.Nat).SetUint64(1), nil, false, src)
	require.NoError(t, err)
	require.Zero(t, r.X.Cmp(g.Gx))
	require.Zero(t, r.Y.Cmp(g.Gy))
}

func TestMulCombP256Doubling(t *testing.T) {
	g := p256Group
	src := newRandomSource(testRandReader{seed: 3})

	r, err := g.Mul(new(safenum.Nat).SetUint64(2), nil, false, src)
	require.NoError(t, err)

	wantX := hexNat(t, "7CF27B188D034F7E8A52380304B51AC3C08969E277F21B35A60B48FC47669978")
	wantY := hexNat(t, "07775510DB8ED040293D9AC69F7430DBBA7DADE63CE982299E04B79D227873D1")
	require.Zero(t, r.X.Cmp(wantX))
	require.Zero(t, r.Y.Cmp(wantY))
}

func TestMulCombP384Doubling(t *testing.T) {
	g := p384Group
	src := newRandomSource(testRandReader{seed: 4})

	doubled, err := g.Mul(new(safenum.Nat).SetUint64(2), nil, false, src)
	require.NoError(t, err)

	gen := NewPoint().SetAffine(new(safenum.Nat).SetNat(g.Gx), new(safenum.Nat).SetNat(g.Gy))
	var viaDouble Point
	g.Double(&viaDouble, gen)
	g.Normalise(&viaDouble)

	require.Zero(t, doubled.X.Cmp(viaDouble.X))
	require.Zero(t, doubled.Y.Cmp(viaDouble.Y))
}

func TestMulCombWithRandomisationMatchesWithout(t *testing.T) {
	g := p256Group
	k := new(safenum.Nat).SetUint64(12345)

	plain, err := g.Mul(k, nil, false, newRandomSource(testRandReader{seed: 5}))
	require.NoError(t, err)
	blinded, err := g.Mul(k, nil, true, newRandomSource(testRandReader{seed: 6}))
	require.NoError(t, err)

	require.Zero(t, plain.X.Cmp(blinded.X))
	require.Zero(t, plain.Y.Cmp(blinded.Y))
}

func TestMulCombAdditiveHomomorphism(t *testing.T) {
	g := p256Group
	src := newRandomSource(testRandReader{seed: 7})

	k1 := new(safenum.Nat).SetUint64(41)
	k2 := new(safenum.Nat).SetUint64(59)
	sum := new(safenum.Nat).ModAdd(k1, k2, g.N)

	p1, err := g.Mul(k1, nil, false, src)
	require.NoError(t, err)
	p2, err := g.Mul(k2, nil, false, src)
	require.NoError(t, err)
	pSum, err := g.Mul(sum, nil, false, src)
	require.NoError(t, err)

	var added Point
	require.NoError(t, g.AddMixed(&added, p1, p2))
	g.Normalise(&added)

	require.Zero(t, added.X.Cmp(pSum.X))
	require.Zero(t, added.Y.Cmp(pSum.Y))
}

func TestCombFixedRecodingProducesOddBoundedDigits(t *testing.T) {
	w, d := 4, 64
	m := new(safenum.Nat).SetUint64(0x0123456789abcdef | 1)

	digits := combFixed(m, w, d)
	require.Len(t, digits, d+1)

	for i := 1; i <= d; i++ {
		mag := digits[i] & 0x7f
		require.Equal(t, byte(1), mag&1, "digit %d magnitude %d must be odd", i, mag)
		require.Less(t, int(mag), 1<<uint(w))
	}
}

func TestCombFixedRoundTripThroughMulComb(t *testing.T) {
	g := p256Group
	src := newRandomSource(testRandReader{seed: 8})

	for _, kv := range []uint64{1, 3, 7, 9, 15} {
		k := new(safenum.Nat).SetUint64(kv)
		viaComb, err := g.Mul(k, nil, false, src)
		require.NoError(t, err)

		var viaRepeatedAdd Point
		viaRepeatedAdd.SetInfinity()
		gen := p256Generator()
		for i := uint64(0); i < kv; i++ {
			if viaRepeatedAdd.IsInfinity() {
				viaRepeatedAdd.Set(gen)
				continue
			}
			var next Point
			require.NoError(t, g.AddMixed(&next, &viaRepeatedAdd, gen))
			viaRepeatedAdd = next
		}
		g.Normalise(&viaRepeatedAdd)

		require.Zero(t, viaComb.X.Cmp(viaRepeatedAdd.X), "k=%d", kv)
		require.Zero(t, viaComb.Y.Cmp(viaRepeatedAdd.Y), "k=%d", kv)
	}
}
