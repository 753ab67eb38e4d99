package elliptic

import (
	"crypto/subtle"

	"github.com/cronokirby/ecgroup/internal/arena"
	"github.com/cronokirby/safenum"
)

// txiArena pools the per-iteration table-selection scratch point
// mulCombCore draws on every step of the main loop (d times per scalar
// multiply, so 52 to 77 times for the Weierstrass curves this package
// registers). This is the one hot-path allocation worth pooling through the
// scratch arena: it is drawn and dropped on every loop iteration and never
// escapes mulCombCore, unlike the accumulator r or the table itself, both
// of which outlive the loop.
var txiArena = arena.NewNatArena(func() *Point { return NewPoint() }, func(p *Point) { p.SetInfinity() })

// CombTable holds the 2^(w-1) precomputed points for a fixed base point
// and window width w, indexed so that selectComb's idx = (digit-1)/2
// (digit is the odd 7-bit magnitude produced by combFixed) reads directly
// off the array. Every stored point has Z = 1.
type CombTable struct {
	w, d int
	pts  []*Point
}

// precomputeComb builds T for base point p at window width w, following
// mbedtls's ecp_precompute_comb two-pass shape: seed the power-of-two
// slots by repeated doubling, batch-normalise, then fill every other
// slot by mixed addition and batch-normalise again.
//
// T[0] = P. For i a power of two less than tLen = 2^(w-1), T[i] is seeded
// as 2^d * T[i>>1] (so T[1] = 2^d*P, T[2] = 2^(2d)*P, ...: the doubling
// chains off the previous power of two, not off P each time). The fill
// pass then walks the same powers of two and, for each i, computes
// T[i+j] = T[j] + T[i] for every j in [0, i) using the pre-fill value of
// T[i] as the addend throughout (mbedtls's "update T[2^l] only after
// using it") — results are written into a side buffer and committed to T
// only once every j for that i has been computed, which sidesteps the
// in-place-overwrite-order hazard instead of replicating mbedtls's
// careful downward j loop. The j = 0 case recomputes T[i] itself as
// T[0] + T[i], folding the always-set digit-bit-0 baseline into every
// power-of-two slot.
//
// This produces, for idx in [0, tLen), T[idx] = sum over set bits k of
// idx of 2^(d*(k+1))*P, plus P itself — exactly the point selectComb needs
// for the forced-odd digit 2*idx+1.
func precomputeComb(g *Group, p *Point, w int) *CombTable {
	d := combDigitCount(g.Bits, w)
	tLen := 1 << (w - 1)

	T := make([]*Point, tLen)
	T[0] = NewPoint().Set(p)
	g.Normalise(T[0])

	var powIdx []int
	prev := 0
	for i := 1; i < tLen; i <<= 1 {
		cur := NewPoint().Set(T[prev])
		for it := 0; it < d; it++ {
			g.Double(cur, cur)
		}
		T[i] = cur
		powIdx = append(powIdx, i)
		prev = i
	}
	if len(powIdx) > 0 {
		toNorm := make([]*Point, len(powIdx))
		for n, i := range powIdx {
			toNorm[n] = T[i]
		}
		g.NormaliseMany(toNorm)
	}

	var rest []*Point
	for _, i := range powIdx {
		fill := make([]*Point, i)
		for j := 0; j < i; j++ {
			r := NewPoint()
			_ = g.AddMixed(r, T[j], T[i])
			fill[j] = r
		}
		for j := 0; j < i; j++ {
			T[i+j] = fill[j]
			rest = append(rest, fill[j])
		}
	}
	if len(rest) > 0 {
		g.NormaliseMany(rest)
	}

	return &CombTable{w: w, d: d, pts: T}
}

// combFixed recodes an odd scalar m (bit length <= w*d) into d+1 signed
// digits: for i < d, the classical comb digit x[i] = sum_{j<w}
// bit(m, i+d*j) * 2^j; x[d] = 0. A second sweep then forces every x[1..d]
// to be odd, carrying the parity fixup into the digit below and recording
// the resulting sign flip as bit 0x80 of that lower digit. This is the
// side-channel-safe fixed-window recoding technique.
func combFixed(m *safenum.Nat, w, d int) []byte {
	x := make([]byte, d+1)
	for i := 0; i < d; i++ {
		for j := 0; j < w; j++ {
			bit := natBit(m, uint(i+d*j))
			x[i] |= byte(bit << uint(j))
		}
	}

	var carry byte
	for i := 1; i <= d; i++ {
		cc := x[i] & carry
		x[i] ^= carry
		carry = cc

		adjust := byte(1) - (x[i] & 1)
		carry |= x[i] & (x[i-1] * adjust)
		x[i] ^= x[i-1] * adjust
		x[i-1] |= adjust << 7
	}
	return x
}

// selectComb reads every entry of tbl in constant time, conditionally
// assigning the one at idx = (c & 0x7f) >> 1, then applies the digit's
// sign bit via SafeInvert. Reading the whole table defeats cache-timing
// attacks on the table index.
func selectComb(g *Group, r *Point, tbl *CombTable, c byte) {
	idx := int((c & 0x7f) >> 1)
	r.X = new(safenum.Nat)
	r.Y = new(safenum.Nat)
	r.Z = new(safenum.Nat).SetUint64(1)

	for j, pt := range tbl.pts {
		choice := safenum.Choice(subtle.ConstantTimeEq(int32(j), int32(idx)))
		r.X.CondAssign(choice, pt.X)
		r.Y.CondAssign(choice, pt.Y)
	}
	g.SafeInvert(r, int(c>>7))
}

// mulCombCore drives the main scalar-multiply loop: starting from
// signed_T[x[d]], it doubles and adds in signed_T[x[i]] for i = d-1..0.
// The premise that AddMixed's special cases (P=O, Q=O, P=Q) never fire
// during the loop holds because every table entry is non-zero and the
// odd-digit recoding never selects the same affine point twice in a row.
func mulCombCore(g *Group, tbl *CombTable, digits []byte, rnd bool, src randomSource) (*Point, error) {
	r := NewPoint()
	selectComb(g, r, tbl, digits[tbl.d])
	r.Z.SetUint64(1)

	if rnd {
		if err := g.Randomise(r, src); err != nil {
			return nil, err
		}
	}

	mark := arena.NewMark(txiArena)
	defer mark.Release()

	for i := tbl.d - 1; i >= 0; i-- {
		g.Double(r, r)
		txi := mark.Alloc()
		selectComb(g, txi, tbl, digits[i])
		if err := g.AddMixed(r, r, txi); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MulComb computes k*base using the constant-time comb method.
// base == nil means "use the group's generator", in which case the
// lazily-built, process-cached generator table is used; otherwise a
// transient table is built for this call only. N must be odd, which it is
// for every registered Weierstrass curve.
func (g *Group) MulComb(k *safenum.Nat, base *Point, rnd bool, src randomSource) (*Point, error) {
	var tbl *CombTable
	if base == nil {
		tbl = g.generatorComb()
	} else {
		tbl = precomputeComb(g, base, combWidth(g.Bits))
	}

	isOdd := natBit(k, 0)
	negK := new(safenum.Nat).ModSub(new(safenum.Nat).SetUint64(0), k, g.N)
	kPrime := new(safenum.Nat).SetNat(k)
	kPrime.CondAssign(safenum.Choice(1-isOdd), negK)

	digits := combFixed(kPrime, tbl.w, tbl.d)

	r, err := mulCombCore(g, tbl, digits, rnd, src)
	if err != nil {
		return nil, err
	}
	g.SafeInvert(r, 1-isOdd)
	g.Normalise(r)
	return r, nil
}
