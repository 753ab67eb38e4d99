package elliptic

import "github.com/cronokirby/safenum"

// mulLadder implements the constant-time Montgomery ladder (Montgomery,
// 1987): starting from R = infinity and RP = P, it scans the bits of m
// from most to least significant, conditionally swapping (R, RP) on each
// bit before and after a combined double-and-add step. The swaps and the
// step itself never branch on a bit of m.
func (g *Group) mulLadder(px *safenum.Nat, m *safenum.Nat, mBits int, rnd bool, src randomSource) (*safenum.Nat, error) {
	r := NewMxzPoint()
	r.X.SetUint64(1)
	r.Z.SetUint64(0)

	rp := (&MxzPoint{}).SetX(px)
	if rnd {
		if err := g.RandomiseMxz(rp, src); err != nil {
			return nil, err
		}
	}

	pxCopy := new(safenum.Nat).SetNat(px)

	swap := 0
	for i := mBits - 1; i >= 0; i-- {
		bit := natBit(m, uint(i))
		curSwap := bit ^ swap
		cswapMxz(curSwap, r, rp)

		var r2, rp2 MxzPoint
		g.doubleAddMxz(&r2, &rp2, r, rp, pxCopy)
		*r, *rp = r2, rp2

		swap = bit
	}
	cswapMxz(swap, r, rp)

	g.NormaliseMxz(r)
	return r.X, nil
}
