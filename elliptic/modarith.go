package elliptic

import "github.com/cronokirby/safenum"

// ModArith is the curve-aware modular arithmetic layer: every public
// method returns a value fully reduced into [0, P). It is a thin adapter
// over safenum's constant-time Nat/Modulus operations plus, for 256-bit
// fields, the curve's dedicated fast reduction.
type ModArith struct {
	g *Group
}

// Mul computes a*b mod P.
func (m ModArith) Mul(a, b *safenum.Nat) *safenum.Nat {
	if m.g.Bits == 256 && m.g.FastModP != nil {
		return m.mulFast(a, b)
	}
	return new(safenum.Nat).ModMul(a, b, m.g.P)
}

// Sqr computes a*a mod P.
func (m ModArith) Sqr(a *safenum.Nat) *safenum.Nat {
	return m.Mul(a, a)
}

// Add computes a+b mod P.
func (m ModArith) Add(a, b *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModAdd(a, b, m.g.P)
}

// Sub computes a-b mod P.
func (m ModArith) Sub(a, b *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModSub(a, b, m.g.P)
}

// Inverse computes a^-1 mod P. Used only by Group.Normalise,
// Group.NormaliseMany and Group.NormaliseMxz, once per call, never on a
// loop's hot path.
func (m ModArith) Inverse(a *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModInverse(a, m.g.P)
}

// Reduce brings an already-bounded value into [0, P) by delegating to
// safenum, whose modular reduction is already just a few conditional
// add/subtract-P steps for a value this size.
func (m ModArith) Reduce(n *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModAdd(n, new(safenum.Nat).SetUint64(0), m.g.P)
}

// mulFast multiplies two field elements using the curve's dedicated
// fast-reduction routine. safenum's widening Mul produces the double-width
// product (capped at twice the field width, never silently truncated);
// FastModP then reduces it with the curve-specific short sum instead of a
// generic division.
func (m ModArith) mulFast(a, b *safenum.Nat) *safenum.Nat {
	wide := new(safenum.Nat).Mul(a, b, 2*m.g.Bits)
	return m.g.FastModP(wide)
}
