// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE_go file.

// Package elliptic implements the constant-time group-arithmetic core used
// for ECDHE key agreement and ECDSA verification: scalar multiplication on
// short Weierstrass curves (P-256, P-384) via a comb-based multiplier, and
// on Curve25519 via a Montgomery ladder.
//
// This package operates, internally, on Jacobian coordinates for
// Weierstrass curves and on x/z projective coordinates for Montgomery
// curves. See the comments on Point and MxzPoint for the coordinate
// systems, and Group.Mul / Group.MulAdd for the public entry points.
package elliptic

import (
	"sync"

	"github.com/cronokirby/safenum"
)

// Form distinguishes the two curve shapes this package supports.
type Form int

const (
	// ShortWeierstrass curves use Jacobian coordinates and the comb
	// scalar multiplier.
	ShortWeierstrass Form = iota
	// MontgomeryForm curves use x/z coordinates and the ladder.
	MontgomeryForm
)

// Coeff represents the short Weierstrass "a" coefficient. Curves with
// a = -3 (every NIST prime curve) get a dedicated, faster doubling formula;
// Coeff makes that an explicit tag instead of overloading an "absent" big
// integer to mean it, which is what the C implementation this package's
// design is based on does.
type Coeff struct {
	minusThree bool
	value      *safenum.Nat
}

// MinusThree is the curve-coefficient tag for a = -3.
var MinusThree = Coeff{minusThree: true}

// CoeffValue tags an explicit, non -3 curve coefficient.
func CoeffValue(a *safenum.Nat) Coeff {
	return Coeff{value: a}
}

// IsMinusThree reports whether this coefficient is the -3 fast-path tag.
func (c Coeff) IsMinusThree() bool { return c.minusThree }

// Value returns the explicit coefficient value. It must not be called when
// IsMinusThree is true.
func (c Coeff) Value() *safenum.Nat { return c.value }

// Group is the immutable description of one curve: its field, its
// equation's coefficients, its base point, its subgroup order, and a
// curve-specific fast reduction routine. A Group is safe to share across
// goroutines for read; the only mutation that ever happens to one is the
// lazy, one-time construction of its cached generator comb table.
type Group struct {
	Name string
	Form Form

	P *safenum.Modulus
	N *safenum.Modulus

	// A is only meaningful for ShortWeierstrass curves.
	A Coeff
	// B is the short Weierstrass curve constant. Montgomery groups leave
	// it nil: this package only ever does x-only arithmetic on them and
	// never reads B there.
	B *safenum.Nat

	// Gx, Gy are the generator's affine coordinates. Gy is nil for
	// Montgomery curves: the form is inferred from its absence.
	Gx, Gy *safenum.Nat

	// MontA24 is (A-2)/4 mod P (RFC 7748's a24), the constant the
	// Montgomery ladder step needs; only set for MontgomeryForm groups.
	MontA24 *safenum.Nat

	Bits int

	// FastModP reduces a double-width value (as produced by a widening
	// multiply) into the range [0, P+eps). It is nil for curves without a
	// specialised routine, in which case ModArith.Mul uses safenum's
	// generic ModMul; see curve_p256.go and curve_p384.go.
	FastModP func(wide *safenum.Nat) *safenum.Nat

	combOnce sync.Once
	combTG   *CombTable
	combW    int
}

// arith returns the ModArith view of this group's field.
func (g *Group) arith() ModArith { return ModArith{g: g} }

// generatorComb returns (building it on first use) the comb table cached
// for this group's generator. The one-time build is guarded by a
// sync.Once rather than eagerly precomputed, since most callers only ever
// need the table for whichever curve they actually use.
func (g *Group) generatorComb() *CombTable {
	g.combOnce.Do(func() {
		w := combWidth(g.Bits) + 1
		if w > 7 {
			w = 7
		}
		gp := &Point{X: new(safenum.Nat).SetNat(g.Gx), Y: new(safenum.Nat).SetNat(g.Gy), Z: new(safenum.Nat).SetUint64(1)}
		g.combTG = precomputeComb(g, gp, w)
		g.combW = w
	})
	return g.combTG
}
