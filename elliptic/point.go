// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE_go file.

package elliptic

import (
	"github.com/cronokirby/safenum"
)

// Point is a short Weierstrass curve point in Jacobian coordinates: the
// affine point is (X/Z^2, Y/Z^3), and Z = 0 encodes the point at infinity.
// A "normalised" Point has Z in {0, 1}.
//
// Points are created by the caller (the zero Point is not itself a valid
// representation of infinity until its fields are populated by SetInfinity
// or an assignment); this package never returns a Point with nil fields.
type Point struct {
	X, Y, Z *safenum.Nat
}

// NewPoint returns an uninitialised-at-infinity point, ready to receive an
// assignment.
func NewPoint() *Point {
	return &Point{X: new(safenum.Nat), Y: new(safenum.Nat), Z: new(safenum.Nat)}
}

// SetInfinity resets the point to the point at infinity.
func (p *Point) SetInfinity() *Point {
	p.X = new(safenum.Nat)
	p.Y = new(safenum.Nat)
	p.Z = new(safenum.Nat)
	return p
}

// SetAffine sets p to the affine point (x, y), i.e. Z = 1.
func (p *Point) SetAffine(x, y *safenum.Nat) *Point {
	p.X = new(safenum.Nat).SetNat(x)
	p.Y = new(safenum.Nat).SetNat(y)
	p.Z = new(safenum.Nat).SetUint64(1)
	return p
}

// Set copies q into p.
func (p *Point) Set(q *Point) *Point {
	p.X = new(safenum.Nat).SetNat(q.X)
	p.Y = new(safenum.Nat).SetNat(q.Y)
	p.Z = new(safenum.Nat).SetNat(q.Z)
	return p
}

// IsInfinity reports whether p is the point at infinity. This is a public,
// structural fact (Z == 0), not a secret, so branching on it is always
// safe even on otherwise constant-time paths.
func (p *Point) IsInfinity() bool {
	return p.Z.EqZero()
}

// Normalise brings p to Z in {0, 1}: if Z != 0, it computes Z^-1 and
// rescales X, Y. Cost: 1 inversion + 3 multiplications + 1 squaring.
func (g *Group) Normalise(p *Point) {
	if p.Z.EqZero() {
		return
	}
	m := g.arith()
	zInv := m.Inverse(p.Z)
	zInv2 := m.Sqr(zInv)
	zInv3 := m.Mul(zInv2, zInv)
	p.X = m.Mul(p.X, zInv2)
	p.Y = m.Mul(p.Y, zInv3)
	p.Z.SetUint64(1)
}

// NormaliseMany normalises every point in pts with a single field
// inversion (Montgomery's trick): 1I + (6t-3)M + 1S for t points. Every
// input Z must already be non-zero; callers (comb-table construction) only
// ever batch points that are guaranteed not to be infinity.
func (g *Group) NormaliseMany(pts []*Point) {
	n := len(pts)
	if n == 0 {
		return
	}
	m := g.arith()

	// prefix[i] = Z_0 * Z_1 * ... * Z_i
	prefix := make([]*safenum.Nat, n)
	prefix[0] = new(safenum.Nat).SetNat(pts[0].Z)
	for i := 1; i < n; i++ {
		prefix[i] = m.Mul(prefix[i-1], pts[i].Z)
	}

	inv := m.Inverse(prefix[n-1])

	for i := n - 1; i > 0; i-- {
		zInv := m.Mul(inv, prefix[i-1])
		inv = m.Mul(inv, pts[i].Z)

		zInv2 := m.Sqr(zInv)
		zInv3 := m.Mul(zInv2, zInv)
		pts[i].X = m.Mul(pts[i].X, zInv2)
		pts[i].Y = m.Mul(pts[i].Y, zInv3)
		pts[i].Z.SetUint64(1)
	}

	zInv2 := m.Sqr(inv)
	zInv3 := m.Mul(zInv2, inv)
	pts[0].X = m.Mul(pts[0].X, zInv2)
	pts[0].Y = m.Mul(pts[0].Y, zInv3)
	pts[0].Z.SetUint64(1)
}

// Double computes r = 2*p, in Jacobian coordinates, without normalising
// the result. It takes the "dbl-1998-cmo-2" formula's a=-3 shortcut
// (M = 3(X+Z^2)(X-Z^2)) when the group's A coefficient is tagged
// MinusThree, which every registered Weierstrass curve is; the general
// branch (M = 3X^2 + A*Z^4) exists so the formula is complete for a
// hypothetical future curve with a general coefficient.
func (g *Group) Double(r, p *Point) {
	m := g.arith()

	delta := m.Sqr(p.Z)
	gamma := m.Sqr(p.Y)

	var M *safenum.Nat
	if g.A.IsMinusThree() {
		alpha := m.Sub(p.X, delta)
		beta := m.Add(p.X, delta)
		M = m.Mul(alpha, beta)
		M = m.Add(M, m.Add(M, M))
	} else {
		x2 := m.Sqr(p.X)
		threeX2 := m.Add(x2, m.Add(x2, x2))
		delta2 := m.Sqr(delta)
		aZ4 := m.Mul(g.A.Value(), delta2)
		M = m.Add(threeX2, aZ4)
	}

	xy2 := m.Mul(p.X, gamma)
	S := m.Add(xy2, xy2)
	S = m.Add(S, S) // S = 4*X*Y^2

	X3 := m.Sub(m.Sqr(M), m.Add(S, S))

	gamma2 := m.Sqr(gamma)
	eightGamma2 := m.Add(gamma2, gamma2)
	eightGamma2 = m.Add(eightGamma2, eightGamma2)
	eightGamma2 = m.Add(eightGamma2, eightGamma2)

	Y3 := m.Sub(m.Mul(M, m.Sub(S, X3)), eightGamma2)

	ypz := m.Add(p.Y, p.Z)
	Z3 := m.Sub(m.Sqr(ypz), m.Add(gamma, delta))

	r.X, r.Y, r.Z = X3, Y3, Z3
}

// AddMixed computes r = p + q, where q is affine (q.Z represents 1):
// the "madd-2008-g" formula. It handles the three structural special
// cases explicitly (p = infinity, q = infinity, p = q, which delegates to
// Double) since those facts are public at every call site that matters
// (the comb loop never hits them, by construction of the odd-digit
// recoding; Group.MulAdd, the public non-secret entry point, can).
//
// If q is not normalised (q.Z neither 0 nor 1), AddMixed fails with
// BadInput instead of silently producing a wrong result.
func (g *Group) AddMixed(r, p, q *Point) error {
	if !(q.Z.EqZero() || q.Z.Cmp(new(safenum.Nat).SetUint64(1)) == 0) {
		return errOp("AddMixed", BadInput)
	}

	if p.IsInfinity() {
		r.Set(q)
		return nil
	}
	if q.IsInfinity() {
		r.Set(p)
		return nil
	}

	m := g.arith()

	z1z1 := m.Sqr(p.Z)
	u2 := m.Mul(q.X, z1z1)
	s2 := m.Mul(m.Mul(q.Y, p.Z), z1z1)

	if p.X.Cmp(u2) == 0 {
		if p.Y.Cmp(s2) == 0 {
			g.Double(r, p)
			return nil
		}
		r.SetInfinity()
		return nil
	}

	h := m.Sub(u2, p.X)
	hh := m.Sqr(h)
	hhh := m.Mul(h, hh)
	rr := m.Sub(s2, p.Y)

	v := m.Mul(p.X, hh)

	X3 := m.Sub(m.Sub(m.Sqr(rr), hhh), m.Add(v, v))
	Y3 := m.Sub(m.Mul(rr, m.Sub(v, X3)), m.Mul(p.Y, hhh))
	Z3 := m.Mul(p.Z, h)

	r.X, r.Y, r.Z = X3, Y3, Z3
	return nil
}

// SafeInvert replaces Q.Y with P - Q.Y iff inv == 1, in constant time with
// respect to inv. This is Coron's sign-flip countermeasure applied to the
// comb digit's sign bit.
func (g *Group) SafeInvert(q *Point, inv int) {
	m := g.arith()
	negY := m.Sub(new(safenum.Nat).SetUint64(0), q.Y)
	// Only flip when Y != 0; the point at infinity's Y is always 0 and
	// must stay that way regardless of inv.
	apply := inv * (1 - b2i(q.Y.EqZero()))
	q.Y.CondAssign(safenum.Choice(apply), negY)
}

// Randomise applies Coron's projective-coordinate-blinding DPA
// countermeasure: (X, Y, Z) <- (l^2 X, l^3 Y, l Z) for a random
// l in (1, P). It retries up to 10 times to draw a non-zero, non-unit l;
// RandomFailed is returned if every attempt lands out of range.
func (g *Group) Randomise(p *Point, rnd randomSource) error {
	m := g.arith()
	one := new(safenum.Nat).SetUint64(1)
	for i := 0; i < 10; i++ {
		l, err := rnd.Nat(g.P)
		if err != nil {
			return err
		}
		if l.EqZero() || l.Cmp(one) == 0 {
			continue
		}
		l2 := m.Sqr(l)
		l3 := m.Mul(l2, l)
		p.X = m.Mul(p.X, l2)
		p.Y = m.Mul(p.Y, l3)
		p.Z = m.Mul(p.Z, l)
		return nil
	}
	return errOp("Randomise", RandomFailed)
}

// b2i is a tiny, non-secret helper: it is only ever applied to publicly
// known structural facts (e.g. "is Y exactly zero"), never to a bit of the
// scalar itself.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
