package elliptic

import "github.com/cronokirby/safenum"

// Mul computes k*p (or k*G when p is nil) in constant time, dispatching to
// the comb multiplier for ShortWeierstrass groups and the Montgomery
// ladder for MontgomeryForm groups. rnd requests projective-coordinate
// blinding (Coron's countermeasure); callers operating on a secret scalar
// should always pass true. src supplies the randomness rnd consumes.
//
// Mul is safe to call with a secret k: it never branches on any bit of k,
// and every table/coordinate access it drives is constant-time in the
// scalar.
func (g *Group) Mul(k *safenum.Nat, p *Point, rnd bool, src randomSource) (*Point, error) {
	switch g.Form {
	case ShortWeierstrass:
		return g.MulComb(k, p, rnd, src)
	case MontgomeryForm:
		px := g.Gx
		if p != nil {
			px = p.X
		}
		x, err := g.mulLadder(px, k, g.Bits+1, rnd, src)
		if err != nil {
			return nil, err
		}
		return (&Point{X: x, Y: new(safenum.Nat), Z: new(safenum.Nat).SetUint64(1)}), nil
	default:
		return nil, errOp("Mul", Invalid)
	}
}

// MulAdd computes m*G + n*Q for a ShortWeierstrass group as two calls to
// Mul followed by one AddMixed; it has no special path for m or n equal
// to 1 or -1 (mod N). AddMixed branches on the points it is given, so
// MulAdd is only ever safe to invoke with public scalars, as in ECDSA
// signature verification, and must never be called with a secret scalar.
// MontgomeryForm groups don't support it: curve-form mismatch returns an
// Invalid error.
func (g *Group) MulAdd(m *safenum.Nat, n *safenum.Nat, q *Point, src randomSource) (*Point, error) {
	if g.Form != ShortWeierstrass {
		return nil, errOp("MulAdd", Invalid)
	}

	mg, err := g.Mul(m, nil, false, src)
	if err != nil {
		return nil, err
	}
	nq, err := g.Mul(n, q, false, src)
	if err != nil {
		return nil, err
	}

	r := NewPoint()
	g.Normalise(nq)
	if err := g.AddMixed(r, mg, nq); err != nil {
		return nil, err
	}
	g.Normalise(r)
	return r, nil
}
