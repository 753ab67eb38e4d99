package elliptic

import (
	"io"

	"github.com/cronokirby/safenum"
)

// GenerateKey draws a fresh private scalar and the corresponding public
// point. For ShortWeierstrass groups it rejection-samples a scalar
// in [1, N), retrying up to 10 times; for MontgomeryForm groups it uses
// the x25519-style clamp (draw bytes, set bit g.Bits-1 as the top bit,
// clear the low three bits); every clamped value is a valid scalar, so it
// redraws (up to 10 times) only when a draw is all zero bytes.
func (g *Group) GenerateKey(rand io.Reader) (*Keypair, error) {
	src := newRandomSource(rand)

	var d *safenum.Nat
	switch g.Form {
	case ShortWeierstrass:
		var err error
		d, err = genWeierstrassScalar(g, src)
		if err != nil {
			return nil, err
		}
	case MontgomeryForm:
		var err error
		d, err = genClampedScalar(g, src)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errOp("GenerateKey", Invalid)
	}

	q, err := g.Mul(d, nil, true, src)
	if err != nil {
		return nil, err
	}
	if g.Form == ShortWeierstrass {
		g.Normalise(q)
	}

	if err := g.CheckPublicKey(q); err != nil {
		return nil, err
	}

	return &Keypair{D: d, Q: q}, nil
}

// clampTopByte applies the x25519-style clamp's high end: it sets bit
// (bits-1) of the big-endian buffer buf, clears every bit above it within
// that same byte, and zeroes every more-significant byte entirely. This
// fixes the scalar's bit-length at exactly bits, with the top bit always
// set (RFC 7748 §5's "set the highest bit" step).
func clampTopByte(buf []byte, bits int) {
	pos := bits - 1
	byteIdx := len(buf) - 1 - pos/8
	bitInByte := uint(pos % 8)

	buf[byteIdx] &^= 0xff << (bitInByte + 1)
	buf[byteIdx] |= 1 << bitInByte
	for i := 0; i < byteIdx; i++ {
		buf[i] = 0
	}
}

func genWeierstrassScalar(g *Group, src randomSource) (*safenum.Nat, error) {
	byteLen := g.byteLen()
	for i := 0; i < 10; i++ {
		buf, err := src.Bytes(byteLen)
		if err != nil {
			return nil, err
		}
		shift := byteLen*8 - g.Bits
		if shift > 0 {
			buf[0] >>= uint(shift)
		}
		d := new(safenum.Nat).SetBytes(buf)
		if d.EqZero() || d.CmpMod(g.N) >= 0 {
			continue
		}
		return d, nil
	}
	return nil, errOp("GenerateKey", RandomFailed)
}

func genClampedScalar(g *Group, src randomSource) (*safenum.Nat, error) {
	byteLen := g.byteLen()
	for i := 0; i < 10; i++ {
		buf, err := src.Bytes(byteLen)
		if err != nil {
			return nil, err
		}
		allZero := true
		for _, b := range buf {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			continue
		}

		// buf is big-endian (it feeds safenum.Nat.SetBytes directly), so
		// the "low three bits" RFC 7748 clears live in the last byte, not
		// the first.
		buf[byteLen-1] &^= 0x07
		clampTopByte(buf, g.Bits)

		return new(safenum.Nat).SetBytes(buf), nil
	}
	return nil, errOp("GenerateKey", RandomFailed)
}

// CheckPublicKey validates a public point. It rejects anything
// that isn't already affine (Z != 1). For ShortWeierstrass it additionally
// requires X, Y < P and that the point satisfies the curve equation
// (using the A = -3 fast path when applicable); for MontgomeryForm it
// checks that X fits in ceil(bits/8) bytes and that X is not one of the
// known low-order x-coordinates (lowOrderX25519Points); it does not
// otherwise check curve membership of an x-only point.
func (g *Group) CheckPublicKey(q *Point) error {
	if q.Z.Cmp(new(safenum.Nat).SetUint64(1)) != 0 {
		return errOp("CheckPublicKey", Invalid)
	}

	switch g.Form {
	case ShortWeierstrass:
		if q.X.CmpMod(g.P) >= 0 || q.Y.CmpMod(g.P) >= 0 {
			return errOp("CheckPublicKey", Invalid)
		}
		m := g.arith()
		lhs := m.Sqr(q.Y)

		var rhs *safenum.Nat
		if g.A.IsMinusThree() {
			x2 := m.Sqr(q.X)
			x3 := m.Mul(x2, q.X)
			threeX := m.Add(q.X, m.Add(q.X, q.X))
			rhs = m.Sub(x3, threeX)
		} else {
			x2 := m.Sqr(q.X)
			x3 := m.Mul(x2, q.X)
			ax := m.Mul(g.A.Value(), q.X)
			rhs = m.Add(x3, ax)
		}
		rhs = m.Add(rhs, g.B)

		if lhs.Cmp(rhs) != 0 {
			return errOp("CheckPublicKey", Invalid)
		}
		return nil
	case MontgomeryForm:
		if len(q.X.Bytes()) > g.byteLen() {
			return errOp("CheckPublicKey", Invalid)
		}
		if isLowOrderX25519(q.X) {
			return errOp("CheckPublicKey", Invalid)
		}
		return nil
	default:
		return errOp("CheckPublicKey", Invalid)
	}
}

// CheckPrivateKey validates a private scalar: for ShortWeierstrass,
// 1 <= d < N; for MontgomeryForm, bits 0..2 clear and bit-length exactly
// g.Bits, i.e. bit g.Bits-1 set and nothing above it (the clamp's
// invariant).
func (g *Group) CheckPrivateKey(d *safenum.Nat) error {
	switch g.Form {
	case ShortWeierstrass:
		if d.EqZero() || d.CmpMod(g.N) >= 0 {
			return errOp("CheckPrivateKey", Invalid)
		}
		return nil
	case MontgomeryForm:
		for i := uint(0); i < 3; i++ {
			if natBit(d, i) != 0 {
				return errOp("CheckPrivateKey", Invalid)
			}
		}
		if natBit(d, uint(g.Bits-1)) != 1 {
			return errOp("CheckPrivateKey", Invalid)
		}
		// natBit reads as 0 past d's announced length, so checking up to
		// that length is sufficient to confirm nothing above bit g.Bits-1
		// is set.
		for i := uint(g.Bits); i < uint(len(d.Bytes()))*8; i++ {
			if natBit(d, i) != 0 {
				return errOp("CheckPrivateKey", Invalid)
			}
		}
		return nil
	default:
		return errOp("CheckPrivateKey", Invalid)
	}
}

// lowOrderX25519Points holds the x-coordinates of Curve25519 points of
// order dividing 8 (RFC 7748 §6.1's rejection guidance): 0, 1, the two
// points of order 4 and order 8, and p-1, p, p+1. A point with one of
// these x-coordinates cannot contribute to a secure shared secret, so
// CheckPublicKey rejects it instead of silently accepting a degenerate
// key agreement.
var lowOrderX25519Points = []string{
	"0",
	"1",
	"325606250916557431795983626356110631294008115727848805560023387167927233504",
	"39382357235489614581723060781553021112529911719440698176882885853963445705823",
	"57896044618658097711785492504343953926634992332820282019728792003956564819948",
	"57896044618658097711785492504343953926634992332820282019728792003956564819949",
	"57896044618658097711785492504343953926634992332820282019728792003956564819950",
}

func isLowOrderX25519(x *safenum.Nat) bool {
	for _, s := range lowOrderX25519Points {
		v, ok := fromString(s, 10)
		if ok && x.Cmp(v) == 0 {
			return true
		}
	}
	return false
}
