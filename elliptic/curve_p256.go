package elliptic

import (
	"github.com/cronokirby/safenum"
)

// p256FastModP implements FIPS 186-3 D.2.3's nine-term signed-sum
// reduction for the double-width product ModArith.mulFast produces. wide
// is split into sixteen 32-bit words c0 (least significant) .. c15 (most
// significant); the nine partial sums s1..s9 are each a 256-bit value
// built from a fixed subset of those words (zero-filled elsewhere), and
// the result is s1 + 2s2 + 2s3 + s4 + s5 - s6 - s7 - s8 - s9, reduced into
// [0, P) by safenum's own modular add/sub.
//
// This keeps every step of the sum on safenum's already-constant-time
// ModAdd/ModSub over the curve modulus, rather than hand-rolling carry
// propagation: the only place this routine departs from safenum's generic
// path is in how the double-width input is sliced into the nine partial
// sums the standard defines.
func p256FastModP(wide *safenum.Nat) *safenum.Nat {
	raw := wide.Bytes()
	var buf [64]byte
	copy(buf[64-len(raw):], raw)

	// word(i) returns the big-endian 4 bytes of c_i, i = 0 (LSB) .. 15 (MSB).
	word := func(i int) []byte {
		off := (15 - i) * 4
		return buf[off : off+4]
	}
	zero := make([]byte, 4)

	// build assembles a 256-bit big-endian value from eight word slots,
	// ordered most-significant word first, where a negative index means
	// "zero word here".
	build := func(idx ...int) *safenum.Nat {
		var out [32]byte
		for slot, i := range idx {
			var w []byte
			if i < 0 {
				w = zero
			} else {
				w = word(i)
			}
			copy(out[slot*4:slot*4+4], w)
		}
		return new(safenum.Nat).SetBytes(out[:])
	}

	s1 := build(7, 6, 5, 4, 3, 2, 1, 0)
	s2 := build(15, 14, 13, 12, 11, -1, -1, -1)
	s3 := build(-1, 15, 14, 13, 12, -1, -1, -1)
	s4 := build(15, 14, -1, -1, -1, 10, 9, 8)
	s5 := build(8, 13, 15, 14, 13, 11, 10, 9)
	s6 := build(10, 8, -1, -1, -1, 13, 12, 11)
	s7 := build(11, 9, -1, -1, 15, 14, 13, 12)
	s8 := build(12, -1, 10, 9, 8, 15, 14, 13)
	s9 := build(13, -1, 11, 10, 9, -1, 15, 14)

	p := p256Group.P
	r := new(safenum.Nat).ModAdd(s1, s2, p)
	r.ModAdd(r, s2, p)
	r.ModAdd(r, s3, p)
	r.ModAdd(r, s3, p)
	r.ModAdd(r, s4, p)
	r.ModAdd(r, s5, p)
	r.ModSub(r, s6, p)
	r.ModSub(r, s7, p)
	r.ModSub(r, s8, p)
	r.ModSub(r, s9, p)
	return r
}

// p256Group is the NIST P-256 (secp256r1, FIPS 186-3 D.2.3) curve
// description.
var p256Group = buildP256()

func buildP256() *Group {
	p, _ := modulusFromString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	n, _ := modulusFromString("115792089210356248762697446949407573529996955224135760342422259061068512044369", 10)
	b, _ := fromString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	gx, _ := fromString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	gy, _ := fromString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)

	return &Group{
		Name:     "P-256",
		Form:     ShortWeierstrass,
		P:        p,
		N:        n,
		A:        MinusThree,
		B:        b,
		Gx:       gx,
		Gy:       gy,
		Bits:     256,
		FastModP: p256FastModP,
	}
}
