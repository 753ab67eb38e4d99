package elliptic

// x25519Group is the Curve25519 Montgomery-form description (RFC 7748):
// p = 2^255 - 19, B*y^2 = x^3 + 486662*x^2 + x, base point x = 9. This
// package only ever does x-only arithmetic on it (Gy is left nil, which is
// how a Group's Form is inferred to be Montgomery), so B itself is never
// read. Registered so Ladder is exercised end-to-end rather than left as
// a disabled code path.
var x25519Group = buildX25519()

func buildX25519() *Group {
	p, _ := modulusFromString("57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)
	// The order of the prime-order subgroup generated by the base point
	// (RFC 7748 §4.1); Curve25519's full group order is 8 times this.
	n, _ := modulusFromString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	gx, _ := fromString("9", 16)
	a24, _ := fromString("1db41", 16) // 121665 = (486662 - 2) / 4

	return &Group{
		Name:    "X25519",
		Form:    MontgomeryForm,
		P:       p,
		N:       n,
		Gx:      gx,
		Gy:      nil,
		MontA24: a24,
		Bits:    255,
	}
}
