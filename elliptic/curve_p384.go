package elliptic

// p384Group is the NIST P-384 (secp384r1, FIPS 186-3 D.2.4) curve
// description. P-384 is also an a = -3 curve, but this package has no
// dedicated fast-reduction routine for it; ModArith.Mul falls back to
// safenum's generic ModMul whenever FastModP is nil, so leaving it unset
// here is a correct, if slower, default.
var p384Group = buildP384()

func buildP384() *Group {
	p, _ := modulusFromString("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319", 10)
	n, _ := modulusFromString("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643", 10)
	b, _ := fromString("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef", 16)
	gx, _ := fromString("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7", 16)
	gy, _ := fromString("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f", 16)

	return &Group{
		Name: "P-384",
		Form: ShortWeierstrass,
		P:    p,
		N:    n,
		A:    MinusThree,
		B:    b,
		Gx:   gx,
		Gy:   gy,
		Bits: 384,
	}
}
