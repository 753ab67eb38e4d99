package elliptic

import (
	"github.com/cronokirby/safenum"
	"golang.org/x/crypto/cryptobyte"
)

// byteLen returns ceil(bits/8), the fixed field-element width used by every
// wire encoding in this file.
func (g *Group) byteLen() int {
	return (g.Bits + 7) / 8
}

// WriteBinary implements SEC1 2.3.3's uncompressed point encoding: the
// point at infinity is the single byte 0x00; any other point is
// 0x04 || X || Y, each coordinate big-endian padded to byteLen() bytes. p
// must be affine (Z in {0, 1}); callers normalise first.
func (g *Group) WriteBinary(p *Point) ([]byte, error) {
	if p.Z.EqZero() {
		return []byte{0x00}, nil
	}
	if p.Z.Cmp(new(safenum.Nat).SetUint64(1)) != 0 {
		return nil, errOp("WriteBinary", BadInput)
	}

	n := g.byteLen()
	var b cryptobyte.Builder
	b.AddUint8(0x04)
	addFixedWidth(&b, p.X, n)
	addFixedWidth(&b, p.Y, n)
	return b.Bytes()
}

// addFixedWidth appends x as a big-endian value padded to exactly n bytes.
func addFixedWidth(b *cryptobyte.Builder, x *safenum.Nat, n int) {
	raw := x.Bytes()
	b.AddBytes(make([]byte, n-len(raw)))
	b.AddBytes(raw)
}

// ReadBinary decodes a SEC1-uncompressed point: a single 0x00 byte decodes to
// the point at infinity; 0x04 followed by 2*byteLen() bytes decodes to an
// affine point. A leading 0x02 or 0x03 is a point-compression form, which
// this package does not support (FeatureUnavailable); any other leading
// byte, any other length, or a coordinate not below P is BadInput.
func (g *Group) ReadBinary(data []byte) (*Point, error) {
	s := cryptobyte.String(data)
	var tag uint8
	if !s.ReadUint8(&tag) {
		return nil, errOp("ReadBinary", BadInput)
	}

	if tag == 0x00 {
		if len(s) != 0 {
			return nil, errOp("ReadBinary", BadInput)
		}
		return NewPoint().SetInfinity(), nil
	}

	if tag == 0x02 || tag == 0x03 {
		return nil, errOp("ReadBinary", FeatureUnavailable)
	}
	if tag != 0x04 {
		return nil, errOp("ReadBinary", BadInput)
	}

	n := g.byteLen()
	var xb, yb []byte
	if !s.ReadBytes(&xb, n) || !s.ReadBytes(&yb, n) || len(s) != 0 {
		return nil, errOp("ReadBinary", BadInput)
	}

	x := new(safenum.Nat).SetBytes(xb)
	y := new(safenum.Nat).SetBytes(yb)
	if x.CmpMod(g.P) >= 0 || y.CmpMod(g.P) >= 0 {
		return nil, errOp("ReadBinary", BadInput)
	}
	return NewPoint().SetAffine(x, y), nil
}

// WriteECPoint wraps WriteBinary in the RFC 8422 §5.4 ECPoint framing:
// u8 length || opaque point[length]. length must fit a byte (every curve
// this package registers satisfies that).
func (g *Group) WriteECPoint(p *Point) ([]byte, error) {
	raw, err := g.WriteBinary(p)
	if err != nil {
		return nil, err
	}
	if len(raw) > 255 {
		return nil, errOp("WriteECPoint", NoSpace)
	}

	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(inner *cryptobyte.Builder) {
		inner.AddBytes(raw)
	})
	return b.Bytes()
}

// ReadECPoint strips the ECPoint length prefix and decodes the remainder
// with ReadBinary. It requires the whole input to be consumed.
func (g *Group) ReadECPoint(data []byte) (*Point, error) {
	s := cryptobyte.String(data)
	var raw []byte
	if !s.ReadUint8LengthPrefixed((*cryptobyte.String)(&raw)) || len(s) != 0 {
		return nil, errOp("ReadECPoint", BadInput)
	}
	if len(raw) == 0 || len(raw) > 255 {
		return nil, errOp("ReadECPoint", BadInput)
	}
	return g.ReadBinary(raw)
}

// ECParametersNamedCurve is the fixed byte RFC 8422 §5.4 uses to tag the
// "named curve" form of ECParameters; this package never emits any other
// curve-type encoding.
const ECParametersNamedCurve = 0x03

// WriteECParameters encodes ECParameters = 0x03 || NamedCurve(u16) for the
// given TLS curve id.
func WriteECParameters(tlsID uint16) []byte {
	var b cryptobyte.Builder
	b.AddUint8(ECParametersNamedCurve)
	b.AddUint16(tlsID)
	out, _ := b.Bytes()
	return out
}

// ReadECParameters decodes ECParameters, returning the TLS curve id. Any
// curve-type byte other than 0x03 ("named curve") is BadInput: this
// package only ever speaks the named-curve form.
func ReadECParameters(data []byte) (uint16, error) {
	s := cryptobyte.String(data)
	var tag uint8
	var tlsID uint16
	if !s.ReadUint8(&tag) || tag != ECParametersNamedCurve {
		return 0, errOp("ReadECParameters", BadInput)
	}
	if !s.ReadUint16(&tlsID) || len(s) != 0 {
		return 0, errOp("ReadECParameters", BadInput)
	}
	return tlsID, nil
}
