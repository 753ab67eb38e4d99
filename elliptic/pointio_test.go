package elliptic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadBinaryRoundTripAffine(t *testing.T) {
	g := p256Group
	gen := p256Generator()

	raw, err := g.WriteBinary(gen)
	require.NoError(t, err)
	require.Len(t, raw, 65)
	require.Equal(t, byte(0x04), raw[0])

	back, err := g.ReadBinary(raw)
	require.NoError(t, err)
	require.Zero(t, back.X.Cmp(gen.X))
	require.Zero(t, back.Y.Cmp(gen.Y))
}

func TestWriteReadBinaryInfinity(t *testing.T) {
	g := p256Group
	inf := NewPoint().SetInfinity()

	raw, err := g.WriteBinary(inf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, raw)

	back, err := g.ReadBinary(raw)
	require.NoError(t, err)
	require.True(t, back.IsInfinity())
}

func TestWriteBinaryP384Length(t *testing.T) {
	g := p384Group
	gen := NewPoint().SetAffine(g.Gx, g.Gy)

	raw, err := g.WriteBinary(gen)
	require.NoError(t, err)
	require.Len(t, raw, 97)
}

func TestReadBinaryRejectsCompressedForm(t *testing.T) {
	g := p256Group
	_, err := g.ReadBinary([]byte{0x02})
	require.ErrorIs(t, err, FeatureUnavailable)
}

func TestReadBinaryRejectsWrongLength(t *testing.T) {
	g := p256Group
	_, err := g.ReadBinary([]byte{0x04, 0x01, 0x02})
	require.ErrorIs(t, err, BadInput)
}

func TestECPointFramingRoundTrip(t *testing.T) {
	g := p256Group
	gen := p256Generator()

	raw, err := g.WriteECPoint(gen)
	require.NoError(t, err)
	require.Equal(t, byte(65), raw[0])

	back, err := g.ReadECPoint(raw)
	require.NoError(t, err)
	require.Zero(t, back.X.Cmp(gen.X))
	require.Zero(t, back.Y.Cmp(gen.Y))
}

func TestECParametersRoundTrip(t *testing.T) {
	raw := WriteECParameters(23)
	require.Equal(t, []byte{0x03, 0x00, 0x17}, raw)

	id, err := ReadECParameters(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(23), id)
}

func TestECParametersRejectsNonNamedCurveForm(t *testing.T) {
	_, err := ReadECParameters([]byte{0x01, 0x00, 0x17})
	require.ErrorIs(t, err, BadInput)
}

func TestCurveRegistryLookup(t *testing.T) {
	g, err := LookupByTLSID(23)
	require.NoError(t, err)
	require.Same(t, p256Group, g)

	_, err = LookupByTLSID(9999)
	require.ErrorIs(t, err, FeatureUnavailable)

	id, err := TLSID(p384Group)
	require.NoError(t, err)
	require.Equal(t, uint16(24), id)
}
