package elliptic

import (
	"io"

	"github.com/cronokirby/safenum"
)

// randomSource draws uniformly random field/scalar elements from an
// underlying CRNG (the TLS layer's randomness source, io.Reader-shaped
// exactly like the standard library's crypto/rand.Reader). It is the
// package's only interface to external randomness.
type randomSource struct {
	reader io.Reader
}

// newRandomSource wraps an io.Reader (typically crypto/rand.Reader) for
// use by Randomise, RandomiseMxz and GenerateKey.
func newRandomSource(r io.Reader) randomSource {
	return randomSource{reader: r}
}

// Nat draws a uniformly random value in [0, m) by rejection sampling over
// byte strings the same length as m, discarding out-of-range draws. It
// makes at most 10 attempts and returns a RandomFailed error when all of
// them are out of range or the reader fails.
func (r randomSource) Nat(m *safenum.Modulus) (*safenum.Nat, error) {
	byteLen := (m.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	for i := 0; i < 10; i++ {
		if _, err := io.ReadFull(r.reader, buf); err != nil {
			return nil, errOp("Nat", RandomFailed)
		}
		n := new(safenum.Nat).SetBytes(buf)
		if n.CmpMod(m) < 0 {
			return n, nil
		}
	}
	return nil, errOp("Nat", RandomFailed)
}

// Bytes draws n uniformly random bytes directly from the CRNG.
func (r randomSource) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.reader, buf); err != nil {
		return nil, errOp("Bytes", RandomFailed)
	}
	return buf, nil
}
