package elliptic

import "github.com/cronokirby/safenum"

// natBit reads bit i (0 = least significant) of n. Bits past the
// announced length read as 0.
func natBit(n *safenum.Nat, i uint) int {
	return int(n.Bit(i))
}

// combMaxBits bounds the comb digit count: COMB_MAX_D = (MAX_BITS+1)/2,
// where MAX_BITS is the widest field this package registers (P-384).
const combMaxBits = 384

const combMaxD = (combMaxBits + 1) / 2

// combWidth picks the comb window width for a curve of the given bit
// size: w=5 for 384-bit curves, w=4 for 256-bit curves. The generator's
// cached table widens this by one more (see Group.generatorComb); w is
// always <= 7.
func combWidth(bits int) int {
	if bits >= 384 {
		return 5
	}
	return 4
}

// combDigitCount computes d = ceil(bits/w), bounded by combMaxD.
func combDigitCount(bits, w int) int {
	d := (bits + w - 1) / w
	if d > combMaxD {
		d = combMaxD
	}
	return d
}
