package elliptic

import "github.com/cronokirby/safenum"

// Keypair ties a private scalar to its public point: D is in
// [1, N) for ShortWeierstrass groups or a clamped x25519-style scalar for
// MontgomeryForm groups; Q = D*G, normalised affine.
type Keypair struct {
	D *safenum.Nat
	Q *Point
}
