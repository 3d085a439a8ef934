package field

// curve25519Order is L, the order of the prime-order subgroup generated by
// the Curve25519/Ed25519 base point:
//
//	L = 2^252 + 27742317777372353535851937790883648493
//
// Curve25519's scalar ring is reduced modulo L for every scalar operation
// exposed to callers (signing, Diffie-Hellman, and — here — secret
// sharing); L itself is prime, which is all the polynomial engine needs:
// identifier differences are small nonzero integers, and small nonzero
// integers are invertible mod any prime. See spec §9, "Curve25519 scalar
// wrapping".
var curve25519Order = []byte{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xed,
}

// NewCurve25519Field returns a Field presenting the Curve25519 scalar ring
// (integers mod L) through the same Scalar contract as any other prime
// field. It is a thin, explicitly-named specialization of PrimeField rather
// than a distinct implementation: the arithmetic the core performs — add,
// sub, mul, invert, equal — is identical once the modulus is fixed to L, and
// keeping a single constant-time code path avoids a second place for a
// timing bug to hide.
func NewCurve25519Field() *PrimeField {
	return NewPrimeField(curve25519Order)
}
