// Package field defines the capability contract that the polynomial engine
// and the VSS schemes require of a scalar field, plus a constant-time
// realization over arbitrary primes and a Curve25519 scalar-ring wrapper.
//
// The core of this module (pkg/polynomial, pkg/vss) never imports a concrete
// curve or big-integer library directly: it is written entirely against
// Scalar and Field below, the way the teacher's protocol rounds are written
// against curve.Scalar rather than against secp256k1 or saferith directly.
package field

import "io"

// Scalar is an element of a finite commutative ring with the operations the
// polynomial engine and the VSS schemes need. Implementations must make
// Equal, arithmetic, and Invert run in time independent of the value of the
// receiver or argument.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	// Invert returns the multiplicative inverse. It errors only when the
	// receiver is zero.
	Invert() (Scalar, error)
	IsZero() bool
	// Equal runs in constant time with respect to both operands.
	Equal(Scalar) bool
	Bytes() []byte
}

// Field mints and parses Scalars and is the RNG/serialization capability
// named in spec §6.
type Field interface {
	Zero() Scalar
	One() Scalar
	// ScalarSize is the canonical fixed encoded width of a Scalar, in bytes.
	ScalarSize() int
	// RandomScalar samples uniformly from the field using rng.
	RandomScalar(rng io.Reader) (Scalar, error)
	// ScalarFromBytes parses the canonical fixed-length encoding.
	ScalarFromBytes(b []byte) (Scalar, error)
	// ScalarFromWideBytes reduces an oversized byte string (as produced by an
	// XOF) into a Scalar. Used by party.RandomGenerator.
	ScalarFromWideBytes(b []byte) Scalar
	// ScalarFromUint64 lifts a small integer, used by SequentialGenerator
	// and by tests.
	ScalarFromUint64(x uint64) Scalar
}
