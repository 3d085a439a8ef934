// Package group defines the capability contract the Feldman and Pedersen
// commitment schemes require of a cyclic group, plus a secp256k1
// realization used by tests, scenarios and cmd/vss-cli.
package group

import "github.com/luxfi/vss/pkg/field"

// Element is a member of a cyclic group written multiplicatively in the
// spec's notation (g^c) and additively here, matching how the teacher's
// curve.Point is written (Add, ScalarMult via Act).
type Element interface {
	Add(Element) Element
	ScalarMult(field.Scalar) Element
	IsIdentity() bool
	Equal(Element) bool
	Bytes() []byte
}

// Group mints the fixed generator, parses encoded elements, and derives a
// second generator for Pedersen commitments (spec §6, "deterministic
// hash-to-curve-or-group-element helper").
type Group interface {
	Identity() Element
	Generator() Element
	ElementSize() int
	ElementFromBytes(b []byte) (Element, error)
	// HashToElement deterministically derives a group element from a
	// domain separator and message; used to derive Pedersen's h from g
	// without anyone learning log_g(h).
	HashToElement(domainSeparator, msg []byte) Element
}
