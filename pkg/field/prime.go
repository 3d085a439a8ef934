package field

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
)

// PrimeField is the field of integers modulo an odd prime, with arithmetic
// performed through saferith.Nat so that Add/Mul/Invert/Equal run in time
// independent of the operand values — the same constant-time Nat/Modulus
// primitives the teacher's threshold-signing rounds use for share and nonce
// arithmetic.
type PrimeField struct {
	modulus *saferith.Modulus
	// byteLen is the canonical fixed-width encoding length: ceil(bitlen/8).
	byteLen int
}

// NewPrimeField constructs a PrimeField modulo prime. prime must be an odd
// prime encoded big-endian with no leading zero byte requirement; the
// caller, not this constructor, is responsible for primality (the core never
// second-guesses the capability it is handed).
func NewPrimeField(prime []byte) *PrimeField {
	nat := new(saferith.Nat).SetBytes(prime)
	m := saferith.ModulusFromNat(nat)
	return &PrimeField{
		modulus: m,
		byteLen: (m.BitLen() + 7) / 8,
	}
}

func (f *PrimeField) Zero() Scalar {
	return &primeScalar{f: f, v: new(saferith.Nat).SetUint64(0)}
}

func (f *PrimeField) One() Scalar {
	return &primeScalar{f: f, v: new(saferith.Nat).SetUint64(1)}
}

func (f *PrimeField) ScalarSize() int { return f.byteLen }

func (f *PrimeField) RandomScalar(rng io.Reader) (Scalar, error) {
	buf := make([]byte, f.byteLen+16)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("field: sampling random scalar: %w", err)
	}
	return f.ScalarFromWideBytes(buf), nil
}

func (f *PrimeField) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != f.byteLen {
		return nil, fmt.Errorf("field: scalar must be %d bytes, got %d", f.byteLen, len(b))
	}
	nat := new(saferith.Nat).SetBytes(b)
	nat.Mod(nat, f.modulus)
	return &primeScalar{f: f, v: nat}, nil
}

func (f *PrimeField) ScalarFromWideBytes(b []byte) Scalar {
	nat := new(saferith.Nat).SetBytes(b)
	nat.Mod(nat, f.modulus)
	return &primeScalar{f: f, v: nat}
}

func (f *PrimeField) ScalarFromUint64(x uint64) Scalar {
	nat := new(saferith.Nat).SetUint64(x)
	nat.Mod(nat, f.modulus)
	return &primeScalar{f: f, v: nat}
}

type primeScalar struct {
	f *PrimeField
	v *saferith.Nat
}

func (s *primeScalar) field() *PrimeField { return s.f }

func (s *primeScalar) Add(other Scalar) Scalar {
	o := s.f.coerce(other)
	out := new(saferith.Nat).ModAdd(s.v, o.v, s.f.modulus)
	return &primeScalar{f: s.f, v: out}
}

func (s *primeScalar) Sub(other Scalar) Scalar {
	o := s.f.coerce(other)
	out := new(saferith.Nat).ModSub(s.v, o.v, s.f.modulus)
	return &primeScalar{f: s.f, v: out}
}

func (s *primeScalar) Mul(other Scalar) Scalar {
	o := s.f.coerce(other)
	out := new(saferith.Nat).ModMul(s.v, o.v, s.f.modulus)
	return &primeScalar{f: s.f, v: out}
}

func (s *primeScalar) Negate() Scalar {
	out := new(saferith.Nat).ModNeg(s.v, s.f.modulus)
	return &primeScalar{f: s.f, v: out}
}

func (s *primeScalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return nil, fmt.Errorf("field: cannot invert zero")
	}
	out := new(saferith.Nat).ModInverse(s.v, s.f.modulus)
	return &primeScalar{f: s.f, v: out}, nil
}

func (s *primeScalar) IsZero() bool {
	return s.v.EqZero() == 1
}

func (s *primeScalar) Equal(other Scalar) bool {
	o, ok := other.(*primeScalar)
	if !ok || o.f.modulus.Big().Cmp(s.f.modulus.Big()) != 0 {
		return false
	}
	return s.v.Eq(o.v) == 1
}

func (s *primeScalar) Bytes() []byte {
	buf := make([]byte, s.f.byteLen)
	return s.v.FillBytes(buf)
}

// Zeroize overwrites the scalar's backing limbs, satisfying
// internal/zeroize.Zeroer so polynomial coefficients can be wiped without
// pkg/polynomial importing saferith directly.
func (s *primeScalar) Zeroize() {
	s.v.SetUint64(0)
}

// coerce panics on a cross-field mix, the same "this should never occur for
// a correctly constructed core" posture the teacher's Fp.Add/Mul take when
// given elements of different fields (republicprotocol-tau's algebra.Fp).
func (f *PrimeField) coerce(s Scalar) *primeScalar {
	ps, ok := s.(*primeScalar)
	if !ok {
		panic("field: scalar is not a PrimeField element")
	}
	return ps
}
