package group

import (
	"crypto/sha512"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/luxfi/vss/pkg/field"
)

// secp256k1Order is n, the order of the secp256k1 base point. Scalars
// handed to a Secp256k1Group's Element.ScalarMult must come from a
// field.Field built over this modulus — Secp256k1ScalarField returns one.
var secp256k1Order = []byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
}

// Secp256k1ScalarField returns the prime field of exponents for
// Secp256k1Group — the Feldman/Pedersen polynomial coefficients must be
// drawn from this field for commitments to line up with shares.
func Secp256k1ScalarField() *field.PrimeField {
	return field.NewPrimeField(secp256k1Order)
}

// Secp256k1Group realizes the Group capability contract over
// github.com/decred/dcrd/dcrec/secp256k1/v4, the curve library the teacher's
// threshold-signing protocols (and, indirectly, the rest of the retrieved
// corpus) already depend on.
type Secp256k1Group struct{}

// NewSecp256k1Group returns the standard secp256k1 group.
func NewSecp256k1Group() Secp256k1Group { return Secp256k1Group{} }

func (Secp256k1Group) Identity() Element {
	return &secp256k1Element{point: new(secp256k1.JacobianPoint)}
}

func (Secp256k1Group) Generator() Element {
	var g secp256k1.JacobianPoint
	one := new(secp256k1.ModNScalar).SetInt(1)
	secp256k1.ScalarBaseMultNonConst(one, &g)
	g.ToAffine()
	return &secp256k1Element{point: &g}
}

func (Secp256k1Group) ElementSize() int { return 33 }

func (Secp256k1Group) ElementFromBytes(b []byte) (Element, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return &secp256k1Element{point: new(secp256k1.JacobianPoint)}, nil
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("group: parsing secp256k1 point: %w", err)
	}
	var p secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	return &secp256k1Element{point: &p}, nil
}

// HashToElement derives a group element deterministically from a domain
// separator and message via try-and-increment over SHA-512, the same
// technique used throughout the corpus for Pedersen's second generator:
// absorb a counter until the resulting x-coordinate candidate decompresses
// to a valid curve point. It never reveals log_g(h) because no discrete log
// computation takes place — h is derived directly as a point, not as g^x
// for a known x.
func (g Secp256k1Group) HashToElement(domainSeparator, msg []byte) Element {
	for counter := uint32(0); ; counter++ {
		h := sha512.New()
		h.Write(domainSeparator)
		h.Write(msg)
		h.Write([]byte{byte(counter >> 24), byte(counter >> 16), byte(counter >> 8), byte(counter)})
		digest := h.Sum(nil)

		candidate := append([]byte{0x02}, digest[:32]...)
		if el, err := g.ElementFromBytes(candidate); err == nil {
			if !el.IsIdentity() {
				return el
			}
		}
	}
}

type secp256k1Element struct {
	point *secp256k1.JacobianPoint
}

func (e *secp256k1Element) Add(other Element) Element {
	o := mustSecp256k1(other)
	var aAffine, bAffine secp256k1.JacobianPoint
	aAffine.Set(e.point)
	bAffine.Set(o.point)
	aAffine.ToAffine()
	bAffine.ToAffine()
	var out secp256k1.JacobianPoint
	secp256k1.AddNonConst(&aAffine, &bAffine, &out)
	out.ToAffine()
	return &secp256k1Element{point: &out}
}

func (e *secp256k1Element) ScalarMult(s field.Scalar) Element {
	k := scalarToModN(s)
	var affine secp256k1.JacobianPoint
	affine.Set(e.point)
	affine.ToAffine()
	var out secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, &affine, &out)
	out.ToAffine()
	return &secp256k1Element{point: &out}
}

func (e *secp256k1Element) IsIdentity() bool {
	var affine secp256k1.JacobianPoint
	affine.Set(e.point)
	affine.ToAffine()
	return (affine.X.IsZero() && affine.Y.IsZero()) || affine.Z.IsZero()
}

func (e *secp256k1Element) Equal(other Element) bool {
	o, ok := other.(*secp256k1Element)
	if !ok {
		return false
	}
	var a, b secp256k1.JacobianPoint
	a.Set(e.point)
	b.Set(o.point)
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y) && a.Z.Equals(&b.Z)
}

func (e *secp256k1Element) Bytes() []byte {
	if e.IsIdentity() {
		return []byte{0x00}
	}
	var affine secp256k1.JacobianPoint
	affine.Set(e.point)
	affine.ToAffine()
	pub := secp256k1.NewPublicKey(&affine.X, &affine.Y)
	return pub.SerializeCompressed()
}

func mustSecp256k1(e Element) *secp256k1Element {
	s, ok := e.(*secp256k1Element)
	if !ok {
		panic("group: element is not a Secp256k1Group element")
	}
	return s
}

// scalarToModN bridges a field.Scalar (any Field whose modulus matches the
// curve order) to the curve library's own constant-time scalar type.
func scalarToModN(s field.Scalar) *secp256k1.ModNScalar {
	var k secp256k1.ModNScalar
	k.SetByteSlice(s.Bytes())
	return &k
}
