package vss

import (
	"io"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/party"
	"github.com/luxfi/vss/pkg/polynomial"
	"github.com/luxfi/vss/pkg/share"
)

// pedersenHDomainSeparator is the fixed domain separator used to derive the
// second Pedersen generator h from g when the caller supplies none (spec
// §4.5 step 1, "implementation-defined; must be documented and
// reproducible").
var pedersenHDomainSeparator = []byte("vss/pedersen/h")

// PedersenVerifierSet is the dual commitment sequence P_i = g^{c_i} * h^{c'_i}
// (spec §3, "VerifierSet (Pedersen)").
type PedersenVerifierSet struct {
	Generator   group.Element
	H           group.Element
	Commitments []group.Element
}

// PedersenResult is the split result bundle of spec §4.5 step 5, modeled as
// a plain immutable value rather than a lazily-evaluated record (spec §9,
// "Pedersen result bundle").
type PedersenResult struct {
	SecretShares        share.Set
	BlinderShares       share.Set
	Blinder             field.Scalar
	FeldmanVerifierSet  *VerifierSet
	PedersenVerifierSet *PedersenVerifierSet
}

// PedersenSplit implements spec §4.5's Split. generator/h may be nil; a nil
// h is derived deterministically from g via grp.HashToElement.
func PedersenSplit(f field.Field, grp group.Group, threshold, limit int, secret field.Scalar, rng io.Reader, gen party.Generator, generator, h group.Element) (*PedersenResult, error) {
	if err := validateThresholdLimit(threshold, limit); err != nil {
		return nil, newSplitError(SplitValidating, "vss.PedersenSplit", errs.InvalidParameters, err)
	}
	if gen == nil {
		var err error
		gen, err = party.DefaultSequentialGenerator(f, f.ScalarSize(), limit)
		if err != nil {
			return nil, newSplitError(SplitValidating, "vss.PedersenSplit", errs.InvalidParameters, err)
		}
	}
	if generator == nil {
		generator = grp.Generator()
	}
	if h == nil {
		h = grp.HashToElement(pedersenHDomainSeparator, generator.Bytes())
	}
	if h.Equal(generator) || h.IsIdentity() {
		return nil, newSplitError(SplitValidating, "vss.PedersenSplit", errs.InvalidParameters, nil)
	}

	blinderSeed, err := drawNonzeroScalar(f, rng)
	if err != nil {
		return nil, newSplitError(SplitPolynomialReady, "vss.PedersenSplit", errs.GeneratorExhausted, err)
	}

	secretPoly, err := polynomial.NewRandomPolynomial(f, secret, threshold, rng)
	if err != nil {
		return nil, newSplitError(SplitPolynomialReady, "vss.PedersenSplit", errs.InvalidParameters, err)
	}
	defer secretPoly.Zeroize()

	blinderPoly, err := polynomial.NewRandomPolynomial(f, blinderSeed, threshold, rng)
	if err != nil {
		return nil, newSplitError(SplitPolynomialReady, "vss.PedersenSplit", errs.InvalidParameters, err)
	}
	defer blinderPoly.Zeroize()

	feldmanCommitments := make([]group.Element, threshold)
	pedersenCommitments := make([]group.Element, threshold)
	for i := 0; i < threshold; i++ {
		gc := generator.ScalarMult(secretPoly.Coefficient(i))
		feldmanCommitments[i] = gc
		pedersenCommitments[i] = gc.Add(h.ScalarMult(blinderPoly.Coefficient(i)))
	}

	secretShares, err := evaluateAtGeneratedIdentifiers(f, secretPoly, limit, gen)
	if err != nil {
		return nil, err
	}
	// Blinder shares are evaluated at the same identifiers as the secret
	// shares (spec §4.5 step 3: "sᵢ = (xᵢ, P(xᵢ)) and s'ᵢ = (xᵢ, P'(xᵢ))").
	blinderShares := make(share.Set, limit)
	for i, s := range secretShares {
		blinderShares[i] = share.New(s.ID, blinderPoly.Evaluate(s.ID.Scalar()))
	}

	return &PedersenResult{
		SecretShares:  secretShares,
		BlinderShares: blinderShares,
		Blinder:       blinderSeed,
		FeldmanVerifierSet: &VerifierSet{
			Generator:   generator,
			Commitments: feldmanCommitments,
		},
		PedersenVerifierSet: &PedersenVerifierSet{
			Generator:   generator,
			H:           h,
			Commitments: pedersenCommitments,
		},
	}, nil
}

func drawNonzeroScalar(f field.Field, rng io.Reader) (field.Scalar, error) {
	const maxAttempts = 1 << 16
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := f.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		if !c.IsZero() {
			return c, nil
		}
	}
	return nil, errs.New("vss.drawNonzeroScalar", errs.GeneratorExhausted, nil)
}

// VerifyShare implements spec §4.5's "Verify Pedersen share": lhs = g^y *
// h^y'; rhs computed by Horner in the exponent over the dual commitments;
// both sides are fully assembled before the constant-time comparison.
func (vs *PedersenVerifierSet) VerifyShare(x, y, yPrime field.Scalar) (bool, error) {
	if len(vs.Commitments) == 0 {
		return false, errs.New("PedersenVerifierSet.VerifyShare", errs.InvalidVerifierSet, nil)
	}
	lhs := vs.Generator.ScalarMult(y).Add(vs.H.ScalarMult(yPrime))
	rhs := hornerInExponent(vs.Commitments, x)
	return lhs.Equal(rhs), nil
}
