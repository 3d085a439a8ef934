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

// VerifierSet is the Feldman commitment sequence V_i = g^{c_i}, i in
// [0, t) (spec §3, "VerifierSet (Feldman)").
type VerifierSet struct {
	Generator   group.Element
	Commitments []group.Element
}

// FeldmanSplit implements spec §4.4's Split: a Shamir split that retains the
// polynomial's coefficients long enough to commit to them before zeroizing.
// generator may be nil, in which case grp.Generator() is used.
func FeldmanSplit(f field.Field, grp group.Group, threshold, limit int, secret field.Scalar, rng io.Reader, gen party.Generator, generator group.Element) (share.Set, *VerifierSet, error) {
	if err := validateThresholdLimit(threshold, limit); err != nil {
		return nil, nil, newSplitError(SplitValidating, "vss.FeldmanSplit", errs.InvalidParameters, err)
	}
	if gen == nil {
		var err error
		gen, err = party.DefaultSequentialGenerator(f, f.ScalarSize(), limit)
		if err != nil {
			return nil, nil, newSplitError(SplitValidating, "vss.FeldmanSplit", errs.InvalidParameters, err)
		}
	}
	if generator == nil {
		generator = grp.Generator()
	}

	poly, err := polynomial.NewRandomPolynomial(f, secret, threshold, rng)
	if err != nil {
		return nil, nil, newSplitError(SplitPolynomialReady, "vss.FeldmanSplit", errs.InvalidParameters, err)
	}
	defer poly.Zeroize()

	commitments := make([]group.Element, threshold)
	for i := 0; i < threshold; i++ {
		commitments[i] = generator.ScalarMult(poly.Coefficient(i))
	}

	shares, err := evaluateAtGeneratedIdentifiers(f, poly, limit, gen)
	if err != nil {
		return nil, nil, err
	}

	return shares, &VerifierSet{Generator: generator, Commitments: commitments}, nil
}

// VerifyShare implements spec §4.4's verify: compute both sides fully (acc
// by Horner's rule in the exponent) before the final constant-time
// comparison, so a mismatch is signaled only after both sides are
// completely assembled (spec §7, "verification failure is signaled after
// both sides are fully computed").
func (vs *VerifierSet) VerifyShare(x, y field.Scalar) (bool, error) {
	if len(vs.Commitments) == 0 {
		return false, errs.New("VerifierSet.VerifyShare", errs.InvalidVerifierSet, nil)
	}
	lhs := vs.Generator.ScalarMult(y)
	rhs := hornerInExponent(vs.Commitments, x)
	return lhs.Equal(rhs), nil
}

// hornerInExponent computes acc = commitments[t-1]; for i from t-2 down to
// 0: acc = acc^x * commitments[i], written additively as
// acc = commitments[i] + acc.ScalarMult(x) (spec §4.4, "Verify share").
func hornerInExponent(commitments []group.Element, x field.Scalar) group.Element {
	acc := commitments[len(commitments)-1]
	for i := len(commitments) - 2; i >= 0; i-- {
		acc = acc.ScalarMult(x).Add(commitments[i])
	}
	return acc
}
