package polynomial

import (
	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
)

// LagrangeBasis computes the i-th Lagrange basis polynomial of xs evaluated
// at the point at: the product over j != i of (at - xs[j]) / (xs[i] - xs[j]).
// Reconstruction (spec §4.1, combine_shares) evaluates this at the field
// zero; verifier-set group combination (spec §4.3's combine_shares_group)
// reuses the same basis values since they depend only on the identifiers
// involved, never on the shares' values.
func LagrangeBasis(f field.Field, xs []field.Scalar, i int, at field.Scalar) (field.Scalar, error) {
	if i < 0 || i >= len(xs) {
		return nil, errs.New("polynomial.LagrangeBasis", errs.InvalidParameters, nil)
	}
	num := f.One()
	den := f.One()
	xi := xs[i]
	for j, xj := range xs {
		if j == i {
			continue
		}
		num = num.Mul(at.Sub(xj))
		den = den.Mul(xi.Sub(xj))
	}
	if den.IsZero() {
		return nil, errs.New("polynomial.LagrangeBasis", errs.DuplicateIdentifier, nil)
	}
	denInv, err := den.Invert()
	if err != nil {
		return nil, errs.New("polynomial.LagrangeBasis", errs.InvalidParameters, err)
	}
	return num.Mul(denInv), nil
}

// LagrangeBasisSet computes LagrangeBasis for every index in xs at the point
// at, the shape every combiner in pkg/vss actually consumes. It calls
// LagrangeBasis once per index, so the total work is O(n^2) products.
func LagrangeBasisSet(f field.Field, xs []field.Scalar, at field.Scalar) ([]field.Scalar, error) {
	coefficients := make([]field.Scalar, len(xs))
	for i := range xs {
		c, err := LagrangeBasis(f, xs, i, at)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return coefficients, nil
}

// CombineAt reconstructs sum(ys[i] * basis[i]) for the Lagrange basis of xs
// evaluated at at. Reconstructing the secret itself is CombineAt(..., f.Zero()).
func CombineAt(f field.Field, xs, ys []field.Scalar, at field.Scalar) (field.Scalar, error) {
	if len(xs) != len(ys) {
		return nil, errs.New("polynomial.CombineAt", errs.InvalidParameters, nil)
	}
	if len(xs) == 0 {
		return nil, errs.New("polynomial.CombineAt", errs.ThresholdNotMet, nil)
	}
	basis, err := LagrangeBasisSet(f, xs, at)
	if err != nil {
		return nil, err
	}
	acc := f.Zero()
	for i, y := range ys {
		acc = acc.Add(y.Mul(basis[i]))
	}
	return acc, nil
}
