// Package vss implements the Shamir, Feldman and Pedersen verifiable
// secret-sharing schemes over the abstract field.Field/group.Group
// capability contracts, the Lagrange combiner, and verifier-set
// verification.
package vss

import (
	"fmt"
	"io"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/party"
	"github.com/luxfi/vss/pkg/polynomial"
	"github.com/luxfi/vss/pkg/share"
)

// MaxLimit is the hard cap on the number of shares a single split may
// produce (spec §3, "limit <= 255").
const MaxLimit = 255

// ShamirSplit implements spec §4.3's Split: validate, build a random
// polynomial with the forced secret constant term, evaluate it at n
// generator-produced identifiers, zeroize the polynomial on every exit path.
// gen may be nil, in which case the default sequential {1, 2, ..., n}
// generator is used (spec §6, "generator defaults to sequential 1..").
func ShamirSplit(f field.Field, threshold, limit int, secret field.Scalar, rng io.Reader, gen party.Generator) (share.Set, error) {
	state := SplitValidating
	if err := validateThresholdLimit(threshold, limit); err != nil {
		return nil, newSplitError(state, "vss.ShamirSplit", errs.InvalidParameters, err)
	}

	if gen == nil {
		var err error
		gen, err = party.DefaultSequentialGenerator(f, f.ScalarSize(), limit)
		if err != nil {
			return nil, newSplitError(state, "vss.ShamirSplit", errs.InvalidParameters, err)
		}
	}

	poly, err := polynomial.NewRandomPolynomial(f, secret, threshold, rng)
	if err != nil {
		return nil, newSplitError(SplitPolynomialReady, "vss.ShamirSplit", errs.InvalidParameters, err)
	}
	defer poly.Zeroize()

	shares, err := evaluateAtGeneratedIdentifiers(f, poly, limit, gen)
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// evaluateAtGeneratedIdentifiers is the shared tail of ShamirSplit and
// FeldmanSplit/PedersenSplit's secret-share production: generate n
// identifiers in order, evaluate poly at each (spec §4.3 step 3).
func evaluateAtGeneratedIdentifiers(f field.Field, poly *polynomial.Polynomial, limit int, gen party.Generator) (share.Set, error) {
	shares := make(share.Set, limit)
	for i := 0; i < limit; i++ {
		id, err := gen.Get(i)
		if err != nil {
			return nil, newSplitError(SplitIdentifiersGenerated, "vss.ShamirSplit", errs.GeneratorExhausted, err)
		}
		if id.Scalar().IsZero() {
			return nil, newSplitError(SplitIdentifiersGenerated, "vss.ShamirSplit", errs.ZeroIdentifier, nil)
		}
		y := poly.Evaluate(id.Scalar())
		shares[i] = share.New(id, y)
	}
	return shares, nil
}

func validateThresholdLimit(threshold, limit int) error {
	if threshold < 2 {
		return fmt.Errorf("threshold must be at least 2, got %d", threshold)
	}
	if limit < threshold {
		return fmt.Errorf("limit %d must be at least threshold %d", limit, threshold)
	}
	if limit > MaxLimit {
		return fmt.Errorf("limit %d exceeds the hard cap of %d", limit, MaxLimit)
	}
	return nil
}

// Combine implements spec §4.3's Combine in field mode: fail below 2 shares,
// reject duplicate or zero identifiers, then evaluate the Lagrange
// interpolant at zero.
func Combine(f field.Field, shares share.Set) (field.Scalar, error) {
	if len(shares) < 2 {
		return nil, newCombineError(CombineValidated, "vss.Combine", errs.ThresholdNotMet, nil)
	}
	if err := validateShareSet(shares); err != nil {
		return nil, err
	}

	xs := shares.Identifiers()
	ys := shares.Values()
	secret, err := polynomial.CombineAt(f, xs, ys, f.Zero())
	if err != nil {
		return nil, newCombineError(CombineLagrangeComputed, "vss.Combine", errs.InvalidParameters, err)
	}
	return secret, nil
}

func validateShareSet(shares share.Set) error {
	for _, s := range shares {
		if s.ID.Scalar().IsZero() {
			return newCombineError(CombineValidated, "vss.validateShareSet", errs.ZeroIdentifier, nil)
		}
	}
	if shares.HasDuplicateIdentifiers() {
		return newCombineError(CombineValidated, "vss.validateShareSet", errs.DuplicateIdentifier, nil)
	}
	return nil
}
