package vss

import (
	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/party"
	"github.com/luxfi/vss/pkg/polynomial"
)

// GroupShare is a share whose value lives in a commitment group rather than
// in the scalar field — the shape combine_shares_group consumes (spec §6,
// combine_shares_group) and the shape a Feldman/Pedersen verifier produces
// by raising g (or h) to a field-valued share (testable property 5).
type GroupShare struct {
	ID    party.ID
	Value group.Element
}

// GroupShareSet is an unordered collection of GroupShares, mirroring
// share.Set's duplicate-identifier bookkeeping.
type GroupShareSet []GroupShare

func (s GroupShareSet) identifiers() []field.Scalar {
	out := make([]field.Scalar, len(s))
	for i, sh := range s {
		out[i] = sh.ID.Scalar()
	}
	return out
}

func (s GroupShareSet) hasDuplicateIdentifiers() bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i].ID.Equal(s[j].ID) {
				return true
			}
		}
	}
	return false
}

// CombineGroup implements spec §4.3 step 4/§4.6 step 4 in group mode: the
// Lagrange basis is computed exactly as in the field case (it depends only
// on identifiers) but shares are combined as Π yᵢ^{λᵢ} via group scalar
// multiplication and addition instead of field multiplication and addition.
func CombineGroup(f field.Field, shares GroupShareSet) (group.Element, error) {
	if len(shares) < 2 {
		return nil, newCombineError(CombineValidated, "vss.CombineGroup", errs.ThresholdNotMet, nil)
	}
	for _, s := range shares {
		if s.ID.Scalar().IsZero() {
			return nil, newCombineError(CombineValidated, "vss.CombineGroup", errs.ZeroIdentifier, nil)
		}
	}
	if shares.hasDuplicateIdentifiers() {
		return nil, newCombineError(CombineValidated, "vss.CombineGroup", errs.DuplicateIdentifier, nil)
	}

	xs := shares.identifiers()
	basis, err := polynomial.LagrangeBasisSet(f, xs, f.Zero())
	if err != nil {
		return nil, newCombineError(CombineLagrangeComputed, "vss.CombineGroup", errs.InvalidParameters, err)
	}

	acc := shares[0].Value.ScalarMult(basis[0])
	for i := 1; i < len(shares); i++ {
		acc = acc.Add(shares[i].Value.ScalarMult(basis[i]))
	}
	return acc, nil
}
