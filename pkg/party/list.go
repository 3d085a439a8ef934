package party

import (
	"fmt"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
)

// ListGenerator returns identifiers[index] for index in [0, limit). The
// constructor fails if any identifier in the slice (up to limit) is zero or
// duplicated (spec §4.2, "List").
type ListGenerator struct {
	identifiers []field.Scalar
	width       int
}

// NewListGenerator validates identifiers against limit at construction.
func NewListGenerator(identifiers []field.Scalar, width, limit int) (*ListGenerator, error) {
	if len(identifiers) < limit {
		return nil, errs.New("party.NewListGenerator", errs.InvalidParameters,
			fmt.Errorf("need at least %d identifiers, got %d", limit, len(identifiers)))
	}
	if err := validateDistinctNonzero(identifiers[:limit]); err != nil {
		return nil, err
	}
	return &ListGenerator{identifiers: identifiers, width: width}, nil
}

func (g *ListGenerator) Get(index int) (ID, error) {
	if index < 0 || index >= len(g.identifiers) {
		return ID{}, errs.New("ListGenerator.Get", errs.GeneratorExhausted,
			fmt.Errorf("index %d out of range [0, %d)", index, len(g.identifiers)))
	}
	return New(g.identifiers[index], g.width)
}

func validateDistinctNonzero(scalars []field.Scalar) error {
	for i, s := range scalars {
		if s.IsZero() {
			return errs.New("party.validateDistinctNonzero", errs.ZeroIdentifier,
				fmt.Errorf("identifier at index %d is zero", i))
		}
		for j := 0; j < i; j++ {
			if scalars[j].Equal(s) {
				return errs.New("party.validateDistinctNonzero", errs.DuplicateIdentifier,
					fmt.Errorf("identifiers at index %d and %d are equal", j, i))
			}
		}
	}
	return nil
}

// ListThenRandomGenerator serves identifiers[index] while index is within
// the list, then falls back to a RandomGenerator for the remainder, checking
// fresh random draws for uniqueness against the entire list as well as
// against previously emitted random draws (spec §4.2, "List-then-Random").
type ListThenRandomGenerator struct {
	list   []field.Scalar
	width  int
	random *RandomGenerator
}

// NewListThenRandomGenerator constructs the hybrid. list need not cover the
// whole limit; domainSeparator/seed feed the random fallback.
func NewListThenRandomGenerator(f field.Field, list []field.Scalar, domainSeparator, seed []byte, width int) (*ListThenRandomGenerator, error) {
	if err := validateDistinctNonzero(list); err != nil {
		return nil, err
	}
	rg := NewRandomGenerator(f, domainSeparator, seed, width)
	rg.emitted = append(rg.emitted, list...)
	return &ListThenRandomGenerator{list: list, width: width, random: rg}, nil
}

func (g *ListThenRandomGenerator) Get(index int) (ID, error) {
	if index < len(g.list) {
		return New(g.list[index], g.width)
	}
	return g.random.Get(index)
}

// ListThenSequentialGenerator serves identifiers[index] while index is
// within the list, then falls back to a sequential start+increment*k
// sequence for the remainder, verified at construction never to collide
// with the list (spec §4.2, "List-then-Sequential").
type ListThenSequentialGenerator struct {
	list  []field.Scalar
	width int
	seq   *SequentialGenerator
}

// NewListThenSequentialGenerator constructs the hybrid over limit total
// identifiers.
func NewListThenSequentialGenerator(f field.Field, list []field.Scalar, start, increment field.Scalar, width, limit int) (*ListThenSequentialGenerator, error) {
	if err := validateDistinctNonzero(list); err != nil {
		return nil, err
	}
	if limit < len(list) {
		return nil, errs.New("party.NewListThenSequentialGenerator", errs.InvalidParameters,
			fmt.Errorf("limit %d smaller than list length %d", limit, len(list)))
	}
	tailLen := limit - len(list)
	seq, err := NewSequentialGenerator(f, start, increment, width, tailLen)
	if err != nil {
		return nil, err
	}
	for k := 0; k < tailLen; k++ {
		candidate, err := seq.Get(k)
		if err != nil {
			return nil, err
		}
		for _, l := range list {
			if l.Equal(candidate.Scalar()) {
				return nil, errs.New("party.NewListThenSequentialGenerator", errs.DuplicateIdentifier,
					fmt.Errorf("sequential tail value at offset %d collides with the list", k))
			}
		}
	}
	return &ListThenSequentialGenerator{list: list, width: width, seq: seq}, nil
}

func (g *ListThenSequentialGenerator) Get(index int) (ID, error) {
	if index < len(g.list) {
		return New(g.list[index], g.width)
	}
	return g.seq.Get(index - len(g.list))
}
