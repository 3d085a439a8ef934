package party

import (
	"fmt"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
)

// SequentialGenerator returns start + increment*index, the default used when
// no generator is supplied to shamir.Split (spec §6, shamir.split defaults
// to "sequential 1.."). With start=1, increment=1 it reproduces the legacy
// identifier sequence {1, 2, …, n} (spec §8 property 6).
type SequentialGenerator struct {
	f         field.Field
	start     field.Scalar
	increment field.Scalar
	width     int
	limit     int
}

// NewSequentialGenerator validates at construction, not mid-emission
// (spec §4.2, "must fail at split entry"): it scans index 0..limit-1 to
// confirm start + increment*index never lands on zero.
func NewSequentialGenerator(f field.Field, start, increment field.Scalar, width, limit int) (*SequentialGenerator, error) {
	if start.IsZero() {
		return nil, errs.New("party.NewSequentialGenerator", errs.ZeroIdentifier, fmt.Errorf("start must be nonzero"))
	}
	if increment.IsZero() {
		return nil, errs.New("party.NewSequentialGenerator", errs.ZeroIdentifier, fmt.Errorf("increment must be nonzero"))
	}
	cur := start
	for k := 0; k < limit; k++ {
		if cur.IsZero() {
			return nil, errs.New("party.NewSequentialGenerator", errs.GeneratorExhausted,
				fmt.Errorf("start + increment*%d wraps to zero", k))
		}
		cur = cur.Add(increment)
	}
	return &SequentialGenerator{f: f, start: start, increment: increment, width: width, limit: limit}, nil
}

// DefaultSequentialGenerator returns the legacy {1, 2, …, n} generator.
func DefaultSequentialGenerator(f field.Field, width, limit int) (*SequentialGenerator, error) {
	return NewSequentialGenerator(f, f.ScalarFromUint64(1), f.ScalarFromUint64(1), width, limit)
}

func (g *SequentialGenerator) Get(index int) (ID, error) {
	if index < 0 || index >= g.limit {
		return ID{}, errs.New("SequentialGenerator.Get", errs.GeneratorExhausted,
			fmt.Errorf("index %d out of range [0, %d)", index, g.limit))
	}
	value := g.start.Add(g.f.ScalarFromUint64(uint64(index)).Mul(g.increment))
	return New(value, g.width)
}
