package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/party"
)

func TestDefaultSequentialGeneratorReproducesLegacySequence(t *testing.T) {
	f := group.Secp256k1ScalarField()
	gen, err := party.DefaultSequentialGenerator(f, f.ScalarSize(), 5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		id, err := gen.Get(i)
		require.NoError(t, err)
		assert.True(t, id.Scalar().Equal(f.ScalarFromUint64(uint64(i+1))))
	}
}

func TestSequentialGeneratorRejectsZeroStartOrIncrement(t *testing.T) {
	f := group.Secp256k1ScalarField()

	testCases := []struct {
		name      string
		start     field.Scalar
		increment field.Scalar
	}{
		{"zero start", f.Zero(), f.One()},
		{"zero increment", f.One(), f.Zero()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := party.NewSequentialGenerator(f, tc.start, tc.increment, f.ScalarSize(), 4)
			require.Error(t, err)
		})
	}
}

// S5: two RandomGenerators constructed from the same (domainSeparator,
// seed) emit identical identifier sequences.
func TestRandomGeneratorIsDeterministicGivenSeedAndDomainSeparator(t *testing.T) {
	f := group.Secp256k1ScalarField()
	domainSeparator := []byte("vss/test")
	seed := []byte("a fixed seed for determinism")

	gen1 := party.NewRandomGenerator(f, domainSeparator, seed, f.ScalarSize())
	gen2 := party.NewRandomGenerator(f, domainSeparator, seed, f.ScalarSize())

	for i := 0; i < 10; i++ {
		id1, err := gen1.Get(i)
		require.NoError(t, err)
		id2, err := gen2.Get(i)
		require.NoError(t, err)
		assert.True(t, id1.Equal(id2))
	}
}

func TestRandomGeneratorDiffersAcrossDomainSeparators(t *testing.T) {
	f := group.Secp256k1ScalarField()
	seed := []byte("shared seed")

	gen1 := party.NewRandomGenerator(f, []byte("domain-a"), seed, f.ScalarSize())
	gen2 := party.NewRandomGenerator(f, []byte("domain-b"), seed, f.ScalarSize())

	id1, err := gen1.Get(0)
	require.NoError(t, err)
	id2, err := gen2.Get(0)
	require.NoError(t, err)
	assert.False(t, id1.Equal(id2))
}

func TestListGeneratorRejectsDuplicateOrZero(t *testing.T) {
	f := group.Secp256k1ScalarField()

	testCases := []struct {
		name        string
		identifiers []field.Scalar
	}{
		{"contains zero", []field.Scalar{f.One(), f.Zero(), f.ScalarFromUint64(3)}},
		{"contains duplicate", []field.Scalar{f.One(), f.ScalarFromUint64(2), f.One()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := party.NewListGenerator(tc.identifiers, f.ScalarSize(), len(tc.identifiers))
			require.Error(t, err)
		})
	}
}

func TestListGeneratorReturnsInOrder(t *testing.T) {
	f := group.Secp256k1ScalarField()
	identifiers := []field.Scalar{f.ScalarFromUint64(10), f.ScalarFromUint64(20), f.ScalarFromUint64(30)}
	gen, err := party.NewListGenerator(identifiers, f.ScalarSize(), 3)
	require.NoError(t, err)

	for i, want := range identifiers {
		got, err := gen.Get(i)
		require.NoError(t, err)
		assert.True(t, got.Scalar().Equal(want))
	}
}

func TestListThenRandomGeneratorFallsBackPastTheList(t *testing.T) {
	f := group.Secp256k1ScalarField()
	list := []field.Scalar{f.ScalarFromUint64(1), f.ScalarFromUint64(2)}
	gen, err := party.NewListThenRandomGenerator(f, list, []byte("ds"), []byte("seed"), f.ScalarSize())
	require.NoError(t, err)

	id0, err := gen.Get(0)
	require.NoError(t, err)
	assert.True(t, id0.Scalar().Equal(list[0]))

	id2, err := gen.Get(2)
	require.NoError(t, err)
	assert.False(t, id2.Scalar().IsZero())
	assert.False(t, id2.Equal(id0))
}

func TestListThenSequentialGeneratorRejectsCollidingTail(t *testing.T) {
	f := group.Secp256k1ScalarField()
	// start=3, increment=1 means the tail immediately produces 3, which
	// collides with the list.
	list := []field.Scalar{f.ScalarFromUint64(1), f.ScalarFromUint64(3)}
	_, err := party.NewListThenSequentialGenerator(f, list, f.ScalarFromUint64(3), f.One(), f.ScalarSize(), 4)
	require.Error(t, err)
}

func TestListThenSequentialGeneratorFallsBackPastTheList(t *testing.T) {
	f := group.Secp256k1ScalarField()
	list := []field.Scalar{f.ScalarFromUint64(1), f.ScalarFromUint64(2)}
	gen, err := party.NewListThenSequentialGenerator(f, list, f.ScalarFromUint64(100), f.One(), f.ScalarSize(), 4)
	require.NoError(t, err)

	id2, err := gen.Get(2)
	require.NoError(t, err)
	assert.True(t, id2.Scalar().Equal(f.ScalarFromUint64(100)))
	id3, err := gen.Get(3)
	require.NoError(t, err)
	assert.True(t, id3.Scalar().Equal(f.ScalarFromUint64(101)))
}
