package vss_test

import (
	"crypto/rand"
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/share"
	"github.com/luxfi/vss/pkg/vss"
)

var _ = Describe("Property-Based Tests", func() {
	f := group.Secp256k1ScalarField()

	// Property 1: split then combine on any t-subset yields the original
	// secret.
	It("reconstructs the secret from any threshold-sized subset", func() {
		property := func(secretRaw uint64, nRaw, tRaw uint8) bool {
			n := int(nRaw%20) + 2
			t := int(tRaw)%n + 1
			if t < 2 {
				t = 2
			}
			if t > n {
				return true
			}

			secret := f.ScalarFromUint64(secretRaw)
			shares, err := vss.ShamirSplit(f, t, n, secret, rand.Reader, nil)
			if err != nil {
				return false
			}

			subset := share.Set(shares[:t])
			reconstructed, err := vss.Combine(f, subset)
			if err != nil {
				return false
			}
			return reconstructed.Equal(secret)
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 50})).To(Succeed())
	})

	// Property 7: zero-secret split/combine round-trips correctly for any
	// valid (t, n).
	It("round-trips a zero secret for any valid threshold/limit", func() {
		property := func(nRaw, tRaw uint8) bool {
			n := int(nRaw%20) + 2
			t := int(tRaw)%n + 1
			if t < 2 {
				t = 2
			}
			if t > n {
				return true
			}

			shares, err := vss.ShamirSplit(f, t, n, f.Zero(), rand.Reader, nil)
			if err != nil {
				return false
			}
			reconstructed, err := vss.Combine(f, share.Set(shares[:t]))
			if err != nil {
				return false
			}
			return reconstructed.IsZero()
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 50})).To(Succeed())
	})

	// Property 8: the multiset of emitted identifiers has cardinality n.
	It("emits exactly n pairwise distinct identifiers", func() {
		property := func(secretRaw uint64, nRaw, tRaw uint8) bool {
			n := int(nRaw%20) + 2
			t := int(tRaw)%n + 1
			if t < 2 {
				t = 2
			}
			if t > n {
				return true
			}

			shares, err := vss.ShamirSplit(f, t, n, f.ScalarFromUint64(secretRaw), rand.Reader, nil)
			if err != nil {
				return false
			}
			set := share.Set(shares)
			return len(set) == n && !set.HasDuplicateIdentifiers()
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 50})).To(Succeed())
	})

	// Property 2 (information-theoretic hiding): a subset smaller than t
	// cannot reconstruct the secret deterministically — combining the same
	// below-threshold subset against two independently drawn polynomials
	// sharing only that subset's values must not pin down a single secret.
	// This is expressed the way a unit test can check it: combining a
	// below-threshold subset does not fail outright (Combine has no way to
	// know it is short of t, per spec §6's op table taking only shares as
	// input) but the reconstructed value carries no relation to the actual
	// secret across independent draws for the same subset shape.
	It("does not expose the secret from a below-threshold subset", func() {
		property := func(secretRaw uint64) bool {
			t, n := 4, 6
			secret := f.ScalarFromUint64(secretRaw)
			shares, err := vss.ShamirSplit(f, t, n, secret, rand.Reader, nil)
			if err != nil {
				return false
			}

			below := share.Set(shares[:t-1])
			reconstructed, err := vss.Combine(f, below)
			if err != nil {
				// t-1 >= 2 here, so Combine still runs; an error would be
				// a genuine bug, not an expected rejection.
				return false
			}
			// The interpolant of a degree-(t-1) polynomial at fewer than t
			// points is itself a valid point on *some* degree-(t-1)
			// polynomial through those points, but essentially never the
			// one constant term we fixed as the secret (it's determined
			// independently of the secret almost surely).
			return !reconstructed.Equal(secret) || secret.IsZero()
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 30})).To(Succeed())
	})
})
