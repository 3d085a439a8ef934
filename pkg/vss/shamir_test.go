package vss_test

import (
	"crypto/rand"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/party"
	"github.com/luxfi/vss/pkg/share"
	"github.com/luxfi/vss/pkg/vss"
)

var _ = Describe("Shamir", func() {
	var f *field.PrimeField

	BeforeEach(func() {
		f = group.Secp256k1ScalarField()
	})

	// S1 (substituting secp256k1's scalar field for P-256, since only a
	// secp256k1 realization is wired here): t=2, n=3, secret=1, combine any
	// two of three shares reconstructs it.
	It("reconstructs a small secret from any two-of-three shares", func() {
		secret := f.ScalarFromUint64(1)
		shares, err := vss.ShamirSplit(f, 2, 3, secret, rand.Reader, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(shares).To(HaveLen(3))

		for i := 0; i < len(shares); i++ {
			for j := i + 1; j < len(shares); j++ {
				subset := share.Set{shares[i], shares[j]}
				reconstructed, err := vss.Combine(f, subset)
				Expect(err).NotTo(HaveOccurred())
				Expect(reconstructed.Equal(secret)).To(BeTrue())
			}
		}
	})

	// S2: zero-secret split/reconstruct, t=3, n=5.
	It("round-trips a zero secret (refresh-protocol property)", func() {
		shares, err := vss.ShamirSplit(f, 3, 5, f.Zero(), rand.Reader, nil)
		Expect(err).NotTo(HaveOccurred())
		reconstructed, err := vss.Combine(f, shares[:3])
		Expect(err).NotTo(HaveOccurred())
		Expect(reconstructed.IsZero()).To(BeTrue())
	})

	// S6: combining shares with a duplicate identifier is rejected.
	It("rejects combine input with duplicate identifiers", func() {
		id1, err := party.New(f.ScalarFromUint64(1), f.ScalarSize())
		Expect(err).NotTo(HaveOccurred())
		id2, err := party.New(f.ScalarFromUint64(2), f.ScalarSize())
		Expect(err).NotTo(HaveOccurred())

		shares := share.Set{
			share.New(id1, f.ScalarFromUint64(10)),
			share.New(id1, f.ScalarFromUint64(20)),
			share.New(id2, f.ScalarFromUint64(30)),
		}
		_, err = vss.Combine(f, shares)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, errs.DuplicateIdentifier)).To(BeTrue())
	})

	// Property 6: SequentialGenerator(start=1, increment=1) reproduces the
	// legacy {1, 2, ..., n} identifier sequence.
	It("defaults to the legacy sequential identifier sequence", func() {
		shares, err := vss.ShamirSplit(f, 2, 4, f.ScalarFromUint64(5), rand.Reader, nil)
		Expect(err).NotTo(HaveOccurred())
		for i, s := range shares {
			Expect(s.ID.Scalar().Equal(f.ScalarFromUint64(uint64(i + 1)))).To(BeTrue())
		}
	})

	// Property 8: identifier uniqueness across an entire split.
	It("emits pairwise distinct identifiers", func() {
		shares, err := vss.ShamirSplit(f, 3, 10, f.ScalarFromUint64(42), rand.Reader, nil)
		Expect(err).NotTo(HaveOccurred())
		seen := share.Set(shares)
		Expect(seen.HasDuplicateIdentifiers()).To(BeFalse())
	})

	It("rejects invalid threshold/limit combinations", func() {
		_, err := vss.ShamirSplit(f, 1, 5, f.One(), rand.Reader, nil)
		Expect(err).To(HaveOccurred())

		_, err = vss.ShamirSplit(f, 5, 3, f.One(), rand.Reader, nil)
		Expect(err).To(HaveOccurred())

		_, err = vss.ShamirSplit(f, 2, 256, f.One(), rand.Reader, nil)
		Expect(err).To(HaveOccurred())
	})

	It("rejects combine with fewer than two shares", func() {
		id, err := party.New(f.One(), f.ScalarSize())
		Expect(err).NotTo(HaveOccurred())
		_, err = vss.Combine(f, share.Set{share.New(id, f.One())})
		Expect(err).To(HaveOccurred())
	})
})
