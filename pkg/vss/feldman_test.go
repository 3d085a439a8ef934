package vss_test

import (
	"crypto/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/vss"
)

var _ = Describe("Feldman", func() {
	var (
		f   *field.PrimeField
		grp group.Secp256k1Group
	)

	BeforeEach(func() {
		f = group.Secp256k1ScalarField()
		grp = group.NewSecp256k1Group()
	})

	// S3 (substituting secp256k1 for BLS12-381): t=3, n=5, every share
	// verifies; mutating share 2's value flips verification to failure.
	It("verifies every emitted share and rejects a tampered one", func() {
		secret := f.ScalarFromUint64(123456)
		shares, vs, err := vss.FeldmanSplit(f, grp, 3, 5, secret, rand.Reader, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(vs.Commitments).To(HaveLen(3))

		for _, s := range shares {
			ok, err := vs.VerifyShare(s.ID.Scalar(), s.Value)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		}

		tampered := shares[2].Value.Add(f.One())
		ok, err := vs.VerifyShare(shares[2].ID.Scalar(), tampered)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	// Property 5: combine_shares_group on Feldman shares lifted into the
	// group equals g^secret.
	It("reconstructs g^secret via CombineGroup over lifted Feldman shares", func() {
		secret := f.ScalarFromUint64(77)
		shares, vs, err := vss.FeldmanSplit(f, grp, 2, 3, secret, rand.Reader, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		lifted := make(vss.GroupShareSet, len(shares))
		for i, s := range shares {
			lifted[i] = vss.GroupShare{ID: s.ID, Value: vs.Generator.ScalarMult(s.Value)}
		}

		result, err := vss.CombineGroup(f, lifted[:2])
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Equal(vs.Generator.ScalarMult(secret))).To(BeTrue())
	})

	It("accepts an explicit custom generator", func() {
		customGenerator := grp.Generator().ScalarMult(f.ScalarFromUint64(9))
		shares, vs, err := vss.FeldmanSplit(f, grp, 2, 3, f.ScalarFromUint64(5), rand.Reader, nil, customGenerator)
		Expect(err).NotTo(HaveOccurred())
		Expect(vs.Generator.Equal(customGenerator)).To(BeTrue())

		ok, err := vs.VerifyShare(shares[0].ID.Scalar(), shares[0].Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})
})
