package vss_test

import (
	"crypto/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/vss"
)

var _ = Describe("Pedersen", func() {
	var (
		f   *field.PrimeField
		grp group.Secp256k1Group
	)

	BeforeEach(func() {
		f = group.Secp256k1ScalarField()
		grp = group.NewSecp256k1Group()
	})

	// S4 (substituting secp256k1 for BLS12-381): t=2, n=4. Verifier set has
	// length 2, both secret and blinder shares verify, and recovering the
	// blinder requires collecting t blinder shares.
	It("verifies secret and blinder shares and reconstructs the blinder from t shares", func() {
		secret := f.ScalarFromUint64(9000)
		result, err := vss.PedersenSplit(f, grp, 2, 4, secret, rand.Reader, nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.PedersenVerifierSet.Commitments).To(HaveLen(2))
		Expect(result.FeldmanVerifierSet.Commitments).To(HaveLen(2))

		for i := range result.SecretShares {
			ok, err := result.PedersenVerifierSet.VerifyShare(
				result.SecretShares[i].ID.Scalar(),
				result.SecretShares[i].Value,
				result.BlinderShares[i].Value,
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		}

		blinder, err := vss.Combine(f, result.BlinderShares[:2])
		Expect(err).NotTo(HaveOccurred())
		Expect(blinder.Equal(result.Blinder)).To(BeTrue())

		reconstructedSecret, err := vss.Combine(f, result.SecretShares[:2])
		Expect(err).NotTo(HaveOccurred())
		Expect(reconstructedSecret.Equal(secret)).To(BeTrue())
	})

	// Property 4: tampering with a share's value flips Pedersen verification
	// to failure.
	It("rejects a tampered secret share", func() {
		result, err := vss.PedersenSplit(f, grp, 3, 5, f.ScalarFromUint64(4242), rand.Reader, nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		tampered := result.SecretShares[0].Value.Add(f.One())
		ok, err := result.PedersenVerifierSet.VerifyShare(
			result.SecretShares[0].ID.Scalar(),
			tampered,
			result.BlinderShares[0].Value,
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("derives h deterministically from g when none is supplied", func() {
		secret := f.ScalarFromUint64(1)
		r1, err := vss.PedersenSplit(f, grp, 2, 3, secret, rand.Reader, nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		r2, err := vss.PedersenSplit(f, grp, 2, 3, secret, rand.Reader, nil, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(r1.PedersenVerifierSet.H.Equal(r2.PedersenVerifierSet.H)).To(BeTrue())
	})

	It("rejects an explicit h equal to the generator", func() {
		g := grp.Generator()
		_, err := vss.PedersenSplit(f, grp, 2, 3, f.One(), rand.Reader, nil, g, g)
		Expect(err).To(HaveOccurred())
	})
})
