package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verifyInput string
	verifyIndex int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify one share from a split file against its verifier set",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyInput, "input", "i", "", "split output file (required)")
	verifyCmd.Flags().IntVar(&verifyIndex, "index", 0, "index of the share to verify")
	verifyCmd.MarkFlagRequired("input")
}

func runVerify(cmd *cobra.Command, args []string) error {
	f, err := resolveField(fieldName)
	if err != nil {
		return err
	}
	grp, err := resolveGroup(groupName)
	if err != nil {
		return err
	}
	doc, err := readSplitDoc(verifyInput)
	if err != nil {
		return err
	}
	if verifyIndex < 0 || verifyIndex >= len(doc.Shares) {
		return fmt.Errorf("index %d out of range [0, %d)", verifyIndex, len(doc.Shares))
	}

	shares, err := fromShareDocs(f, doc.IdentifierWidth, doc.Shares[verifyIndex:verifyIndex+1])
	if err != nil {
		return err
	}
	x := shares[0].ID.Scalar()
	y := shares[0].Value

	switch doc.Scheme {
	case "shamir":
		return fmt.Errorf("shamir shares carry no commitments to verify against")

	case "feldman":
		vs, err := feldmanVerifierSetFromDoc(grp, doc.FeldmanGenerator, doc.FeldmanCommitments)
		if err != nil {
			return err
		}
		ok, err := vs.VerifyShare(x, y)
		if err != nil {
			return err
		}
		printVerificationResult(ok)
		return nil

	case "pedersen":
		vs, err := feldmanVerifierSetFromDoc(grp, doc.FeldmanGenerator, doc.FeldmanCommitments)
		if err != nil {
			return err
		}
		blinderShares, err := fromShareDocs(f, doc.IdentifierWidth, doc.BlinderShares[verifyIndex:verifyIndex+1])
		if err != nil {
			return err
		}
		hBytes, err := hex.DecodeString(doc.PedersenH)
		if err != nil {
			return fmt.Errorf("decoding pedersen_h: %w", err)
		}
		h, err := grp.ElementFromBytes(hBytes)
		if err != nil {
			return fmt.Errorf("parsing pedersen h: %w", err)
		}
		commitments, err := elementsFromHex(grp, doc.PedersenCommitments)
		if err != nil {
			return err
		}
		pvs := pedersenVerifierSet(vs, h, commitments)
		ok, err := pvs.VerifyShare(x, y, blinderShares[0].Value)
		if err != nil {
			return err
		}
		printVerificationResult(ok)
		return nil

	default:
		return fmt.Errorf("unknown scheme %q in split file", doc.Scheme)
	}
}

func printVerificationResult(ok bool) {
	if ok {
		fmt.Println("OK")
		return
	}
	fmt.Println("VERIFICATION FAILED")
}
