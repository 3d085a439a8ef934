package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/vss/pkg/vss"
)

var (
	splitScheme    string
	splitThreshold int
	splitLimit     int
	splitSecretHex string
	splitOutput    string
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into shares",
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitScheme, "scheme", "s", "shamir", "scheme: shamir, feldman, pedersen")
	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "t", 0, "reconstruction threshold (required)")
	splitCmd.Flags().IntVarP(&splitLimit, "limit", "n", 0, "number of shares to produce (required)")
	splitCmd.Flags().StringVar(&splitSecretHex, "secret", "", "secret, hex encoded (required)")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "split.cbor", "output file")
	splitCmd.MarkFlagRequired("threshold")
	splitCmd.MarkFlagRequired("limit")
	splitCmd.MarkFlagRequired("secret")
}

func runSplit(cmd *cobra.Command, args []string) error {
	f, err := resolveField(fieldName)
	if err != nil {
		return err
	}

	secretBytes, err := hex.DecodeString(splitSecretHex)
	if err != nil {
		return fmt.Errorf("decoding --secret: %w", err)
	}
	secret := f.ScalarFromWideBytes(secretBytes)

	doc := splitDoc{
		Scheme:          splitScheme,
		Threshold:       splitThreshold,
		Limit:           splitLimit,
		IdentifierWidth: f.ScalarSize(),
	}

	switch splitScheme {
	case "shamir":
		shares, err := vss.ShamirSplit(f, splitThreshold, splitLimit, secret, rand.Reader, nil)
		if err != nil {
			return reportSplitErr(err)
		}
		doc.Shares = toShareDocs(shares)

	case "feldman":
		grp, err := resolveGroup(groupName)
		if err != nil {
			return err
		}
		shares, vs, err := vss.FeldmanSplit(f, grp, splitThreshold, splitLimit, secret, rand.Reader, nil, nil)
		if err != nil {
			return reportSplitErr(err)
		}
		doc.Shares = toShareDocs(shares)
		doc.FeldmanGenerator = hex.EncodeToString(vs.Generator.Bytes())
		doc.FeldmanCommitments = elementsToHex(vs.Commitments)

	case "pedersen":
		grp, err := resolveGroup(groupName)
		if err != nil {
			return err
		}
		result, err := vss.PedersenSplit(f, grp, splitThreshold, splitLimit, secret, rand.Reader, nil, nil, nil)
		if err != nil {
			return reportSplitErr(err)
		}
		doc.Shares = toShareDocs(result.SecretShares)
		doc.BlinderShares = toShareDocs(result.BlinderShares)
		doc.Blinder = hex.EncodeToString(result.Blinder.Bytes())
		doc.FeldmanGenerator = hex.EncodeToString(result.FeldmanVerifierSet.Generator.Bytes())
		doc.FeldmanCommitments = elementsToHex(result.FeldmanVerifierSet.Commitments)
		doc.PedersenH = hex.EncodeToString(result.PedersenVerifierSet.H.Bytes())
		doc.PedersenCommitments = elementsToHex(result.PedersenVerifierSet.Commitments)

	default:
		return fmt.Errorf("unknown scheme %q (want shamir, feldman or pedersen)", splitScheme)
	}

	if err := writeSplitDoc(splitOutput, doc); err != nil {
		return err
	}
	fmt.Printf("wrote %d shares (%s scheme) to %s\n", len(doc.Shares), splitScheme, splitOutput)
	return nil
}

func reportSplitErr(err error) error {
	if verbose {
		if se, ok := err.(*vss.SplitError); ok {
			return fmt.Errorf("split failed in state %s: %w", se.State, se)
		}
	}
	return err
}
