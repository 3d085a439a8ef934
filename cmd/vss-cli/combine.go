package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/vss/pkg/share"
	"github.com/luxfi/vss/pkg/vss"
)

var (
	combineInput string
	combineCount int
	combineBlind bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine shares from a split file back into the secret",
	RunE:  runCombine,
}

func init() {
	combineCmd.Flags().StringVarP(&combineInput, "input", "i", "", "split output file (required)")
	combineCmd.Flags().IntVarP(&combineCount, "count", "c", 0, "number of shares to use (0 = all)")
	combineCmd.Flags().BoolVar(&combineBlind, "blinder", false, "combine the blinder shares instead of the secret shares (pedersen only)")
	combineCmd.MarkFlagRequired("input")
}

func runCombine(cmd *cobra.Command, args []string) error {
	f, err := resolveField(fieldName)
	if err != nil {
		return err
	}
	doc, err := readSplitDoc(combineInput)
	if err != nil {
		return err
	}

	docs := doc.Shares
	if combineBlind {
		if len(doc.BlinderShares) == 0 {
			return fmt.Errorf("split file has no blinder shares (scheme was %q)", doc.Scheme)
		}
		docs = doc.BlinderShares
	}
	if combineCount > 0 && combineCount < len(docs) {
		docs = docs[:combineCount]
	}

	shares, err := fromShareDocs(f, doc.IdentifierWidth, docs)
	if err != nil {
		return err
	}

	secret, err := vss.Combine(f, share.Set(shares))
	if err != nil {
		if verbose {
			if ce, ok := err.(*vss.CombineError); ok {
				return fmt.Errorf("combine failed in state %s: %w", ce.State, ce)
			}
		}
		return err
	}

	fmt.Println(hex.EncodeToString(secret.Bytes()))
	return nil
}
