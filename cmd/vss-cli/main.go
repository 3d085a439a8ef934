// Command vss-cli drives the Shamir/Feldman/Pedersen schemes in pkg/vss
// from the shell: split a secret, combine shares back into it, verify a
// share against a commitment set, generate identifier sequences for
// inspection, and benchmark concurrent split/combine throughput — an
// operator tool in the style of the teacher's threshold-cli, scoped down to
// this module's actual surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fieldName string
	groupName string
	verbose   bool

	rootCmd = &cobra.Command{
		Use:   "vss-cli",
		Short: "Split, combine and verify verifiable secret shares",
		Long: `vss-cli exercises the Shamir, Feldman and Pedersen verifiable
secret-sharing schemes: split a secret into shares, combine shares back into
a secret, verify a share against a commitment set, and inspect identifier
generator sequences.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&fieldName, "field", "secp256k1", "scalar field: secp256k1, curve25519")
	rootCmd.PersistentFlags().StringVar(&groupName, "group", "secp256k1", "commitment group: secp256k1")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print split/combine state on failure")

	rootCmd.AddCommand(splitCmd, combineCmd, verifyCmd, genIDsCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vss-cli:", err)
		os.Exit(1)
	}
}
