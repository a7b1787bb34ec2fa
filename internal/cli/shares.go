package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/shamir"
	"github.com/mrz1836/sigil/internal/wallet"
)

// sharesCmd groups the raw, non-mnemonic Shamir split/combine primitive,
// for sharding arbitrary binary blobs without SLIP-39's word encoding.
var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "Split or combine arbitrary secrets with raw Shamir sharing",
	Long: `Splits or recombines an arbitrary binary blob using Shamir's Secret
Sharing directly, without SLIP-39's mnemonic word encoding or digest
share. Useful for sharding a file or key that isn't a mnemonic-worthy
master secret.`,
}

var (
	sharesSplitHexSecret string
	sharesSplitCount     int
	sharesSplitThreshold int
	sharesCombineShares  []string
)

var sharesSplitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a hex-encoded secret into raw Shamir shares",
	Long: `Splits an arbitrary hex-encoded secret into N raw Shamir shares, K of
which are required to recombine it. Unlike "sigil slip39 generate", the
shares are opaque delimited strings, not mnemonic words.`,
	Example: `  sigil shares split --hex-secret deadbeef --shares 5 --threshold 3`,
	RunE:    runSharesSplit,
}

var sharesCombineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Recombine raw Shamir shares into the original secret",
	Long: `Recombines a qualifying set of raw Shamir shares, produced by
"sigil shares split", back into the original secret.`,
	Example: `  sigil shares combine --share sigil-v1-3-1-... --share sigil-v1-3-2-...`,
	RunE:    runSharesCombine,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command/flag registration
func init() {
	sharesCmd.GroupID = "raw"
	rootCmd.AddCommand(sharesCmd)
	sharesCmd.AddCommand(sharesSplitCmd, sharesCombineCmd)

	sharesSplitCmd.Flags().StringVar(&sharesSplitHexSecret, "hex-secret", "", "secret to split, as hex (required)")
	sharesSplitCmd.Flags().IntVar(&sharesSplitCount, "shares", 5, "number of shares to produce")
	sharesSplitCmd.Flags().IntVar(&sharesSplitThreshold, "threshold", 3, "number of shares required to recombine")
	_ = sharesSplitCmd.MarkFlagRequired("hex-secret")

	sharesCombineCmd.Flags().StringSliceVar(&sharesCombineShares, "share", nil, "a raw share string (repeatable)")
}

func runSharesSplit(cmd *cobra.Command, _ []string) error {
	secret, err := hexToBytes(sharesSplitHexSecret)
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(secret)

	shares, err := shamir.Split(secret, sharesSplitCount, sharesSplitThreshold)
	if err != nil {
		return err
	}

	cc := GetCmdContext(cmd)
	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		return cc.Fmt.Print(map[string]any{"shares": shares})
	}

	for _, s := range shares {
		cmd.Println(s)
	}
	return nil
}

func runSharesCombine(cmd *cobra.Command, _ []string) error {
	secret, err := shamir.Combine(sharesCombineShares)
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(secret)

	hexSecret := bytesToHex(secret)

	cc := GetCmdContext(cmd)
	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		return cc.Fmt.Print(map[string]any{"secret_hex": hexSecret})
	}

	cmd.Printf("Recovered secret: %s\n", hexSecret)
	return nil
}
