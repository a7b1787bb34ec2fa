package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/slip39"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

var parseFile string

var slip39ParseCmd = &cobra.Command{
	Use:   "parse [mnemonic]",
	Short: "Inspect a single SLIP-39 mnemonic's metadata",
	Long: `Decodes one SLIP-39 mnemonic and prints its identifier, iteration
exponent, group and member indices and thresholds, and value length,
validating its checksum without requiring enough shares to recover a
secret.`,
	Example: `  sigil slip39 parse "amber-anchor arctic-arrow azure-badge bold-basin ..."
  sigil slip39 parse --file share.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlip39Parse,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command/flag registration
func init() {
	slip39Cmd.AddCommand(slip39ParseCmd)
	slip39ParseCmd.Flags().StringVar(&parseFile, "file", "", "path to a file containing the mnemonic")
}

func runSlip39Parse(cmd *cobra.Command, args []string) error {
	mnemonic, err := resolveParseMnemonic(args)
	if err != nil {
		return err
	}

	info, err := slip39.ParseMnemonic(mnemonic)
	if err != nil {
		return err
	}

	cc := GetCmdContext(cmd)
	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		return cc.Fmt.Print(info)
	}

	cmd.Printf("Identifier:         %d\n", info.Identifier)
	cmd.Printf("Iteration exponent: %d\n", info.IterationExponent)
	cmd.Printf("Group:              %d of %d (threshold %d)\n", info.GroupIndex, info.GroupCount, info.GroupThreshold)
	cmd.Printf("Member:             %d (threshold %d)\n", info.MemberIndex, info.MemberThreshold)
	cmd.Printf("Value length:       %d words\n", info.ValueWords)
	return nil
}

func resolveParseMnemonic(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if parseFile != "" {
		// #nosec G304 -- path supplied explicitly by the operator via --file
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return "", sigilerr.Wrap(err, "reading mnemonic file %q", parseFile)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return promptSingleMnemonic()
}

// promptSingleMnemonic falls back to the share prompt when neither a
// positional argument nor --file supplied the mnemonic to inspect.
func promptSingleMnemonic() (string, error) {
	shares, err := promptSharesFn()
	if err != nil {
		return "", err
	}
	return shares[0], nil
}
