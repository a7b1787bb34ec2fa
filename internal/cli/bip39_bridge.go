package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/wallet"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// bip39Cmd groups commands that bridge BIP-39 recovery phrases and
// SLIP-39 master secrets.
var bip39Cmd = &cobra.Command{
	Use:   "bip39",
	Short: "Bridge between BIP-39 mnemonics and SLIP-39 master secrets",
	Long: `Commands for moving a secret between BIP-39's single-mnemonic wallet
recovery phrases and SLIP-39's split-share master secrets.`,
}

var (
	bridgeHexEntropy string
	bridgeMnemonic   string
)

var bip39BridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Convert between a BIP-39 mnemonic and raw entropy",
	Long: `Converts a BIP-39 recovery phrase to its underlying entropy so it can
be used as a SLIP-39 master secret (--mnemonic), or converts raw entropy
back into a BIP-39 mnemonic (--hex-entropy).

At most one of --mnemonic or --hex-entropy may be given; if neither is
given, the BIP-39 mnemonic is read interactively.`,
	Example: `  sigil bip39 bridge --mnemonic "abandon abandon abandon ..."
  sigil bip39 bridge --hex-entropy 00000000000000000000000000000000`,
	RunE: runBIP39Bridge,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command/flag registration
func init() {
	bip39Cmd.GroupID = "mnemonic"
	rootCmd.AddCommand(bip39Cmd)
	bip39Cmd.AddCommand(bip39BridgeCmd)

	bip39BridgeCmd.Flags().StringVar(&bridgeMnemonic, "mnemonic", "", "BIP-39 mnemonic to convert to entropy")
	bip39BridgeCmd.Flags().StringVar(&bridgeHexEntropy, "hex-entropy", "", "raw entropy, as hex, to convert to a BIP-39 mnemonic")
	bip39BridgeCmd.MarkFlagsMutuallyExclusive("mnemonic", "hex-entropy")
}

func runBIP39Bridge(cmd *cobra.Command, _ []string) error {
	switch {
	case bridgeHexEntropy != "":
		return bridgeEntropyToMnemonic(cmd)
	case bridgeMnemonic != "":
		return bridgeMnemonicToEntropy(cmd, bridgeMnemonic)
	default:
		mnemonic, err := promptBIP39Fn()
		if err != nil {
			return err
		}
		return bridgeMnemonicToEntropy(cmd, mnemonic)
	}
}

func bridgeEntropyToMnemonic(cmd *cobra.Command) error {
	entropy, err := hexToBytes(bridgeHexEntropy)
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(entropy)

	mnemonic, err := wallet.MnemonicFromEntropy(entropy)
	if err != nil {
		return sigilerr.Wrap(sigilerr.ErrInvalidInput, "entropy is not a valid BIP-39 length: %v", err)
	}

	return printBridgeResult(cmd, map[string]any{"bip39_mnemonic": mnemonic}, "BIP-39 mnemonic: %s\n", mnemonic)
}

func bridgeMnemonicToEntropy(cmd *cobra.Command, mnemonic string) error {
	entropy, err := wallet.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return sigilerr.Wrap(sigilerr.ErrInvalidMnemonicChecksum, "%v", err)
	}
	defer wallet.ZeroBytes(entropy)

	hexEntropy := bytesToHex(entropy)
	return printBridgeResult(cmd, map[string]any{"hex_entropy": hexEntropy}, "Entropy (hex): %s\n", hexEntropy)
}

func printBridgeResult(cmd *cobra.Command, jsonResult map[string]any, format string, args ...any) error {
	cc := GetCmdContext(cmd)
	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		return cc.Fmt.Print(jsonResult)
	}
	cmd.Printf(format, args...)
	return nil
}
