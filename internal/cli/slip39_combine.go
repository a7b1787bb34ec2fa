package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/slip39"
	"github.com/mrz1836/sigil/internal/wallet"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

var (
	combineShares         []string
	combineFile           string
	combineNoPassphrase   bool
	combineToBIP39        bool
	combineSharePasswords []string
)

var slip39CombineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Recover a master secret from SLIP-39 mnemonic shares",
	Long: `Reads a qualifying set of SLIP-39 mnemonic shares — via --share,
--file, or an interactive prompt when neither is given — and recombines
them into the original master secret, printed as hex.

Each run checks a rate limiter keyed by the share set's identifier
before attempting recovery. The limiter's state lasts only for the one
process, so separate invocations are not throttled against each other.`,
	Example: `  sigil slip39 combine --share "amber-anchor arctic-arrow azure-badge..." --share "amber-anchor arctic-arrow bold-basin..."
  sigil slip39 combine --file shares.txt`,
	RunE: runSlip39Combine,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command/flag registration
func init() {
	slip39Cmd.AddCommand(slip39CombineCmd)

	slip39CombineCmd.Flags().StringSliceVar(&combineShares, "share", nil, "a mnemonic share (repeatable)")
	slip39CombineCmd.Flags().StringVar(&combineFile, "file", "", "path to a file of mnemonic shares, one per line")
	slip39CombineCmd.Flags().BoolVar(&combineNoPassphrase, "no-passphrase", false, "skip the passphrase prompt and decrypt with an empty passphrase")
	slip39CombineCmd.Flags().BoolVar(&combineToBIP39, "to-bip39", false, "also print the recovered secret as a BIP-39 mnemonic")
	slip39CombineCmd.Flags().StringArrayVar(&combineSharePasswords, "share-password", nil,
		"per-share password, aligned by position with --share (repeatable; use \"\" for a share with no password)")
}

func runSlip39Combine(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	mnemonics, err := resolveCombineShares()
	if err != nil {
		return err
	}

	if cc != nil && cc.RateLimiter != nil {
		if info, parseErr := slip39.ParseMnemonic(mnemonics[0]); parseErr == nil {
			if !cc.RateLimiter.Allow(info.Identifier) {
				return sigilerr.WithSuggestion(sigilerr.ErrAuthentication, "too many recent combine attempts for this share set, slow down")
			}
		}
	}

	passphrase, err := resolveCombinePassphrase()
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(passphrase)

	secret, err := slip39.CombineMnemonics(mnemonics, passphrase, resolveCombineSharePasswords(len(mnemonics)))
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(secret)

	return writeCombinedSecret(cmd, cc, secret)
}

func resolveCombineShares() ([]string, error) {
	if len(combineShares) > 0 {
		return combineShares, nil
	}

	if combineFile != "" {
		// #nosec G304 -- path supplied explicitly by the operator via --file
		data, err := os.ReadFile(combineFile)
		if err != nil {
			return nil, sigilerr.Wrap(err, "reading shares file %q", combineFile)
		}
		var shares []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			shares = append(shares, line)
		}
		if len(shares) == 0 {
			return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "shares file contains no mnemonics")
		}
		return shares, nil
	}

	return promptSharesFn()
}

// resolveCombineSharePasswords returns the --share-password values aligned
// with the resolved mnemonic list, or nil if none were given. n is the
// number of mnemonics actually being combined.
func resolveCombineSharePasswords(n int) []string {
	if len(combineSharePasswords) == 0 {
		return nil
	}
	passwords := make([]string, n)
	copy(passwords, combineSharePasswords)
	return passwords
}

func resolveCombinePassphrase() ([]byte, error) {
	if combineNoPassphrase {
		return nil, nil
	}
	return promptPasswordFn("Enter passphrase (leave blank for none): ")
}

func writeCombinedSecret(cmd *cobra.Command, cc *CommandContext, secret []byte) error {
	hexSecret := bytesToHex(secret)

	var bip39Mnemonic string
	if combineToBIP39 {
		m, err := wallet.MnemonicFromEntropy(secret)
		if err != nil {
			return err
		}
		bip39Mnemonic = m
	}

	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		result := map[string]any{"secret_hex": hexSecret}
		if bip39Mnemonic != "" {
			result["bip39_mnemonic"] = bip39Mnemonic
		}
		return cc.Fmt.Print(result)
	}

	cmd.Printf("Recovered secret: %s\n", hexSecret)
	if bip39Mnemonic != "" {
		cmd.Printf("BIP-39 mnemonic:  %s\n", bip39Mnemonic)
	}
	return nil
}
