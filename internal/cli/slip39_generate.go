package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/slip39"
	"github.com/mrz1836/sigil/internal/wallet"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

var (
	generateGroupThreshold int
	generateGroups         []string
	generateGroupPasswords []string
	generateExponent       int
	generateHexSecret      string
	generateBits           int
	generateNoPassphrase   bool
	generateOutputFile     string
)

var slip39GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Split a master secret into SLIP-39 mnemonic shares",
	Long: `Splits a master secret into a two-level SLIP-39 share set: a
configurable number of groups, each with its own member threshold, must
each meet their member threshold, and enough groups must do so to meet
the overall group threshold, to recover the secret.

If --hex-secret is not given, a random secret of --bits bits is
generated. The secret is never printed; only the resulting mnemonics are.`,
	Example: `  sigil slip39 generate --groups 3-of-5 --group-threshold 1
  sigil slip39 generate --groups 2-of-3,3-of-5 --group-threshold 2 --bits 256`,
	RunE: runSlip39Generate,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command/flag registration
func init() {
	slip39Cmd.AddCommand(slip39GenerateCmd)

	slip39GenerateCmd.Flags().IntVar(&generateGroupThreshold, "group-threshold", 0,
		"number of groups that must each meet their member threshold (default: from config)")
	slip39GenerateCmd.Flags().StringSliceVar(&generateGroups, "groups", nil,
		"one or more group specs as \"threshold-of-count\" (e.g. 3-of-5)")
	slip39GenerateCmd.Flags().StringArrayVar(&generateGroupPasswords, "group-passwords", nil,
		"per-group, comma-separated per-member passwords, aligned by position with --groups "+
			"(repeatable, one entry per group; empty entries mean that member has no password)")
	slip39GenerateCmd.Flags().IntVar(&generateExponent, "exponent", -1,
		"iteration exponent controlling passphrase KDF cost (default: from config)")
	slip39GenerateCmd.Flags().StringVar(&generateHexSecret, "hex-secret", "",
		"master secret as a hex string (default: randomly generated)")
	slip39GenerateCmd.Flags().IntVar(&generateBits, "bits", 128,
		"bit length of the randomly generated master secret, when --hex-secret is not given")
	slip39GenerateCmd.Flags().BoolVar(&generateNoPassphrase, "no-passphrase", false,
		"skip the passphrase prompt and encrypt with an empty passphrase")
	slip39GenerateCmd.Flags().StringVar(&generateOutputFile, "output-file", "",
		"write mnemonics to this file instead of stdout")
}

func runSlip39Generate(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	groupThreshold, groups, exponent, err := resolveGenerateDefaults(cc)
	if err != nil {
		return err
	}

	secret, err := resolveMasterSecret()
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(secret)

	passphrase, err := resolveGeneratePassphrase()
	if err != nil {
		return err
	}
	defer wallet.ZeroBytes(passphrase)

	groupMnemonics, err := slip39.GenerateMnemonics(groupThreshold, groups, secret, passphrase, exponent)
	if err != nil {
		return err
	}

	return writeGeneratedShares(cmd, cc, groupMnemonics)
}

func resolveGenerateDefaults(cc *CommandContext) (int, []slip39.GroupParams, int, error) {
	defaults := config.Slip39Config{DefaultGroupThreshold: 1, DefaultMemberThreshold: 2, DefaultMemberCount: 3}
	if cc != nil && cc.Cfg != nil {
		defaults = cc.Cfg.GetSlip39Defaults()
	}

	groupThreshold := generateGroupThreshold
	if groupThreshold == 0 {
		groupThreshold = defaults.DefaultGroupThreshold
	}

	exponent := generateExponent
	if exponent < 0 {
		exponent = defaults.DefaultIterationExponent
	}

	var groups []slip39.GroupParams
	if len(generateGroups) == 0 {
		groups = []slip39.GroupParams{{
			MemberThreshold: defaults.DefaultMemberThreshold,
			MemberCount:     defaults.DefaultMemberCount,
		}}
	} else {
		for _, spec := range generateGroups {
			g, err := parseGroupSpec(spec)
			if err != nil {
				return 0, nil, 0, err
			}
			groups = append(groups, g)
		}
	}

	for gi := range groups {
		if gi >= len(generateGroupPasswords) || generateGroupPasswords[gi] == "" {
			continue
		}
		groups[gi].Passwords = strings.Split(generateGroupPasswords[gi], ",")
	}

	return groupThreshold, groups, exponent, nil
}

func resolveMasterSecret() ([]byte, error) {
	if generateHexSecret != "" {
		return hexToBytes(generateHexSecret)
	}

	byteLen := generateBits / 8
	if byteLen < 1 || generateBits%8 != 0 {
		return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "--bits must be a positive multiple of 8")
	}

	return crypto.RandomBytes(byteLen)
}

func resolveGeneratePassphrase() ([]byte, error) {
	if generateNoPassphrase {
		return nil, nil
	}
	return promptPassphraseFn()
}

func writeGeneratedShares(cmd *cobra.Command, cc *CommandContext, groupMnemonics [][]string) error {
	if generateOutputFile != "" {
		var sb strings.Builder
		for gi, mnemonics := range groupMnemonics {
			for _, m := range mnemonics {
				fmt.Fprintf(&sb, "# group %d\n%s\n", gi, m)
			}
		}
		return os.WriteFile(generateOutputFile, []byte(sb.String()), 0o600)
	}

	if cc != nil && cc.Fmt != nil && cc.Fmt.Format() == output.FormatJSON {
		return cc.Fmt.Print(map[string]any{"groups": groupMnemonics})
	}

	for gi, mnemonics := range groupMnemonics {
		cmd.Printf("Group %d:\n", gi)
		for _, m := range mnemonics {
			cmd.Printf("  %s\n", m)
		}
	}
	return nil
}
