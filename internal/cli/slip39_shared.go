package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/slip39"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// slip39Cmd groups the mnemonic split/recover/inspect subcommands.
var slip39Cmd = &cobra.Command{
	Use:   "slip39",
	Short: "Split, recover, and inspect SLIP-39 mnemonic shares",
	Long: `Commands for splitting a master secret into SLIP-39 group/member
mnemonic shares, recombining a qualifying set of shares back into the
secret, and inspecting a single share's metadata.`,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	slip39Cmd.GroupID = "mnemonic"
	rootCmd.AddCommand(slip39Cmd)
}

// parseGroupSpec parses a "threshold-of-count" string, e.g. "3-of-5",
// into a GroupParams.
func parseGroupSpec(spec string) (slip39.GroupParams, error) {
	parts := strings.SplitN(spec, "-of-", 2)
	if len(parts) != 2 {
		return slip39.GroupParams{}, sigilerr.WithSuggestion(
			sigilerr.ErrInvalidInput,
			fmt.Sprintf("group spec %q must look like \"threshold-of-count\", e.g. \"3-of-5\"", spec),
		)
	}

	threshold, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return slip39.GroupParams{}, sigilerr.Wrap(sigilerr.ErrInvalidInput, "invalid threshold in group spec %q", spec)
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return slip39.GroupParams{}, sigilerr.Wrap(sigilerr.ErrInvalidInput, "invalid count in group spec %q", spec)
	}

	return slip39.GroupParams{MemberThreshold: threshold, MemberCount: count}, nil
}

// hexToBytes decodes a hex string into bytes, wrapping decode errors as
// a sigil invalid-input error.
func hexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "0x")

	if len(s)%2 != 0 {
		return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "hex string must have an even number of digits")
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		b, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, sigilerr.Wrap(sigilerr.ErrInvalidInput, "invalid hex digit at position %d", i*2)
		}
		out[i] = byte(b)
	}
	return out, nil
}

// bytesToHex renders bytes as a lowercase hex string.
func bytesToHex(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
