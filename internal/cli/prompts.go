package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/sigil/internal/wallet"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// Function variables wrapping the prompt implementations below, so tests
// can substitute a mock without touching the terminal.
//
//nolint:gochecknoglobals // indirection exists purely for testability
var (
	promptPasswordFn   = promptPassword
	promptPassphraseFn = promptPassphrase
	promptConfirmFn    = func() bool { return promptConfirmation("Continue?") }
	promptSharesFn     = promptMnemonicShares
	promptHexSecretFn  = promptHexSecret
	promptBIP39Fn      = promptBIP39Mnemonic
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// promptPassphrase prompts for an optional SLIP-39 passphrase with
// confirmation. An empty passphrase is valid and returned as such.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassphrase() ([]byte, error) {
	outln(os.Stderr, "\nPassphrase (optional, extends the encryption; leave blank for none):")

	passphrase, err := promptPasswordFn("Enter passphrase: ")
	if err != nil {
		return nil, err
	}

	if len(passphrase) == 0 {
		return passphrase, nil
	}

	confirm, err := promptPasswordFn("Confirm passphrase: ")
	if err != nil {
		wallet.ZeroBytes(passphrase)
		return nil, err
	}
	defer wallet.ZeroBytes(confirm)

	if string(passphrase) != string(confirm) {
		wallet.ZeroBytes(passphrase)
		return nil, sigilerr.WithSuggestion(
			sigilerr.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	return passphrase, nil
}

// promptConfirmation asks the user to confirm a yes/no question.
func promptConfirmation(question string) bool {
	out(os.Stderr, "\n%s [y/N]: ", question)

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// promptMnemonicShares interactively reads whitespace-joined mnemonic
// share phrases, one per line, until the user enters a blank line.
func promptMnemonicShares() ([]string, error) {
	outln(os.Stderr, "Enter mnemonic shares, one per line. Blank line to finish:")

	var shares []string
	scanner := bufio.NewScanner(os.Stdin)
	for {
		out(os.Stderr, "Share %d: ", len(shares)+1)

		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		shares = append(shares, line)
	}

	if len(shares) == 0 {
		return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "no mnemonic shares provided")
	}
	return shares, nil
}

// promptHexSecret prompts for a hex-encoded master secret interactively.
func promptHexSecret() (string, error) {
	outln(os.Stderr, "Enter master secret as hex:")

	var input string
	_, err := fmt.Scanln(&input)
	if err != nil {
		return "", sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "no input provided")
	}
	return strings.TrimSpace(input), nil
}

// promptBIP39Mnemonic reads words for a BIP-39 mnemonic (12 or 24 words).
// It returns as soon as the first 12 or 24 words form a valid mnemonic;
// otherwise it returns the words read, unvalidated, once input ends or
// 24 words have been read.
func promptBIP39Mnemonic() (string, error) {
	outln(os.Stderr, "Enter BIP-39 mnemonic (12 or 24 words, all on one line):")

	var words []string
	for i := 0; i < 24; i++ {
		var word string
		if _, err := fmt.Scan(&word); err != nil {
			break
		}
		words = append(words, word)

		mnemonic := strings.Join(words, " ")
		if (len(words) == 12 || len(words) == 24) && wallet.ValidateMnemonic(mnemonic) == nil {
			return mnemonic, nil
		}
	}

	if len(words) > 0 {
		return strings.Join(words, " "), nil
	}
	return "", sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "no input provided")
}
