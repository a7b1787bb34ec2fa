package wallet

import (
	"github.com/tyler-smith/go-bip39"
)

// MnemonicFromEntropy encodes raw entropy as a BIP-39 mnemonic phrase.
// Entropy length must be one of the sizes BIP-39 supports (16, 20, 24,
// 28, or 32 bytes); a SLIP-39 recovered secret of 16 or 32 bytes fits
// directly.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	return bip39.NewMnemonic(entropy)
}

// EntropyFromMnemonic decodes a BIP-39 mnemonic phrase back to its
// underlying entropy, suitable for use as a SLIP-39 master secret.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	normalized := NormalizeMnemonicInput(mnemonic)
	if err := ValidateMnemonic(normalized); err != nil {
		return nil, err
	}
	return bip39.EntropyFromMnemonic(normalized)
}
