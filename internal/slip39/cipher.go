package slip39

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"

	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// cipher.go implements the four-round Feistel network that encrypts the
// master secret before it is split into shares, and decrypts it again
// during recovery. Each round's pseudorandom function is PBKDF2-HMAC-
// SHA256, scaled by the mnemonic's stored iteration exponent, which is
// why the real dependency here (golang.org/x/crypto/pbkdf2) comes from
// the same extended-crypto module the rest of the codebase already
// depends on rather than a hand-rolled KDF loop.

// roundIterations returns the PBKDF2 iteration count for Feistel round i
// given the mnemonic's iteration exponent e.
func roundIterations(e int) int {
	return (baseIterationCount << uint(e)) / roundCount
}

// encryptMasterSecret runs the forward Feistel network, turning a plain
// master secret into the value that gets split into shares.
func encryptMasterSecret(masterSecret, passphrase []byte, iterationExponent int, identifier uint16) []byte {
	return feistel(masterSecret, passphrase, iterationExponent, identifier, false)
}

// decryptMasterSecret runs the Feistel network in reverse, recovering the
// plain master secret from the value reconstructed out of shares.
func decryptMasterSecret(encryptedSecret, passphrase []byte, iterationExponent int, identifier uint16) []byte {
	return feistel(encryptedSecret, passphrase, iterationExponent, identifier, true)
}

// encryptShare runs the same Feistel network over a single member share's
// value, keyed by a per-member password rather than the group passphrase.
// It is the share-level analog of encryptMasterSecret: a length-preserving
// permutation binding the share to (iterationExponent, identifier, password).
func encryptShare(value, password []byte, iterationExponent int, identifier uint16) []byte {
	return feistel(value, password, iterationExponent, identifier, false)
}

// decryptShare reverses encryptShare.
func decryptShare(value, password []byte, iterationExponent int, identifier uint16) []byte {
	return feistel(value, password, iterationExponent, identifier, true)
}

func feistel(secret, passphrase []byte, iterationExponent int, identifier uint16, reverse bool) []byte {
	half := len(secret) / 2
	left := append([]byte(nil), secret[:half]...)
	right := append([]byte(nil), secret[half:]...)

	salt := make([]byte, 0, len(customizationString)+2)
	salt = append(salt, customizationString...)
	salt = binary.BigEndian.AppendUint16(salt, identifier)

	order := [roundCount]int{0, 1, 2, 3}
	if reverse {
		order = [roundCount]int{3, 2, 1, 0}
	}

	for _, i := range order {
		f := roundFunction(byte(i), passphrase, iterationExponent, salt, right)
		newRight := xorBytes(left, f)
		left = right
		right = newRight
	}

	out := make([]byte, 0, len(secret))
	out = append(out, right...)
	out = append(out, left...)
	return out
}

// roundFunction derives a pseudorandom string the same length as r by
// running PBKDF2-HMAC-SHA256 over the round index and passphrase, salted
// with the fixed salt concatenated with r.
func roundFunction(roundIndex byte, passphrase []byte, iterationExponent int, salt, r []byte) []byte {
	password := make([]byte, 0, 1+len(passphrase))
	password = append(password, roundIndex)
	password = append(password, passphrase...)

	material := make([]byte, 0, len(salt)+len(r))
	material = append(material, salt...)
	material = append(material, r...)

	return pbkdf2.Key(password, material, roundIterations(iterationExponent), len(r), sha256.New)
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// validatePassphrase ensures a passphrase is empty or printable ASCII, the
// character set the scheme guarantees round-trips identically across
// implementations.
func validatePassphrase(passphrase []byte) error {
	for _, b := range passphrase {
		if b < 0x20 || b > 0x7e {
			return sigilerr.ErrInvalidPassphrase
		}
	}
	return nil
}
