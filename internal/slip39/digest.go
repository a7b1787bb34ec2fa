package slip39

import (
	"crypto/hmac"
	"crypto/sha256"
)

// digest.go computes the 4-byte integrity digest embedded in a group's
// (or the top-level set's) digest share. There is no ecosystem library
// offering a different HMAC-SHA256 construction than the standard one;
// crypto/hmac and crypto/sha256 are the universal primitives even the
// broader crypto ecosystem (including golang.org/x/crypto) builds on, so
// this file uses them directly.

// digestOf returns the truncated HMAC-SHA256 digest of secret, keyed by
// randomPart, as defined by the scheme: digest = HMAC(key=randomPart,
// msg=secret)[:digestLengthBytes].
func digestOf(randomPart, secret []byte) []byte {
	mac := hmac.New(sha256.New, randomPart)
	mac.Write(secret)
	sum := mac.Sum(nil)
	return sum[:digestLengthBytes]
}
