package slip39

// constants.go collects the fixed parameters of the wordlist-based
// sharing scheme: bit widths of each packed field, the special share
// indices reserved for the digest and the secret itself, and the
// Feistel-cipher tuning values.

const (
	// radixBits is the number of bits a single wordlist word encodes.
	radixBits = 10
	// radix is the size of the wordlist (2^radixBits).
	radix = 1 << radixBits

	// idLengthBits is the width of the random set identifier field.
	idLengthBits = 15
	// iterationExpLengthBits is the width of the iteration exponent field.
	iterationExpLengthBits = 5
	// idExpLengthWords is how many words the id+iteration-exponent fields
	// occupy once packed (ceil((idLengthBits+iterationExpLengthBits)/radixBits)).
	idExpLengthWords = 2

	// checksumLengthWords is the number of trailing checksum words.
	checksumLengthWords = 3

	// metadataLengthWords is the fixed header+checksum overhead of every
	// mnemonic: identifier/iteration-exponent words, the group/member word,
	// the threshold/index word, and the checksum trailer.
	metadataLengthWords = idExpLengthWords + 2 + checksumLengthWords

	// digestLengthBytes is the width of the digest stored in the digest share.
	digestLengthBytes = 4

	// minStrengthBits is the minimum allowed master secret strength.
	minStrengthBits = 128
	// minStrengthBytes is minStrengthBits expressed in bytes.
	minStrengthBytes = minStrengthBits / 8

	// minMnemonicLengthWords is the minimum valid length of a mnemonic.
	minMnemonicLengthWords = metadataLengthWords + (minStrengthBits+radixBits-1)/radixBits

	// maxShareCount is the largest count representable in a 4-bit group or
	// member count/index field (count-1 or index must fit in 4 bits).
	maxShareCount = 16

	// baseIterationCount sets the work factor for the master-secret cipher;
	// actual round iterations scale with the stored iteration exponent.
	baseIterationCount = 10000
	// roundCount is the number of Feistel rounds the cipher runs.
	roundCount = 4

	// secretIndex and digestIndex are the two reserved x-coordinates used
	// by the digest-share construction: the secret itself sits at x=255,
	// and a digest of the secret plus random padding sits at x=254.
	secretIndex = 255
	digestIndex = 254
)

// customizationString salts both the RS1024 checksum and the Feistel
// cipher's PBKDF2 derivation so that shares from this scheme cannot be
// confused with, or recombined with, shares from an unrelated one.
var customizationString = []byte("shamir") //nolint:gochecknoglobals // fixed domain-separation constant
