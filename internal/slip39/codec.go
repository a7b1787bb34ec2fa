package slip39

import (
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// codec.go assembles a Share's header words, payload words and checksum
// trailer into the full word sequence a mnemonic encodes, and reverses
// that process while validating every invariant the scheme requires.

// encodeWords renders a Share into its full mnemonic word sequence:
// a 4-word header, the payload re-expanded into 10-bit words, and a
// 3-word checksum trailer.
func encodeWords(s Share) []uint16 {
	h := packHeader(s.header())
	payload := bytesToWords(s.Value)

	words := make([]uint16, 0, len(h)+len(payload)+checksumLengthWords)
	words = append(words, h[:]...)
	words = append(words, payload...)

	checksum := createChecksum(words)
	words = append(words, checksum[:]...)
	return words
}

// decodeWords parses a full mnemonic word sequence back into a Share,
// verifying its checksum and reconstructing the byte-aligned payload.
func decodeWords(words []uint16) (Share, error) {
	if len(words) < minMnemonicLengthWords {
		return Share{}, sigilerr.Wrap(sigilerr.ErrNotEnoughMnemonicWords,
			"mnemonic has %d words, need at least %d", len(words), minMnemonicLengthWords)
	}

	if !verifyChecksum(words) {
		return Share{}, sigilerr.ErrInvalidMnemonicChecksum
	}

	var headerWords [4]uint16
	copy(headerWords[:], words[:4])
	h := unpackHeader(headerWords)

	if h.groupThreshold > h.groupCount {
		return Share{}, sigilerr.Wrap(sigilerr.ErrInvalidMnemonicGroupThreshold,
			"group threshold %d exceeds group count %d", h.groupThreshold, h.groupCount)
	}

	payloadWords := words[4 : len(words)-checksumLengthWords]
	byteLength := (len(payloadWords) * radixBits) / 8
	bufLength := (len(payloadWords)*radixBits + 7) / 8

	// Re-expanding N words of 10 bits each can represent up to 10*N bits,
	// which is not generally a multiple of 8; size the scratch buffer for
	// the full bit width (never overflows FillBytes) and keep only the
	// low byteLength bytes, discarding the high padding bits the scheme
	// reserves for alignment.
	full := wordsToBytes(payloadWords, bufLength)
	value := full[bufLength-byteLength:]

	if len(value) < minStrengthBytes {
		return Share{}, sigilerr.Wrap(sigilerr.ErrSecretTooShort,
			"decoded share value is %d bytes, need at least %d", len(value), minStrengthBytes)
	}
	if len(value)%2 != 0 {
		return Share{}, sigilerr.ErrInvalidSecretLength
	}

	return Share{
		Identifier:        h.identifier,
		IterationExponent: h.iterationExponent,
		GroupIndex:        h.groupIndex,
		GroupThreshold:    h.groupThreshold,
		GroupCount:        h.groupCount,
		MemberIndex:       h.memberIndex,
		MemberThreshold:   h.memberThreshold,
		Value:             value,
	}, nil
}
