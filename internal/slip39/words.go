package slip39

import "math/big"

// words.go converts between a byte payload and a sequence of 10-bit
// "words" (values in [0, radix)). The payload is treated as one large
// big-endian integer and re-expanded in base-1024, the same technique
// used elsewhere in the wordlist-mnemonic ecosystem for base conversion
// between 8-bit bytes and 11-bit (BIP-39) or 10-bit (here) word indices.

// bytesToWords re-expands data into base-radix digits, producing
// ceil(len(data)*8/radixBits) words; the value is left-padded with zero
// bits so that the total bit width is a multiple of radixBits.
func bytesToWords(data []byte) []uint16 {
	bitLength := len(data) * 8
	wordCount := (bitLength + radixBits - 1) / radixBits

	value := new(big.Int).SetBytes(data)
	words := make([]uint16, wordCount)
	mod := big.NewInt(radix)
	rem := new(big.Int)

	for i := wordCount - 1; i >= 0; i-- {
		value.DivMod(value, mod, rem)
		words[i] = uint16(rem.Int64())
	}

	return words
}

// wordsToBytes is the inverse of bytesToWords: it packs wordCount base-
// radix digits back into a byte slice of the requested length. It panics
// (via FillBytes) if the value does not fit in byteLength bytes;
// decodeWords sizes its buffer for the full bit width and drops the
// padding bits without checking that they are zero.
func wordsToBytes(words []uint16, byteLength int) []byte {
	value := new(big.Int)
	mult := big.NewInt(radix)

	for _, w := range words {
		value.Mul(value, mult)
		value.Add(value, big.NewInt(int64(w)))
	}

	out := make([]byte, byteLength)
	return value.FillBytes(out)
}
