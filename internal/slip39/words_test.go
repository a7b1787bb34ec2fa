package slip39

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesWordsRoundtrip(t *testing.T) {
	t.Parallel()

	lengths := []int{2, 16, 17, 32, 33}
	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*31 + 7)
		}

		words := bytesToWords(data)
		back := wordsToBytes(words, n)
		assert.True(t, bytes.Equal(data, back), "length %d round-trip mismatch", n)
	}
}

func TestWordlistUniqueAndComplete(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, radix)
	for i := 0; i < radix; i++ {
		w := wordAt(uint16(i))
		assert.NotEmpty(t, w)
		assert.False(t, seen[w], "duplicate word %q at index %d", w, i)
		seen[w] = true

		idx, ok := wordIndex(w)
		assert.True(t, ok)
		assert.Equal(t, uint16(i), idx)
	}
	assert.Len(t, seen, radix)
}

func TestTextWordsRoundtrip(t *testing.T) {
	t.Parallel()

	words := []uint16{0, 1, 1023, 500}
	text := wordsToText(words)
	back, err := textToWords(text)
	assert.NoError(t, err)
	assert.Equal(t, words, back)
}

func TestTextToWords_UnknownWord(t *testing.T) {
	t.Parallel()
	_, err := textToWords("not-a-real-word")
	assert.Error(t, err)
}
