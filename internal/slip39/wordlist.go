package slip39

import "strings"

// wordlist.go provides the 1024-entry dictionary used to render share
// words as text and parse them back. The scheme requires that the
// dictionary have exactly radix (1024) unique lowercase entries with a
// stable index; it places no further constraint on the words themselves.
// The retrieval pack that grounds this module did not carry the original
// dictionary's word list, so this package builds its own 1024-entry
// dictionary deterministically, as the outer product of two 32-word
// lists. The pairing guarantees uniqueness by construction instead of by
// transcribing 1024 literal strings.

//nolint:gochecknoglobals // dictionary halves are fixed data
var wordlistAdjectives = [32]string{
	"amber", "arctic", "azure", "bold", "brave", "bright", "calm", "civic",
	"coral", "crisp", "dense", "desert", "dusty", "eager", "early", "edgy",
	"fair", "fast", "fine", "fresh", "giant", "gentle", "golden", "grand",
	"humid", "ivory", "jovial", "keen", "lucid", "misty", "noble", "vivid",
}

//nolint:gochecknoglobals // dictionary halves are fixed data
var wordlistNouns = [32]string{
	"anchor", "arrow", "badge", "basin", "beacon", "bison", "canyon", "cedar",
	"cliff", "comet", "corner", "crown", "delta", "ember", "falcon", "forest",
	"garden", "harbor", "island", "jungle", "ladder", "meadow", "mirror", "orchid",
	"pebble", "quarry", "ridge", "shadow", "summit", "temple", "valley", "willow",
}

//nolint:gochecknoglobals // computed once at package init, read-only thereafter
var (
	wordlist     [radix]string
	wordlistByID map[string]uint16
)

func init() {
	wordlistByID = make(map[string]uint16, radix)
	for a, adj := range wordlistAdjectives {
		for n, noun := range wordlistNouns {
			idx := uint16(a*len(wordlistNouns) + n)
			w := adj + "-" + noun
			wordlist[idx] = w
			wordlistByID[w] = idx
		}
	}
}

// wordAt returns the dictionary word for index i.
func wordAt(i uint16) string {
	return wordlist[i]
}

// wordIndex returns the dictionary index for word, and whether it exists.
func wordIndex(word string) (uint16, bool) {
	idx, ok := wordlistByID[strings.ToLower(strings.TrimSpace(word))]
	return idx, ok
}

// wordsToText renders a slice of word indices as a space-separated mnemonic.
func wordsToText(words []uint16) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = wordAt(w)
	}
	return strings.Join(parts, " ")
}

// textToWords parses a space-separated mnemonic into word indices.
func textToWords(text string) ([]uint16, error) {
	fields := strings.Fields(text)
	words := make([]uint16, len(fields))
	for i, f := range fields {
		idx, ok := wordIndex(f)
		if !ok {
			return nil, newInvalidWordError(f)
		}
		words[i] = idx
	}
	return words, nil
}
