package slip39

import (
	"sort"

	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// combine.go is the top-level recover engine: it decodes a pile of
// mnemonic strings, buckets them by group, reconstructs each group share
// that has met its member threshold, reconstructs the encrypted master
// secret from however many groups met the overall group threshold, and
// decrypts it.

// CombineMnemonics reconstructs the original master secret from a set of
// mnemonics produced by GenerateMnemonics, given the same passphrase.
//
// passwords, if non-nil, supplies one optional per-share password aligned
// by index with mnemonics; a share whose corresponding entry is non-empty
// is individually decrypted (the share-level analog of the passphrase)
// before it is bucketed with the rest. Pass nil when no share in the set
// was individually encrypted.
func CombineMnemonics(mnemonics []string, passphrase []byte, passwords []string) ([]byte, error) {
	if len(mnemonics) == 0 {
		return nil, sigilerr.ErrEmptyMnemonicSet
	}
	if passwords != nil && len(passwords) != len(mnemonics) {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidInput,
			"passwords has %d entries, need %d (one per mnemonic)", len(passwords), len(mnemonics))
	}
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}

	shares := make([]Share, 0, len(mnemonics))
	for i, m := range mnemonics {
		words, err := textToWords(m)
		if err != nil {
			return nil, err
		}
		share, err := decodeWords(words)
		if err != nil {
			return nil, err
		}
		if i < len(passwords) && passwords[i] != "" {
			if err := validatePassphrase([]byte(passwords[i])); err != nil {
				return nil, err
			}
			share.Value = decryptShare(share.Value, []byte(passwords[i]), share.IterationExponent, share.Identifier)
		}
		shares = append(shares, share)
	}

	first := shares[0]
	buckets := make(map[int]*groupBucket)

	for _, s := range shares {
		if s.Identifier != first.Identifier ||
			s.IterationExponent != first.IterationExponent ||
			s.GroupThreshold != first.GroupThreshold ||
			s.GroupCount != first.GroupCount ||
			len(s.Value) != len(first.Value) {
			return nil, sigilerr.ErrInvalidShareSet
		}

		b, ok := buckets[s.GroupIndex]
		if !ok {
			b = &groupBucket{memberThreshold: s.MemberThreshold, members: map[byte][]byte{}}
			buckets[s.GroupIndex] = b
		}
		if b.memberThreshold != s.MemberThreshold {
			return nil, sigilerr.ErrInvalidMemberThreshold
		}
		if _, dup := b.members[byte(s.MemberIndex)]; dup {
			return nil, sigilerr.Wrap(sigilerr.ErrDuplicateMemberIndex,
				"group %d member %d appears more than once", s.GroupIndex, s.MemberIndex)
		}
		b.members[byte(s.MemberIndex)] = s.Value
	}

	groupShares := make(map[byte][]byte)
	for gi, b := range buckets {
		if len(b.members) < b.memberThreshold {
			continue
		}
		selected := selectThreshold(b.members, b.memberThreshold)
		value, err := recoverSecret(b.memberThreshold, selected)
		if err != nil {
			return nil, err
		}
		groupShares[byte(gi)] = value
	}
	defer zeroShareMap(groupShares)

	if len(groupShares) < first.GroupThreshold {
		return nil, sigilerr.Wrap(sigilerr.ErrNotEnoughGroups,
			"only %d of %d required groups met their member threshold", len(groupShares), first.GroupThreshold)
	}

	selectedGroups := selectThreshold(groupShares, first.GroupThreshold)
	encryptedSecret, err := recoverSecret(first.GroupThreshold, selectedGroups)
	if err != nil {
		return nil, err
	}
	defer zero(encryptedSecret)

	return decryptMasterSecret(encryptedSecret, passphrase, first.IterationExponent, first.Identifier), nil
}

// selectThreshold deterministically picks the threshold-lowest-indexed
// entries from m, so recovery never depends on map iteration order and
// never does more interpolation work than the share layout requires.
func selectThreshold(m map[byte][]byte, threshold int) map[byte][]byte {
	indices := make([]byte, 0, len(m))
	for k := range m {
		indices = append(indices, k)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	out := make(map[byte][]byte, threshold)
	for _, idx := range indices[:threshold] {
		out[idx] = m[idx]
	}
	return out
}
