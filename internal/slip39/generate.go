package slip39

import (
	"github.com/mrz1836/sigil/internal/crypto"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// generate.go is the top-level split engine: it validates a requested
// group/member layout, encrypts the master secret, splits it into group
// shares, splits each group share into member shares, and renders every
// member share as mnemonic text.

// GenerateMnemonics splits masterSecret into a two-level share set:
// groupThreshold of the groups described by groups must each meet their
// own member threshold to reconstruct the secret. Returns one []string
// of mnemonics per group, in group order.
func GenerateMnemonics(groupThreshold int, groups []GroupParams, masterSecret, passphrase []byte, iterationExponent int) ([][]string, error) {
	defer zeroAll(masterSecret)

	if len(masterSecret)*8 < minStrengthBits {
		return nil, sigilerr.Wrap(sigilerr.ErrSecretTooShort,
			"master secret is %d bits, need at least %d", len(masterSecret)*8, minStrengthBits)
	}
	if len(masterSecret)%2 != 0 {
		return nil, sigilerr.ErrInvalidSecretLength
	}
	if iterationExponent < 0 || iterationExponent >= 1<<iterationExpLengthBits {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidInput,
			"iteration exponent %d must be between 0 and %d", iterationExponent, 1<<iterationExpLengthBits-1)
	}
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}
	if len(groups) == 0 || len(groups) > maxShareCount {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidGroupThreshold,
			"group count %d must be between 1 and %d", len(groups), maxShareCount)
	}
	if groupThreshold < 1 || groupThreshold > len(groups) {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidGroupThreshold,
			"group threshold %d must be between 1 and %d", groupThreshold, len(groups))
	}
	for i, g := range groups {
		if g.MemberCount < 1 || g.MemberCount > maxShareCount || g.MemberThreshold < 1 || g.MemberThreshold > g.MemberCount {
			return nil, sigilerr.Wrap(sigilerr.ErrInvalidMemberThreshold,
				"group %d: member threshold %d must be between 1 and member count %d", i, g.MemberThreshold, g.MemberCount)
		}
		if g.MemberThreshold == 1 && g.MemberCount != 1 {
			return nil, sigilerr.Wrap(sigilerr.ErrInvalidSingletonMember,
				"group %d: member threshold 1 requires exactly one member share, got %d", i, g.MemberCount)
		}
		if g.Passwords != nil && len(g.Passwords) != g.MemberCount {
			return nil, sigilerr.Wrap(sigilerr.ErrInvalidInput,
				"group %d: passwords has %d entries, need %d (one per member)", i, len(g.Passwords), g.MemberCount)
		}
		for _, pw := range g.Passwords {
			if err := validatePassphrase([]byte(pw)); err != nil {
				return nil, err
			}
		}
	}

	identifierBytes, err := crypto.RandomBytes(2)
	if err != nil {
		return nil, sigilerr.Wrap(err, "generating set identifier")
	}
	identifier := (uint16(identifierBytes[0])<<8 | uint16(identifierBytes[1])) & ((1 << idLengthBits) - 1)

	encryptedSecret := encryptMasterSecret(masterSecret, passphrase, iterationExponent, identifier)
	defer zero(encryptedSecret)

	groupShares, err := splitSecret(groupThreshold, len(groups), encryptedSecret)
	if err != nil {
		return nil, err
	}
	defer zeroShareMap(groupShares)

	result := make([][]string, len(groups))
	for gi, g := range groups {
		groupShareValue := groupShares[byte(gi)]

		memberShares, err := splitSecret(g.MemberThreshold, g.MemberCount, groupShareValue)
		if err != nil {
			return nil, err
		}

		mnemonics := make([]string, g.MemberCount)
		for mi := 0; mi < g.MemberCount; mi++ {
			value := memberShares[byte(mi)]
			if mi < len(g.Passwords) && g.Passwords[mi] != "" {
				value = encryptShare(value, []byte(g.Passwords[mi]), iterationExponent, identifier)
			}

			share := Share{
				Identifier:        identifier,
				IterationExponent: iterationExponent,
				GroupIndex:        gi,
				GroupThreshold:    groupThreshold,
				GroupCount:        len(groups),
				MemberIndex:       mi,
				MemberThreshold:   g.MemberThreshold,
				Value:             value,
			}
			mnemonics[mi] = wordsToText(encodeWords(share))
		}
		zeroShareMap(memberShares)
		result[gi] = mnemonics
	}

	return result, nil
}
