package slip39

// parse.go exposes read-only inspection of a single mnemonic, independent
// of any recovery attempt — used by the CLI's "parse" command to show a
// share's metadata without needing the rest of its set.

// ShareInfo is the metadata a single mnemonic carries, with its value
// left encoded as the mnemonic's own checksum-protected words rather
// than decrypted bytes.
type ShareInfo struct {
	Identifier        uint16
	IterationExponent int
	GroupIndex        int
	GroupThreshold    int
	GroupCount        int
	MemberIndex       int
	MemberThreshold   int
	ValueWords        int
}

// ParseMnemonic decodes a single mnemonic's metadata and validates its
// checksum, without attempting any secret recovery.
func ParseMnemonic(mnemonic string) (ShareInfo, error) {
	words, err := textToWords(mnemonic)
	if err != nil {
		return ShareInfo{}, err
	}
	share, err := decodeWords(words)
	if err != nil {
		return ShareInfo{}, err
	}
	return ShareInfo{
		Identifier:        share.Identifier,
		IterationExponent: share.IterationExponent,
		GroupIndex:        share.GroupIndex,
		GroupThreshold:    share.GroupThreshold,
		GroupCount:        share.GroupCount,
		MemberIndex:       share.MemberIndex,
		MemberThreshold:   share.MemberThreshold,
		ValueWords:        len(words) - metadataLengthWords,
	}, nil
}
