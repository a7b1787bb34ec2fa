package slip39

// share.go defines the data model a single mnemonic encodes: the
// metadata identifying which set, group and member it belongs to, plus
// its share value (a member share of its group's share; when both
// thresholds are 1, the encrypted master secret itself).

// Share is one decoded or pre-encode mnemonic's worth of data.
type Share struct {
	Identifier        uint16
	IterationExponent int
	GroupIndex        int
	GroupThreshold    int
	GroupCount        int
	MemberIndex       int
	MemberThreshold   int
	Value             []byte
}

func (s Share) header() header {
	return header{
		identifier:        s.Identifier,
		iterationExponent: s.IterationExponent,
		groupIndex:        s.GroupIndex,
		groupThreshold:    s.GroupThreshold,
		groupCount:        s.GroupCount,
		memberIndex:       s.MemberIndex,
		memberThreshold:   s.MemberThreshold,
	}
}

// groupDescriptor summarizes one group's configuration within a set,
// independent of any particular member share.
type groupDescriptor struct {
	groupThreshold int
	groupCount     int
	memberCount    int
	memberThresh   int
}

// groupBucket accumulates the member shares collected so far for one
// group index during recovery.
type groupBucket struct {
	memberThreshold int
	members         map[byte][]byte // memberIndex -> share value
}
