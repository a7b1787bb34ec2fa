// Package slip39 implements a two-level threshold secret-sharing
// mnemonic scheme: a master secret is encrypted, split into group
// shares, and each group share is split again into member shares, all
// rendered as checksum-protected wordlist mnemonics. A threshold subset
// of groups, each of which has met its own member threshold, is
// sufficient to recover the master secret; no smaller subset leaks any
// information about it.
package slip39
