package slip39

import sigilerr "github.com/mrz1836/sigil/pkg/errors"

// errors.go holds the small helpers that attach slip39-specific context
// to the shared error taxonomy in pkg/errors, which is the single source
// of truth for error codes and CLI exit codes across the module.

func newInvalidWordError(word string) error {
	return sigilerr.WithDetails(sigilerr.ErrUnknownMnemonicWord, map[string]string{
		"word": word,
	})
}
