package cli

import "testing"

// withMockPrompts replaces prompt functions for testing and restores on cleanup.
func withMockPrompts(t *testing.T, password []byte, confirm bool) {
	t.Helper()
	origPW := promptPasswordFn
	origConfirm := promptConfirmFn
	origPassphrase := promptPassphraseFn
	origShares := promptSharesFn
	origHex := promptHexSecretFn
	origBIP39 := promptBIP39Fn
	t.Cleanup(func() {
		promptPasswordFn = origPW
		promptConfirmFn = origConfirm
		promptPassphraseFn = origPassphrase
		promptSharesFn = origShares
		promptHexSecretFn = origHex
		promptBIP39Fn = origBIP39
	})
	promptPasswordFn = func(_ string) ([]byte, error) {
		cp := make([]byte, len(password))
		copy(cp, password)
		return cp, nil
	}
	promptConfirmFn = func() bool { return confirm }
	promptPassphraseFn = func() ([]byte, error) {
		cp := make([]byte, len(password))
		copy(cp, password)
		return cp, nil
	}
	promptSharesFn = func() ([]string, error) {
		return []string{"duke acid academic easy abstract mandate ambition dress"}, nil
	}
	promptHexSecretFn = func() (string, error) {
		return "00112233445566778899aabbccddeeff", nil
	}
	promptBIP39Fn = func() (string, error) {
		return "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", nil
	}
}
