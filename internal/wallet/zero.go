package wallet

import "runtime"

// ZeroBytes overwrites b with zeroes in place. Safe to call on a nil
// or empty slice. Used to clear passwords and passphrases captured from
// terminal input as soon as they're no longer needed.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
