package slip39

import "runtime"

// zeroize.go gives every function that handles the master secret, group
// shares or member shares a single place to scrub sensitive buffers on
// every exit path, success or failure. Modeled on the mlock/Destroy
// pattern in internal/crypto, but as a free function since split/recover
// deal in many short-lived intermediate slices rather than one long-lived
// handle.

// zero overwrites b with zeros in place. The runtime.KeepAlive call
// after the loop keeps the compiler from treating the writes as dead
// stores to a slice that is about to go out of scope.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// zeroAll zeroes every slice in bs.
func zeroAll(bs ...[]byte) {
	for _, b := range bs {
		zero(b)
	}
}

// zeroShareMap zeroes every value in a share map.
func zeroShareMap(m map[byte][]byte) {
	for _, v := range m {
		zero(v)
	}
}
