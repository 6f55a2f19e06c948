package codec

import "runtime"

// Wipe sets every byte in x to zero.
//
// Digests and other intermediate binary values are wiped once
// they have been rendered as text.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// KeepAlive should (hopefully) nudge the compiler away from
	// DCEing the for-loop.
	runtime.KeepAlive(x)
}
