// Package memzero wipes secret buffers once they are no longer needed.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. Best effort: copies made by the runtime or by
// callers are out of reach.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
