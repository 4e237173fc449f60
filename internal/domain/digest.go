package domain

import "fmt"

// KeyDigestSize is the length of a KeyDigest in bytes.
const KeyDigestSize = 32

// KeyDigest is the fixed-length hash of a seed. It is the canonical internal
// form of an identity and doubles as the node's ed25519 private seed, so it is
// secret material.
type KeyDigest [KeyDigestSize]byte

func (d KeyDigest) Slice() []byte { return d[:] }

// IsZero reports whether d is the zero digest.
func (d KeyDigest) IsZero() bool { return d == KeyDigest{} }

// String keeps digests out of logs and error messages.
func (d KeyDigest) String() string { return redacted }

func KeyDigestFromBytes(b []byte) (KeyDigest, error) {
	if len(b) != KeyDigestSize {
		return KeyDigest{}, fmt.Errorf("key digest: want %d bytes, got %d", KeyDigestSize, len(b))
	}
	var out KeyDigest
	copy(out[:], b)
	return out, nil
}
