package domain

import "log/slog"

const redacted = "[REDACTED]"

// SeedEntropyBytes is the amount of random seed material drawn when no seed
// phrase is supplied (256 bits).
const SeedEntropyBytes = 32

// SeedMaterial is the raw input to identity derivation: either the bytes of a
// seed phrase or bytes from a secure random source. It must never be empty and
// must never be logged; every formatting path prints a redaction marker.
type SeedMaterial []byte

func (s SeedMaterial) String() string   { return redacted }
func (s SeedMaterial) GoString() string { return redacted }

// LogValue implements slog.LogValuer.
func (s SeedMaterial) LogValue() slog.Value { return slog.StringValue(redacted) }

// SeedSource records how the seed material of a persisted identity was obtained.
type SeedSource string

const (
	SeedSourcePhrase SeedSource = "phrase"
	SeedSourceRandom SeedSource = "random"
)

// String returns the string form of the seed source.
func (s SeedSource) String() string { return string(s) }

// Valid reports whether s is a known seed source.
func (s SeedSource) Valid() bool {
	return s == SeedSourcePhrase || s == SeedSourceRandom
}
