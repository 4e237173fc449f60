package domain

import "errors"

// Sentinel errors reused by higher layers. Callers classify with errors.Is.
var (
	// ErrInvalidSeed is returned for a supplied seed phrase that is empty or blank.
	ErrInvalidSeed = errors.New("invalid seed phrase")
	// ErrDerivation reports a failure of a cryptographic primitive.
	ErrDerivation = errors.New("identity derivation failed")
	// ErrNotFound is returned when no identity has been generated yet.
	ErrNotFound = errors.New("no identity found")
	// ErrCorruptRecord is returned when the stored record cannot be used.
	ErrCorruptRecord = errors.New("identity record is corrupt")
	// ErrStoreWrite wraps I/O failures while persisting an identity.
	ErrStoreWrite = errors.New("identity record write failed")

	ErrInvalidPeerID      = errors.New("invalid peer id")
	ErrUnsupportedVersion = errors.New("unsupported identity format version")
	ErrWrongPassphrase    = errors.New("wrong passphrase or corrupted key material")
)
