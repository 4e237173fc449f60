package domain

// SeedProvider resolves the seed material for a Generate call.
type SeedProvider interface {
	// Resolve returns the bytes of *phrase, or fresh random bytes when phrase
	// is nil. A blank phrase fails with ErrInvalidSeed.
	Resolve(phrase *string) (SeedMaterial, error)
}

// Deriver is one versioned hash + encoding pairing.
type Deriver interface {
	Version() int
	Derive(seed SeedMaterial) (KeyDigest, PeerID, error)
	Encode(d KeyDigest) PeerID
	Decode(id PeerID) (KeyDigest, error)
}

// IdentityStore persists the local identity record.
type IdentityStore interface {
	Write(id PersistedIdentity) error
	Read() (PersistedIdentity, error)
}

// IdentityService is the use-case surface consumed by the CLI.
type IdentityService interface {
	Generate(req GenerateRequest) (PersistedIdentity, error)
	Read() (PeerID, error)
	Inspect() (PersistedIdentity, error)
	Verify(passphrase string) (PersistedIdentity, error)
}
