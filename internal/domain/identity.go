package domain

import "time"

// FormatVersion1 is the first identity format: SHA3-256 seed digest, peer ids
// encoded as "cc1" + base58btc(multihash(sha3-256, digest)).
const FormatVersion1 = 1

// PeerID is the stable textual identifier of a node.
type PeerID string

// String returns the string form of the peer id.
func (id PeerID) String() string { return string(id) }

// NetworkID is the libp2p peer id of the ed25519 key derived from a KeyDigest.
type NetworkID string

// String returns the string form of the network id.
func (id NetworkID) String() string { return string(id) }

// PersistedIdentity is the on-disk identity record. Exactly one of KeyDigest
// and SealedKeyDigest is set; Inspect results carry neither.
type PersistedIdentity struct {
	FormatVersion   int
	PeerID          PeerID
	NetworkID       NetworkID
	CreatedAt       time.Time
	SeedSource      SeedSource
	KeyDigest       *KeyDigest
	SealedKeyDigest []byte // opaque passphrase envelope

	keySealed bool
}

// Sealed reports whether the retained key material is passphrase protected.
// The answer survives WithoutKeyMaterial.
func (p PersistedIdentity) Sealed() bool { return len(p.SealedKeyDigest) > 0 || p.keySealed }

// WithoutKeyMaterial returns a copy safe to display.
func (p PersistedIdentity) WithoutKeyMaterial() PersistedIdentity {
	p.keySealed = p.Sealed()
	p.KeyDigest = nil
	p.SealedKeyDigest = nil
	return p
}

// GenerateRequest carries the inputs of a Generate call. A nil SeedPhrase
// selects a random identity; an empty Passphrase stores the key digest in the
// clear.
type GenerateRequest struct {
	SeedPhrase *string
	Passphrase string
}

// KnownFormatVersion reports whether records of version v can be read.
func KnownFormatVersion(v int) bool { return v == FormatVersion1 }
