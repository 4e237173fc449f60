package store

import (
	"encoding/json"
	"fmt"
	"time"

	"chaincraft/internal/domain"
)

// record is the on-disk JSON layout. Field names are part of the format
// version contract.
type record struct {
	FormatVersion   int             `json:"format_version"`
	PeerID          string          `json:"peer_id"`
	NetworkID       string          `json:"network_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	SeedSource      string          `json:"seed_source,omitempty"`
	KeyDigest       []byte          `json:"key_digest,omitempty"`
	SealedKeyDigest json.RawMessage `json:"sealed_key_digest,omitempty"`
}

func toRecord(id domain.PersistedIdentity) record {
	r := record{
		FormatVersion:   id.FormatVersion,
		PeerID:          id.PeerID.String(),
		NetworkID:       id.NetworkID.String(),
		CreatedAt:       id.CreatedAt.UTC(),
		SeedSource:      id.SeedSource.String(),
		SealedKeyDigest: json.RawMessage(id.SealedKeyDigest),
	}
	if id.KeyDigest != nil {
		r.KeyDigest = id.KeyDigest.Slice()
	}
	return r
}

// identity validates r and converts it back to the domain model.
func (r record) identity() (domain.PersistedIdentity, error) {
	if !domain.KnownFormatVersion(r.FormatVersion) {
		return domain.PersistedIdentity{}, fmt.Errorf("unrecognized format_version %d", r.FormatVersion)
	}
	if r.PeerID == "" {
		return domain.PersistedIdentity{}, fmt.Errorf("missing peer_id")
	}
	if src := domain.SeedSource(r.SeedSource); src != "" && !src.Valid() {
		return domain.PersistedIdentity{}, fmt.Errorf("unknown seed_source %q", r.SeedSource)
	}
	hasPlain, hasSealed := len(r.KeyDigest) > 0, len(r.SealedKeyDigest) > 0
	if hasPlain == hasSealed {
		return domain.PersistedIdentity{}, fmt.Errorf("want exactly one of key_digest and sealed_key_digest")
	}

	id := domain.PersistedIdentity{
		FormatVersion: r.FormatVersion,
		PeerID:        domain.PeerID(r.PeerID),
		NetworkID:     domain.NetworkID(r.NetworkID),
		CreatedAt:     r.CreatedAt,
		SeedSource:    domain.SeedSource(r.SeedSource),
	}
	if hasPlain {
		d, err := domain.KeyDigestFromBytes(r.KeyDigest)
		if err != nil {
			return domain.PersistedIdentity{}, err
		}
		id.KeyDigest = &d
	} else {
		id.SealedKeyDigest = append([]byte(nil), r.SealedKeyDigest...)
	}
	return id, nil
}
