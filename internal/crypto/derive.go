package crypto

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"

	"chaincraft/internal/domain"
)

const peerIDPrefixV1 = "cc1"

var derivers = map[int]domain.Deriver{
	domain.FormatVersion1: V1{},
}

// DeriverFor returns the deriver registered for a format version.
func DeriverFor(version int) (domain.Deriver, error) {
	d, ok := derivers[version]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnsupportedVersion, version)
	}
	return d, nil
}

// V1 hashes seed material with SHA3-256 and encodes the digest as
// "cc1" + base58btc(multihash(sha3-256, digest)).
//
// No domain-separation prefix is applied: the digest is the same 32-byte
// ed25519 seed that earlier chaincraft nodes derived from a phrase, which keeps
// their libp2p ids stable.
type V1 struct{}

func (V1) Version() int { return domain.FormatVersion1 }

// Derive maps seed to its digest and peer id.
func (v V1) Derive(seed domain.SeedMaterial) (domain.KeyDigest, domain.PeerID, error) {
	if len(seed) == 0 {
		return domain.KeyDigest{}, "", fmt.Errorf("%w: empty seed material", domain.ErrDerivation)
	}
	d := domain.KeyDigest(sha3.Sum256(seed))
	return d, v.Encode(d), nil
}

// Encode is total on the digest space.
func (V1) Encode(d domain.KeyDigest) domain.PeerID {
	mh, err := multihash.Encode(d[:], multihash.SHA3_256)
	if err != nil {
		// Only reachable if the registry loses SHA3_256, which is a build defect.
		panic(fmt.Sprintf("multihash sha3-256: %v", err))
	}
	return domain.PeerID(peerIDPrefixV1 + base58.Encode(mh))
}

// Decode recovers the digest a peer id was encoded from.
func (v V1) Decode(id domain.PeerID) (domain.KeyDigest, error) {
	s := string(id)
	if !strings.HasPrefix(s, peerIDPrefixV1) {
		return domain.KeyDigest{}, fmt.Errorf("%w: missing %q prefix", domain.ErrInvalidPeerID, peerIDPrefixV1)
	}
	raw, err := base58.Decode(strings.TrimPrefix(s, peerIDPrefixV1))
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: %v", domain.ErrInvalidPeerID, err)
	}
	dec, err := multihash.Decode(raw)
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: %v", domain.ErrInvalidPeerID, err)
	}
	if dec.Code != multihash.SHA3_256 {
		return domain.KeyDigest{}, fmt.Errorf("%w: unexpected hash code 0x%x", domain.ErrInvalidPeerID, dec.Code)
	}
	d, err := domain.KeyDigestFromBytes(dec.Digest)
	if err != nil {
		return domain.KeyDigest{}, fmt.Errorf("%w: %v", domain.ErrInvalidPeerID, err)
	}
	// Only the canonical encoding is accepted, so ids compare as strings.
	if v.Encode(d) != id {
		return domain.KeyDigest{}, fmt.Errorf("%w: non-canonical encoding", domain.ErrInvalidPeerID)
	}
	return d, nil
}

// Compile-time assertion that V1 implements domain.Deriver.
var _ domain.Deriver = V1{}
