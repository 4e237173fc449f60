package identity

import (
	"fmt"
	"log/slog"
	"time"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
	"chaincraft/internal/util/memzero"
)

// Service manages generation and loading of the local node identity.
type Service struct {
	seeds   domain.SeedProvider
	deriver domain.Deriver
	store   domain.IdentityStore
	log     *slog.Logger
	now     func() time.Time
}

// New returns an identity service. New records are written with deriver's
// format version. A nil logger discards output.
func New(seeds domain.SeedProvider, deriver domain.Deriver, store domain.IdentityStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		seeds:   seeds,
		deriver: deriver,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// Generate derives a new identity and replaces the stored record. Nothing is
// written unless derivation succeeds.
func (s *Service) Generate(req domain.GenerateRequest) (domain.PersistedIdentity, error) {
	seed, err := s.seeds.Resolve(req.SeedPhrase)
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	digest, peerID, err := s.deriver.Derive(seed)
	memzero.Zero(seed)
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	_, networkID, err := crypto.NetworkIdentity(digest)
	if err != nil {
		return domain.PersistedIdentity{}, err
	}

	source := domain.SeedSourceRandom
	if req.SeedPhrase != nil {
		source = domain.SeedSourcePhrase
	}
	rec := domain.PersistedIdentity{
		FormatVersion: s.deriver.Version(),
		PeerID:        peerID,
		NetworkID:     networkID,
		CreatedAt:     s.now().UTC().Truncate(time.Second),
		SeedSource:    source,
	}
	if req.Passphrase != "" {
		sealed, err := crypto.Seal(req.Passphrase, digest)
		if err != nil {
			return domain.PersistedIdentity{}, err
		}
		rec.SealedKeyDigest = sealed
	} else {
		rec.KeyDigest = &digest
	}

	if err := s.store.Write(rec); err != nil {
		return domain.PersistedIdentity{}, err
	}
	s.log.Info("identity generated",
		slog.String("peer_id", peerID.String()),
		slog.String("network_id", networkID.String()),
		slog.String("seed_source", source.String()),
		slog.Bool("sealed", rec.Sealed()),
	)
	return rec.WithoutKeyMaterial(), nil
}

// Read returns the stored peer id.
func (s *Service) Read() (domain.PeerID, error) {
	rec, err := s.load()
	if err != nil {
		return "", err
	}
	return rec.PeerID, nil
}

// Inspect returns the stored record without key material.
func (s *Service) Inspect() (domain.PersistedIdentity, error) {
	rec, err := s.load()
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	return rec.WithoutKeyMaterial(), nil
}

// Verify recovers the stored key digest, opening the envelope with passphrase
// when the record is sealed, and checks that both ids re-derive from it.
func (s *Service) Verify(passphrase string) (domain.PersistedIdentity, error) {
	rec, err := s.load()
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	d, err := s.deriverFor(rec)
	if err != nil {
		return domain.PersistedIdentity{}, err
	}

	digest := rec.KeyDigest
	if rec.Sealed() {
		opened, err := crypto.Open(passphrase, rec.SealedKeyDigest)
		if err != nil {
			return domain.PersistedIdentity{}, err
		}
		digest = &opened
	}
	if got := d.Encode(*digest); got != rec.PeerID {
		return domain.PersistedIdentity{}, fmt.Errorf("%w: peer_id does not match key material", domain.ErrCorruptRecord)
	}
	if rec.NetworkID != "" {
		_, networkID, err := crypto.NetworkIdentity(*digest)
		if err != nil {
			return domain.PersistedIdentity{}, err
		}
		if networkID != rec.NetworkID {
			return domain.PersistedIdentity{}, fmt.Errorf("%w: network_id does not match key material", domain.ErrCorruptRecord)
		}
	}
	s.log.Debug("identity verified", slog.String("peer_id", rec.PeerID.String()))
	return rec.WithoutKeyMaterial(), nil
}

// load reads the record and checks the peer id against whatever key material
// is available without a passphrase.
func (s *Service) load() (domain.PersistedIdentity, error) {
	rec, err := s.store.Read()
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	d, err := s.deriverFor(rec)
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	if rec.KeyDigest != nil {
		if d.Encode(*rec.KeyDigest) != rec.PeerID {
			return domain.PersistedIdentity{}, fmt.Errorf("%w: peer_id does not match key_digest", domain.ErrCorruptRecord)
		}
		return rec, nil
	}
	if _, err := d.Decode(rec.PeerID); err != nil {
		return domain.PersistedIdentity{}, fmt.Errorf("%w: %w", domain.ErrCorruptRecord, err)
	}
	return rec, nil
}

func (s *Service) deriverFor(rec domain.PersistedIdentity) (domain.Deriver, error) {
	if rec.FormatVersion == s.deriver.Version() {
		return s.deriver, nil
	}
	d, err := crypto.DeriverFor(rec.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptRecord, err)
	}
	return d, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
