package app

import (
	"log/slog"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
	"chaincraft/internal/seed"
	identitysvc "chaincraft/internal/services/identity"
	"chaincraft/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Store    *store.IdentityFileStore
	Deriver  domain.Deriver
	Seeds    domain.SeedProvider
	Identity domain.IdentityService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	deriver, err := crypto.DeriverFor(cfg.FormatVersion)
	if err != nil {
		return nil, err
	}

	identityStore := store.NewIdentityFileStore(cfg.DataDir)
	seeds := seed.New(nil)

	return &Wire{
		Store:    identityStore,
		Deriver:  deriver,
		Seeds:    seeds,
		Identity: identitysvc.New(seeds, deriver, identityStore, log),
	}, nil
}
