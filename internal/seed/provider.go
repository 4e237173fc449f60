package seed

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"chaincraft/internal/domain"
)

// Provider implements domain.SeedProvider.
type Provider struct {
	random io.Reader
}

// New returns a Provider reading random seeds from r, or from crypto/rand
// when r is nil.
func New(r io.Reader) *Provider {
	if r == nil {
		r = rand.Reader
	}
	return &Provider{random: r}
}

// Resolve returns the seed material for phrase. A blank phrase is a usage
// error and never falls back to a random seed.
func (p *Provider) Resolve(phrase *string) (domain.SeedMaterial, error) {
	if phrase != nil {
		if strings.TrimSpace(*phrase) == "" {
			return nil, fmt.Errorf("%w: seed phrase must not be empty", domain.ErrInvalidSeed)
		}
		return domain.SeedMaterial(*phrase), nil
	}

	buf := make([]byte, domain.SeedEntropyBytes)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, fmt.Errorf("%w: reading random seed: %v", domain.ErrDerivation, err)
	}
	return domain.SeedMaterial(buf), nil
}

// Compile-time assertion that Provider implements domain.SeedProvider.
var _ domain.SeedProvider = (*Provider)(nil)
