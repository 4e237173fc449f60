package app

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincraft/internal/domain"
)

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "node")
	return cfg
}

func TestNewWire_UnsupportedFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.FormatVersion = 7

	_, err := NewWire(cfg, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)
}

func TestApp_GenerateAndRead(t *testing.T) {
	a, err := New(testConfig(t), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	phrase := "alpha"
	gen, err := a.Generate(domain.GenerateRequest{SeedPhrase: &phrase})
	require.NoError(t, err)

	got, err := a.Identity.Read()
	require.NoError(t, err)
	assert.Equal(t, gen.PeerID, got)

	// The lock is released, so a second Generate does not block.
	_, err = a.Generate(domain.GenerateRequest{})
	require.NoError(t, err)
}
