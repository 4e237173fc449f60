package identity_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincraft/internal/crypto"
	"chaincraft/internal/domain"
	"chaincraft/internal/seed"
	"chaincraft/internal/services/identity"
	"chaincraft/internal/store"
)

func ptr(s string) *string { return &s }

// countingStore records writes so tests can assert none happened.
type countingStore struct {
	domain.IdentityStore
	writes int
	fail   error
}

func (c *countingStore) Write(id domain.PersistedIdentity) error {
	c.writes++
	if c.fail != nil {
		return c.fail
	}
	return c.IdentityStore.Write(id)
}

func newService(t *testing.T) (*identity.Service, *countingStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "chaincraft")
	st := &countingStore{IdentityStore: store.NewIdentityFileStore(dir)}
	return identity.New(seed.New(nil), crypto.V1{}, st, nil), st, dir
}

func TestGenerateThenRead_PhraseRoundTrip(t *testing.T) {
	svc, _, _ := newService(t)

	gen, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha")})
	require.NoError(t, err)

	assert.Equal(t, crypto.V1{}.Encode(mustDigest(t, "alpha")), gen.PeerID)
	assert.Equal(t, domain.SeedSourcePhrase, gen.SeedSource)
	assert.True(t, strings.HasPrefix(gen.NetworkID.String(), "12D3KooW"))
	assert.Nil(t, gen.KeyDigest, "returned record must not carry key material")

	got, err := svc.Read()
	require.NoError(t, err)
	assert.Equal(t, gen.PeerID, got)
}

func TestGenerate_SamePhraseSameID(t *testing.T) {
	a, _, _ := newService(t)
	b, _, _ := newService(t)

	ia, err := a.Generate(domain.GenerateRequest{SeedPhrase: ptr("my node")})
	require.NoError(t, err)
	ib, err := b.Generate(domain.GenerateRequest{SeedPhrase: ptr("my node")})
	require.NoError(t, err)

	assert.Equal(t, ia.PeerID, ib.PeerID)
	assert.Equal(t, ia.NetworkID, ib.NetworkID)
}

func TestGenerate_RandomIdentitiesDiffer(t *testing.T) {
	svc, _, _ := newService(t)

	first, err := svc.Generate(domain.GenerateRequest{})
	require.NoError(t, err)
	second, err := svc.Generate(domain.GenerateRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, first.PeerID, second.PeerID)
	assert.Equal(t, domain.SeedSourceRandom, second.SeedSource)

	// The later Generate replaced the record.
	got, err := svc.Read()
	require.NoError(t, err)
	assert.Equal(t, second.PeerID, got)
}

func TestGenerate_EmptyPhraseWritesNothing(t *testing.T) {
	for _, phrase := range []string{"", "   ", "\t\n"} {
		svc, st, dir := newService(t)

		_, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr(phrase)})
		require.ErrorIs(t, err, domain.ErrInvalidSeed)
		assert.Zero(t, st.writes)

		_, statErr := os.Stat(filepath.Join(dir, store.IdentityFilename))
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	}
}

func TestGenerate_RandomSourceFailureWritesNothing(t *testing.T) {
	st := &countingStore{IdentityStore: store.NewIdentityFileStore(t.TempDir())}
	svc := identity.New(seed.New(iotest.ErrReader(errors.New("entropy exhausted"))), crypto.V1{}, st, nil)

	_, err := svc.Generate(domain.GenerateRequest{})
	require.ErrorIs(t, err, domain.ErrDerivation)
	assert.Zero(t, st.writes)
}

func TestGenerate_StoreFailurePropagates(t *testing.T) {
	svc, st, _ := newService(t)
	st.fail = domain.ErrStoreWrite

	_, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha")})
	assert.ErrorIs(t, err, domain.ErrStoreWrite)
}

func TestRead_NotFoundOnFreshStore(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Read()
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Inspect()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRead_DetectsTamperedPeerID(t *testing.T) {
	svc, _, dir := newService(t)
	_, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha")})
	require.NoError(t, err)

	other := crypto.V1{}.Encode(mustDigest(t, "beta"))
	rewriteField(t, filepath.Join(dir, store.IdentityFilename), "peer_id", other.String())

	_, err = svc.Read()
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestRead_CorruptFile(t *testing.T) {
	svc, _, dir := newService(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.IdentityFilename), []byte("garbage"), 0o600))

	_, err := svc.Read()
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestSealedIdentity_VerifyWithPassphrase(t *testing.T) {
	svc, _, dir := newService(t)

	gen, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha"), Passphrase: "hunter2"})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, store.IdentityFilename))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"key_digest"`)
	assert.Contains(t, string(raw), `"sealed_key_digest"`)

	got, err := svc.Read()
	require.NoError(t, err)
	assert.Equal(t, gen.PeerID, got)

	verified, err := svc.Verify("hunter2")
	require.NoError(t, err)
	assert.Equal(t, gen.NetworkID, verified.NetworkID)

	_, err = svc.Verify("wrong")
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)
}

func TestVerify_PlainRecord(t *testing.T) {
	svc, _, _ := newService(t)
	gen, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha")})
	require.NoError(t, err)

	got, err := svc.Verify("")
	require.NoError(t, err)
	assert.Equal(t, gen.PeerID, got.PeerID)
	assert.Nil(t, got.KeyDigest)
}

func TestVerify_DetectsTamperedNetworkID(t *testing.T) {
	svc, _, dir := newService(t)
	_, err := svc.Generate(domain.GenerateRequest{SeedPhrase: ptr("alpha")})
	require.NoError(t, err)

	_, beta, err := crypto.NetworkIdentity(mustDigest(t, "beta"))
	require.NoError(t, err)
	rewriteField(t, filepath.Join(dir, store.IdentityFilename), "network_id", beta.String())

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestGenerate_LogsNeverContainSeedMaterial(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	st := store.NewIdentityFileStore(t.TempDir())
	svc := identity.New(seed.New(nil), crypto.V1{}, st, log)

	phrase := "correct horse battery staple"
	gen, err := svc.Generate(domain.GenerateRequest{SeedPhrase: &phrase})
	require.NoError(t, err)
	_, err = svc.Verify("")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, gen.PeerID.String())
	assert.NotContains(t, out, phrase)
}

func mustDigest(t *testing.T, phrase string) domain.KeyDigest {
	t.Helper()
	d, _, err := crypto.V1{}.Derive(domain.SeedMaterial(phrase))
	require.NoError(t, err)
	return d
}

func rewriteField(t *testing.T, path, key, value string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	m[key] = value
	raw, err = json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
}
