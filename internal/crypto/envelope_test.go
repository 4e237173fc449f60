package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincraft/internal/domain"
)

func fastScrypt(t *testing.T) {
	t.Helper()
	orig := scryptParams
	t.Cleanup(func() { scryptParams = orig })
	scryptParams = func() (N, r, p int) { return 1 << 4, 8, 1 }
}

func TestSealOpen_RoundTrip(t *testing.T) {
	fastScrypt(t)
	d, _, err := V1{}.Derive(domain.SeedMaterial("alpha"))
	require.NoError(t, err)

	sealed, err := Seal("correct horse", d)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), string(d[:]))

	got, err := Open("correct horse", sealed)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	fastScrypt(t)
	sealed, err := Seal("correct", domain.KeyDigest{1, 2, 3})
	require.NoError(t, err)

	_, err = Open("wrong", sealed)
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)
}

func TestOpen_RejectsMalformedEnvelope(t *testing.T) {
	fastScrypt(t)
	sealed, err := Seal("pass", domain.KeyDigest{7})
	require.NoError(t, err)

	var bl blob
	require.NoError(t, json.Unmarshal(sealed, &bl))
	bl.V = 2
	future, err := json.Marshal(bl)
	require.NoError(t, err)

	_, err = Open("pass", future)
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)

	_, err = Open("pass", []byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}
