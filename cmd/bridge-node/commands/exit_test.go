package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"chaincraft/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitUnexpected},
		{usageErrorf("bad flag"), ExitUsage},
		{fmt.Errorf("wrap: %w", domain.ErrInvalidSeed), ExitInvalidSeed},
		{fmt.Errorf("wrap: %w", domain.ErrNotFound), ExitNotFound},
		{fmt.Errorf("wrap: %w", domain.ErrCorruptRecord), ExitCorruptRecord},
		{fmt.Errorf("wrap: %w", domain.ErrStoreWrite), ExitStoreWrite},
		{fmt.Errorf("wrap: %w", domain.ErrDerivation), ExitDerivation},
		{domain.ErrWrongPassphrase, ExitWrongPassphrase},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}

func TestHint(t *testing.T) {
	assert.Contains(t, hint(domain.ErrNotFound), "--new-peer-id")
	assert.Contains(t, hint(domain.ErrCorruptRecord), "regenerate")
	assert.Empty(t, hint(errors.New("boom")))
}
