package commands

import (
	"errors"
	"fmt"

	"chaincraft/internal/domain"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitUnexpected      = 1
	ExitUsage           = 2
	ExitInvalidSeed     = 3
	ExitNotFound        = 4
	ExitCorruptRecord   = 5
	ExitStoreWrite      = 6
	ExitDerivation      = 7
	ExitWrongPassphrase = 8
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &uerr):
		return ExitUsage
	case errors.Is(err, domain.ErrInvalidSeed):
		return ExitInvalidSeed
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrWrongPassphrase):
		return ExitWrongPassphrase
	case errors.Is(err, domain.ErrCorruptRecord):
		return ExitCorruptRecord
	case errors.Is(err, domain.ErrStoreWrite):
		return ExitStoreWrite
	case errors.Is(err, domain.ErrDerivation):
		return ExitDerivation
	default:
		return ExitUnexpected
	}
}

// hint returns a follow-up suggestion for errors the user can fix.
func hint(err error) string {
	var uerr *usageError
	switch {
	case errors.As(err, &uerr):
		return "run 'bridge-node --help' for usage"
	case errors.Is(err, domain.ErrNotFound):
		return "no identity has been generated yet; run 'bridge-node --new-peer-id' to create one"
	case errors.Is(err, domain.ErrWrongPassphrase):
		return "pass the passphrase used at generation with --passphrase"
	case errors.Is(err, domain.ErrCorruptRecord):
		return "the stored identity cannot be used; regenerate it with 'bridge-node --new-peer-id' (the same --seed-phrase restores the same id)"
	default:
		return ""
	}
}
