package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"chaincraft/internal/domain"
)

const (
	// IdentityFilename is the record location relative to the data directory.
	IdentityFilename = "peer_identity.json"
	lockFilename     = ".peer_identity.lock"

	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
)

// IdentityFileStore persists the local identity record to disk.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// Path returns the location of the identity record.
func (s *IdentityFileStore) Path() string { return filepath.Join(s.dir, IdentityFilename) }

// Write atomically replaces the identity record. Readers observe either the
// previous record or this one, never a partial file.
func (s *IdentityFileStore) Write(id domain.PersistedIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(toRecord(id), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrStoreWrite, err)
	}
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	if err := writeFile(s.Path(), b, fileMode); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	return nil
}

// Read loads the current identity record.
func (s *IdentityFileStore) Read() (domain.PersistedIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, found, err := readFile(s.Path())
	if err != nil {
		return domain.PersistedIdentity{}, fmt.Errorf("read %s: %w", s.Path(), err)
	}
	if !found {
		return domain.PersistedIdentity{}, fmt.Errorf("%w at %s", domain.ErrNotFound, s.Path())
	}

	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.PersistedIdentity{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, s.Path(), err)
	}
	id, err := r.identity()
	if err != nil {
		return domain.PersistedIdentity{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, s.Path(), err)
	}
	return id, nil
}

// Lock takes an exclusive advisory lock shared by every process using this
// data directory. The store itself does not lock; callers that need
// writers serialized hold this around Generate.
func (s *IdentityFileStore) Lock() (unlock func() error, err error) {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	fl := flock.New(filepath.Join(s.dir, lockFilename))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("%w: lock: %w", domain.ErrStoreWrite, err)
	}
	return fl.Unlock, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
