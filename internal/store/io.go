package store

import (
	"errors"
	"os"
	"path/filepath"
)

// Swapped in tests to simulate a crash between writing and publishing.
var rename = os.Rename

// readFile reads the file at path; found is false when it does not exist.
func readFile(path string) (b []byte, found bool, err error) {
	b, err = os.ReadFile(path) // #nosec G304 path is built from the configured data dir
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// writeFile writes bytes via a synced temp file, then atomically replaces the
// target and syncs the directory so the rename itself survives a crash.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	published := false
	defer func() {
		if !published {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := rename(tmp, path); err != nil {
		return err
	}
	published = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir) // #nosec G304
	if err != nil {
		return err
	}
	defer d.Close()
	if err := d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}
