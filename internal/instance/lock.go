// Package instance enforces that at most one gitgrab watcher runs per
// user: two pollers fighting over one clipboard is never useful.
package instance

import (
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/NicabarNimble/go-gitgrab/internal/errors"
)

const lockFileName = "gitgrab.lock"

// Lock acquires an exclusive file lock in stateDir. Returns the flock
// handle (caller must defer Unlock) or an error if another instance
// already holds the lock.
func Lock(stateDir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(stateDir, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.New("lock", err)
	}
	if !locked {
		return nil, errors.Newf("lock", "another gitgrab watch is already running")
	}
	return fl, nil
}

// Unlock releases the file lock.
func Unlock(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
