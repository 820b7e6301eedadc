package fileops

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".subber.lock"

// WithLock runs fn while holding an advisory lock inside dir. A second
// run against the same directory fails fast instead of racing the first.
func WithLock(dir string, fn func() error) error {
	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire directory lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("directory %s is locked by another subber run", dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
