package fileutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLock marks failures to acquire the advisory lock guarding a write.
var ErrLock = errors.New("acquire file lock")

// WriteFile replaces the contents of path with data using a single write,
// creating the file with mode when it does not exist. An advisory lock on
// path is held for the duration so concurrent writers do not interleave.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("%w: %w", ErrLock, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := out.Truncate(0); err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}
