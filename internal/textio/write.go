package textio

import (
	"errors"

	"textstat/internal/fileutil"
)

// Write replaces the contents of path with data in one locked write.
func Write(path string, data []byte) error {
	err := fileutil.WriteFile(path, data, 0o644)
	if err == nil {
		return nil
	}
	op := OpWrite
	if errors.Is(err, fileutil.ErrLock) {
		op = OpLock
	}
	return &IOFailure{Op: op, Path: path, Err: err}
}
