package textio

import (
	"errors"
	"fmt"
	"io/fs"

	"textstat/internal/fileutil"
)

// Operations recorded on IOFailure.
const (
	OpOpen  = "open"
	OpRead  = "read"
	OpWrite = "write"
	OpLock  = "lock"
)

// IOFailure reports a failed open, read, lock, or write on a named path.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *IOFailure) Unwrap() error {
	return e.Err
}

// ErrorKind classifies the failure as "not_found", "permission", "lock", or
// "io".
func (e *IOFailure) ErrorKind() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return "not_found"
	case errors.Is(e.Err, fs.ErrPermission):
		return "permission"
	case errors.Is(e.Err, fileutil.ErrLock):
		return "lock"
	default:
		return "io"
	}
}

// AsIOFailure extracts the *IOFailure wrapped in err, if any.
func AsIOFailure(err error) (*IOFailure, bool) {
	var failure *IOFailure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
