package history

import "errors"

// ErrNotFound is returned by Get when no run has the requested ID.
var ErrNotFound = errors.New("run not found")
