package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError reports the filesystem step that stopped a scaffold run.
type IOError struct {
	Op    string // "mkdir", "open", "write" or "close"
	Path  string // Absolute or root-relative path the operation targeted
	Entry string // Catalog path being written when the failure occurred
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// newIOError drops a *fs.PathError layer so the path is not repeated in the
// message.
func newIOError(op, path, entry string, err error) *IOError {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IOError{Op: op, Path: path, Entry: entry, Err: err}
}
