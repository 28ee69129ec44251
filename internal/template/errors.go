package template

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryConflict means the target exists and is not empty.
	ErrDirectoryConflict = errors.New("target directory is not empty")

	// ErrCopyFailure means the template could not be fully copied.
	ErrCopyFailure = errors.New("template copy failed")
)

// ConflictError reports a non-empty target directory.
type ConflictError struct {
	Dir     string
	Entries int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("directory %s is not empty (%d entries); choose an empty or new directory", e.Dir, e.Entries)
}

func (e *ConflictError) Is(target error) bool { return target == ErrDirectoryConflict }

// CopyError wraps the I/O error that stopped materialization.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

func (e *CopyError) Is(target error) bool { return target == ErrCopyFailure }
