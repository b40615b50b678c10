package jsondb

import (
	"errors"
	"fmt"
)

// errNotArray is wrapped by CorruptError when the file parses as JSON but
// its top-level value is not an array.
var errNotArray = errors.New("top-level value is not a JSON array")

// CorruptError reports that the backing file does not hold a well-formed
// JSON array document. The store never attempts repair; the file is left
// exactly as found.
type CorruptError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *CorruptError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err is or wraps a CorruptError.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}
