package source

import "fmt"

// ReadError is returned when a file cannot be opened or read.
// Callers report it and continue with the next file.
type ReadError struct {
	// Path is the path that was being read.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}
