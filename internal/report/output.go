package report

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"
)

// WriteError is returned when a rendered report cannot be stored.
type WriteError struct {
	// Path is the destination file.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write output file '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile stores data at path in a single write. The file is created or
// truncated with mode 0644; missing parent directories are not created.
// Failures are returned as *WriteError.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Digest returns the hex encoded SHA3-256 digest of a rendered report.
// Two runs with the same digest produced byte-identical reports.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
