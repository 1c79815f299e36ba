package main

import (
	"fmt"

	"github.com/nao1215/czwords/internal/report"
)

// userError is an error whose message is shown to the user as is.
type userError struct {
	msg string
	err error
}

// Error implements the error interface.
func (e *userError) Error() string {
	return e.msg
}

// Unwrap returns the underlying error.
func (e *userError) Unwrap() error {
	return e.err
}

// newRootError reports a project root that is missing or not a directory.
func newRootError(root string, err error) error {
	return &userError{
		msg: fmt.Sprintf("Project root '%s' is not a directory.", root),
		err: err,
	}
}

// newOutputError reports a report file that could not be written.
func newOutputError(err *report.WriteError) error {
	return &userError{
		msg: fmt.Sprintf("Unable to write output file '%s': %v", err.Path, err.Err),
		err: err,
	}
}
