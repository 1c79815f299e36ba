package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers use errors.Is to tell them apart.
var (
	// ErrNoExtensions is returned when the extension list is empty.
	// An empty list would make every file ineligible.
	ErrNoExtensions = errors.New("invalid extensions: at least one file extension is required")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidPattern is returned when a --name-filter or --exclude glob is malformed.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrUnknownEncoding is returned when --encoding names an encoding
	// that is not a WHATWG encoding label.
	ErrUnknownEncoding = errors.New("unknown text encoding")

	// ErrUnknownLogFormat is returned when --log-format is neither "text" nor "json".
	ErrUnknownLogFormat = errors.New("unknown log format")
)
