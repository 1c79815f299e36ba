package scanner

import "errors"

// ErrConfiguration is returned when the scan cannot start: the root does not
// exist, is not a directory, or no extensions were given.
// It is wrapped with the offending value; use errors.Is to detect it.
var ErrConfiguration = errors.New("invalid scan configuration")
