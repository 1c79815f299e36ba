// Package log builds the slog loggers used by czwords.
//
// Loggers write to stderr at Warn level, or Debug level in verbose mode.
// Records pass through a RelativePathHandler, which rewrites path-like
// attributes ("path", "dir") relative to the scan root so that log lines
// stay short and do not depend on where the tree is checked out.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose, root)
//	logger.Warn("skipping unreadable directory", "dir", "/work/src/private")
//	// level=WARN msg="skipping unreadable directory" dir=private
package log
