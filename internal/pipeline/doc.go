// Package pipeline turns a sequence of scanned files into a RunResult.
//
// The Aggregator reads each file, extracts the known words and folds them
// into the result. Files are processed one at a time, in scanner order;
// the file handle of one file is released before the next file is opened.
//
// A file that cannot be read is reported on the error stream and skipped,
// and the run continues. Context cancellation is checked between files.
package pipeline
