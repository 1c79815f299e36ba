// Package model defines the data structures shared by the scan pipeline,
// the reporters and the history database.
//
// This package contains the following main types:
//   - FileWords: the known words found in one file
//   - RunResult: the outcome of one scan, per file and overall
//   - Comparison: the difference between two recorded runs
//
// The models are serializable to JSON for report output and database storage.
package model
