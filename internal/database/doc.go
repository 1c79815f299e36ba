// Package database provides SQLite-based storage for czwords run history.
//
// Every run saved with --save-history becomes one record holding the full
// RunResult as JSON plus a few summary columns (word and file counts, and
// the SHA3 digest of the rendered text report). The compare command reads
// the records back to show how the words in a tree change over time.
//
// The database is a single file driven by modernc.org/sqlite, a CGO-free
// driver, opened in WAL mode with a single connection.
package database
