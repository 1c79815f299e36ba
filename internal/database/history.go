package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/czwords/internal/model"
)

// FileName is the name of the database file inside the data directory.
const FileName = "czwords.db"

// timestampLayout is a fixed-width layout so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// HistoryDB provides SQLite-based storage for recorded runs.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (run a scan with --save-history first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the path of the database file.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		file_count INTEGER NOT NULL,
		digest TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_root ON runs(root);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// RunMetadata contains summary information about a recorded run.
// This is used for listing history without loading the full result.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Root is the scanned directory.
	Root string

	// Timestamp is when the run was performed.
	Timestamp time.Time

	// WordCount is the number of distinct words found.
	WordCount int

	// FileCount is the number of files containing words.
	FileCount int

	// Digest is the SHA3-256 digest of the text report.
	Digest string
}

// SaveRun stores a run and returns its ID. The ID is also set on result.
func (h *HistoryDB) SaveRun(ctx context.Context, result *model.RunResult, digest string) (int64, error) {
	reportJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize run: %w", err)
	}

	query := `
	INSERT INTO runs (root, timestamp, word_count, file_count, digest, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := h.db.ExecContext(ctx, query,
		result.Root,
		result.DateScanned.UTC().Format(timestampLayout),
		len(result.Words),
		len(result.Files),
		digest,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	result.ID = id

	return id, nil
}

// GetRunHistory returns the metadata of all runs over root, newest first.
func (h *HistoryDB) GetRunHistory(ctx context.Context, root string) ([]RunMetadata, error) {
	query := `
	SELECT id, root, timestamp, word_count, file_count, digest
	FROM runs
	WHERE root = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := h.db.QueryContext(ctx, query, root)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp string

		if err := rows.Scan(&meta.ID, &meta.Root, &timestamp, &meta.WordCount, &meta.FileCount, &meta.Digest); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		meta.Timestamp = parseTimestamp(timestamp)

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetLatestRuns returns up to limit full runs over root, newest first.
// Malformed records are skipped.
func (h *HistoryDB) GetLatestRuns(ctx context.Context, root string, limit int) ([]*model.RunResult, error) {
	query := `
	SELECT id, report_json FROM runs
	WHERE root = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := h.db.QueryContext(ctx, query, root, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs: %w", err)
	}
	defer rows.Close()

	var runs []*model.RunResult
	for rows.Next() {
		var id int64
		var reportJSON string
		if err := rows.Scan(&id, &reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var run model.RunResult
		if err := json.Unmarshal([]byte(reportJSON), &run); err != nil {
			continue // Skip malformed records
		}
		run.ID = id
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// GetRunByID retrieves a run by its database ID.
// It returns ErrRunNotFound when no such run exists.
func (h *HistoryDB) GetRunByID(ctx context.Context, id int64) (*model.RunResult, error) {
	query := `
	SELECT report_json FROM runs
	WHERE id = ?
	`

	var reportJSON string
	err := h.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var run model.RunResult
	if err := json.Unmarshal([]byte(reportJSON), &run); err != nil {
		return nil, fmt.Errorf("failed to parse run: %w", err)
	}
	run.ID = id

	return &run, nil
}

// ListRoots returns every root that has recorded runs, in alphabetical order.
func (h *HistoryDB) ListRoots(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT root FROM runs
	ORDER BY root
	`

	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roots: %w", err)
	}
	defer rows.Close()

	var roots []string
	for rows.Next() {
		var root string
		if err := rows.Scan(&root); err != nil {
			return nil, fmt.Errorf("failed to scan root: %w", err)
		}
		roots = append(roots, root)
	}

	return roots, rows.Err()
}

// timestampFormats contains the timestamp formats that may be stored.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
