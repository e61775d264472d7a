package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kamahir0/custom-explorer/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.StateStore on a SQLite key/value table. One
// database per workspace; the forest lives under a single key and is
// overwritten wholesale on every save.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements StateStore
var _ ports.StateStore = (*Store)(nil)

// Open opens (creating if needed) the state database at dbPath. Pass the
// result of DatabasePath to scope the database to a workspace.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	// WAL mode for better concurrency between short-lived CLI invocations
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load retrieves the value stored under key.
func (s *Store) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Save overwrites the value stored under key.
func (s *Store) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO state (key, value, updated_at) VALUES (?, ?, ?)
	`, key, value, time.Now().Unix())
	return err
}

// DatabasePath returns the state database path for a workspace: an XDG data
// location keyed by a short hash of the workspace path, so every workspace
// gets its own database.
func DatabasePath(workspacePath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "custom-explorer", hashWorkspacePath(workspacePath)+".db")
}

// hashWorkspacePath returns a short hash of the workspace path
func hashWorkspacePath(workspacePath string) string {
	h := sha256.Sum256([]byte(workspacePath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
