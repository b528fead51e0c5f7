package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/strike/internal/models"
	_ "modernc.org/sqlite"
)

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS snapshots (
	namespace TEXT PRIMARY KEY,
	version INTEGER NOT NULL,
	taken_at INTEGER NOT NULL,
	body TEXT NOT NULL
)`

// SQLiteStore persists snapshots in a SQLite file
type SQLiteStore struct {
	sqlDB     *sql.DB
	namespace string
}

// SQLiteConfig holds configuration for the SQLite snapshot store
type SQLiteConfig struct {
	// Path is the database file
	Path string

	// Namespace separates snapshots of different guilds sharing one file
	Namespace string
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// OpenSQLite opens the store and creates its table
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createSnapshotsTable); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &SQLiteStore{sqlDB: sqlDB, namespace: namespace}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSnapshot replaces the namespace's snapshot row
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	body, err := json.Marshal(input.Snapshot)
	if err != nil {
		return &PersistenceError{Op: "marshal", Err: err}
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO snapshots (namespace, version, taken_at, body)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET
		   version = excluded.version,
		   taken_at = excluded.taken_at,
		   body = excluded.body`,
		s.namespace,
		input.Snapshot.Version,
		toMillis(input.Snapshot.TakenAt),
		string(body),
	)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// LoadSnapshot returns the namespace's snapshot
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body string
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT body FROM snapshots WHERE namespace = ?`,
		s.namespace,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(body), &snapshot); err != nil {
		return nil, &PersistenceError{Op: "unmarshal", Err: err}
	}
	return &snapshot, nil
}
