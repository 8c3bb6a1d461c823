// Package sqlite implements db.Store over a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kailas-cloud/strdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds parameters for a SQLite store.
type Config struct {
	Path string
}

// Store implements db.Store keeping the snapshot in a single-row table.
type Store struct {
	conn *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL
);`

// NewStore opens (or creates) the database and ensures the schema exists.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	conn, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return &db.Error{Op: "ping", Err: err}
	}
	return nil
}

// Close shuts down the connection pool.
func (s *Store) Close() {
	_ = s.conn.Close()
}

// WaitForReady checks connectivity once; a local database needs no polling.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Ping(ctx)
}

// ReadSnapshot returns the persisted snapshot row.
func (s *Store) ReadSnapshot(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.conn.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: "select", Err: err}
	}
	return data, nil
}

// WriteSnapshot upserts the snapshot row.
func (s *Store) WriteSnapshot(ctx context.Context, data []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO snapshots (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, data)
	if err != nil {
		return &db.Error{Op: "upsert", Err: err}
	}
	return nil
}
