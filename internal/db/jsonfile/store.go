// Package jsonfile implements db.Store over a single on-disk JSON snapshot.
package jsonfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/kailas-cloud/strdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds parameters for a file-backed store.
type Config struct {
	Path     string
	Compress bool
}

// Store implements db.Store as a single file, rewritten in full on every
// WriteSnapshot. Writes go through a temp file and rename; that is the only
// durability the driver promises.
type Store struct {
	path     string
	compress bool
}

// NewStore creates a file store, creating the parent directory if needed.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &Store{path: cfg.Path, compress: cfg.Compress}, nil
}

// Ping checks that the parent directory is accessible.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return &db.Error{Op: "stat", Err: err}
	}
	return nil
}

// Close is a no-op; the store holds no open handles between operations.
func (s *Store) Close() {}

// WaitForReady checks accessibility once; a local file needs no polling.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// ReadSnapshot returns the file contents, decompressing if configured.
func (s *Store) ReadSnapshot(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, db.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: "read", Err: err}
	}

	if s.compress {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &db.Error{Op: "gunzip", Err: err}
		}
		defer func() { _ = zr.Close() }()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, &db.Error{Op: "gunzip", Err: err}
		}
		return out, nil
	}
	return data, nil
}

// WriteSnapshot replaces the file contents via temp file + rename.
func (s *Store) WriteSnapshot(_ context.Context, data []byte) error {
	if s.compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return &db.Error{Op: "gzip", Err: err}
		}
		if err := zw.Close(); err != nil {
			return &db.Error{Op: "gzip", Err: err}
		}
		data = buf.Bytes()
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &db.Error{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &db.Error{Op: "rename", Err: err}
	}
	return nil
}
