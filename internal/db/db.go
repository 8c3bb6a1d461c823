// Package db defines the storage facade for persisted snapshots.
package db

import (
	"context"
	"time"
)

// Store is the persistence facade. Drivers keep the full record mapping as a
// single opaque snapshot: the repository layer serializes the mapping, the
// driver only moves bytes.
type Store interface {
	Pinger
	SnapshotStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks storage availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SnapshotStore reads and writes the full store snapshot.
type SnapshotStore interface {
	// ReadSnapshot returns the persisted snapshot, or ErrSnapshotNotFound if
	// no snapshot has been written yet.
	ReadSnapshot(ctx context.Context) ([]byte, error)
	// WriteSnapshot durably replaces the snapshot with data.
	WriteSnapshot(ctx context.Context, data []byte) error
}
