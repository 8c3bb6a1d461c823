// Package record defines the stored string aggregate.
package record

import (
	"time"

	"github.com/kailas-cloud/strdex/internal/domain/analysis"
	"github.com/kailas-cloud/strdex/internal/domain/identity"
)

// Record is a stored string with its derived properties (immutable value
// object). The identifier is a pure function of the value, so two records
// built from the same value always carry the same id. There is no update
// operation: properties never change after creation.
type Record struct {
	id         string
	value      string
	properties analysis.Properties
	createdAt  int64
}

// New computes the identifier and properties for value and stamps the
// creation time. Any value is accepted, including empty.
func New(value string) Record {
	return Record{
		id:         identity.Digest(value),
		value:      value,
		properties: analysis.Analyze(value),
		createdAt:  time.Now().UnixMilli(),
	}
}

// Reconstruct creates a Record from persisted state without recomputation
// (storage hydration).
func Reconstruct(id, value string, properties analysis.Properties, createdAt int64) Record {
	return Record{id: id, value: value, properties: properties, createdAt: createdAt}
}

// ID returns the content identifier (SHA-256 hex digest of the value).
func (r Record) ID() string { return r.id }

// Value returns the original string, unmodified.
func (r Record) Value() string { return r.value }

// Properties returns the derived property set.
func (r Record) Properties() analysis.Properties { return r.properties }

// CreatedAt returns the creation timestamp in epoch milliseconds.
func (r Record) CreatedAt() int64 { return r.createdAt }
