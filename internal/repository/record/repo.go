// Package record persists the identifier-keyed record mapping through the
// snapshot store.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/strdex/internal/db"
	"github.com/kailas-cloud/strdex/internal/domain/analysis"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// store is the consumer interface for persistence (ISP).
type store interface {
	ReadSnapshot(ctx context.Context) ([]byte, error)
	WriteSnapshot(ctx context.Context, data []byte) error
}

// Repo implements usecase/strings.Repository.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// storedRecord is the persisted layout of a record. Keys are stable; the
// frequency map inside properties is string-keyed counts.
type storedRecord struct {
	ID         string           `json:"id"`
	Value      string           `json:"value"`
	Properties storedProperties `json:"properties"`
	CreatedAt  int64            `json:"createdAt"`
}

// storedProperties carries the derived properties plus the hash, which
// duplicates the record id in the persisted layout.
type storedProperties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"isPalindrome"`
	UniqueCharacters   int            `json:"uniqueCharacters"`
	WordCount          int            `json:"wordCount"`
	Hash               string         `json:"hash"`
	CharacterFrequency map[string]int `json:"characterFrequency"`
}

// LoadAll reads the persisted mapping. A missing snapshot yields an empty
// mapping; any other failure is returned for the caller to decide on.
func (r *Repo) LoadAll(ctx context.Context) (map[string]domrec.Record, error) {
	raw, err := r.store.ReadSnapshot(ctx)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		return map[string]domrec.Record{}, nil
	}
	if err != nil {
		return map[string]domrec.Record{}, fmt.Errorf("read snapshot: %w", err)
	}

	var stored map[string]storedRecord
	if err := json.Unmarshal(raw, &stored); err != nil {
		return map[string]domrec.Record{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	records := make(map[string]domrec.Record, len(stored))
	for id, sr := range stored {
		records[id] = domrec.Reconstruct(sr.ID, sr.Value, analysis.Properties{
			Length:             sr.Properties.Length,
			IsPalindrome:       sr.Properties.IsPalindrome,
			UniqueCharacters:   sr.Properties.UniqueCharacters,
			WordCount:          sr.Properties.WordCount,
			CharacterFrequency: sr.Properties.CharacterFrequency,
		}, sr.CreatedAt)
	}
	return records, nil
}

// SaveAll replaces the persisted mapping with the full current state.
func (r *Repo) SaveAll(ctx context.Context, records map[string]domrec.Record) error {
	stored := make(map[string]storedRecord, len(records))
	for id, rec := range records {
		p := rec.Properties()
		stored[id] = storedRecord{
			ID:    rec.ID(),
			Value: rec.Value(),
			Properties: storedProperties{
				Length:             p.Length,
				IsPalindrome:       p.IsPalindrome,
				UniqueCharacters:   p.UniqueCharacters,
				WordCount:          p.WordCount,
				Hash:               rec.ID(),
				CharacterFrequency: p.CharacterFrequency,
			},
			CreatedAt: rec.CreatedAt(),
		}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.store.WriteSnapshot(ctx, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
