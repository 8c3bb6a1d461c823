// Package strings implements the record store: creation, lookup, deletion,
// and filtered listing of analyzed strings.
package strings

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/identity"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	"github.com/kailas-cloud/strdex/internal/domain/query/translate"
	"github.com/kailas-cloud/strdex/internal/domain/record"
	"github.com/kailas-cloud/strdex/internal/metrics"
)

// Repository persists the full record mapping.
type Repository interface {
	LoadAll(ctx context.Context) (map[string]record.Record, error)
	SaveAll(ctx context.Context, records map[string]record.Record) error
}

// Service owns the in-memory record mapping. All mutations and their
// persistence are serialized behind one lock; a mutation is only visible
// after the full state has been persisted.
type Service struct {
	repo Repository

	mu      sync.RWMutex
	records map[string]record.Record
	order   []string // insertion order of identifiers
}

// New creates a string service with an empty store. Call Load to hydrate it
// from the repository.
func New(repo Repository) *Service {
	return &Service{
		repo:    repo,
		records: make(map[string]record.Record),
	}
}

// Load hydrates the store from persisted state. Hydrated records are ordered
// by creation time (the persisted mapping itself is unordered), ties broken
// by identifier.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	order := make([]string, 0, len(records))
	for id := range records {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := records[order[i]], records[order[j]]
		if a.CreatedAt() != b.CreatedAt() {
			return a.CreatedAt() < b.CreatedAt()
		}
		return a.ID() < b.ID()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.order = order
	metrics.RecordsStored.Set(float64(len(records)))
	return nil
}

// Create analyzes and stores a new string. Fails with ErrAlreadyExists if a
// record with the same identifier is present. The updated store is persisted
// before the mutation becomes visible.
func (s *Service) Create(ctx context.Context, value string) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity.Digest(value)
	if _, ok := s.records[id]; ok {
		return record.Record{}, fmt.Errorf("identifier %s: %w", id, domain.ErrAlreadyExists)
	}

	rec := record.New(value)
	s.records[id] = rec
	s.order = append(s.order, id)

	if err := s.repo.SaveAll(ctx, s.records); err != nil {
		delete(s.records, id)
		s.order = s.order[:len(s.order)-1]
		return record.Record{}, fmt.Errorf("persist store: %w", err)
	}

	metrics.RecordsStored.Set(float64(len(s.records)))
	return rec, nil
}

// Get returns the stored record for a value.
func (s *Service) Get(_ context.Context, value string) (record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := identity.Digest(value)
	rec, ok := s.records[id]
	if !ok {
		return record.Record{}, fmt.Errorf("identifier %s: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

// Delete removes the record for a value and persists the updated store.
func (s *Service) Delete(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity.Digest(value)
	rec, ok := s.records[id]
	if !ok {
		return fmt.Errorf("identifier %s: %w", id, domain.ErrNotFound)
	}

	delete(s.records, id)
	pos := -1
	for i, oid := range s.order {
		if oid == id {
			pos = i
			break
		}
	}
	if pos >= 0 {
		s.order = append(s.order[:pos], s.order[pos+1:]...)
	}

	if err := s.repo.SaveAll(ctx, s.records); err != nil {
		s.records[id] = rec
		if pos >= 0 {
			s.order = append(s.order[:pos], append([]string{id}, s.order[pos:]...)...)
		}
		return fmt.Errorf("persist store: %w", err)
	}

	metrics.RecordsStored.Set(float64(len(s.records)))
	return nil
}

// List returns the page of records matching the filter spec in insertion
// order, along with the total match count before slicing.
func (s *Service) List(_ context.Context, spec filter.Spec, offset, limit int) ([]record.Record, int) {
	s.mu.RLock()
	all := make([]record.Record, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.records[id])
	}
	s.mu.RUnlock()

	matches := filter.Evaluate(all, spec)
	return filter.Page(matches, offset, limit)
}

// Translate converts a natural-language query into a filter spec.
func (s *Service) Translate(query string) (filter.Spec, error) {
	return translate.Translate(query)
}

// Count returns the number of stored records.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
