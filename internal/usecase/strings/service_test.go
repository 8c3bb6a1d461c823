package strings

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	"github.com/kailas-cloud/strdex/internal/domain/record"
)

// --- Mocks ---

type mockRepo struct {
	loaded    map[string]record.Record
	loadErr   error
	saveErr   error
	saveCalls int
	lastSave  map[string]record.Record
}

func (m *mockRepo) LoadAll(_ context.Context) (map[string]record.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.loaded == nil {
		return map[string]record.Record{}, nil
	}
	return m.loaded, nil
}

func (m *mockRepo) SaveAll(_ context.Context, records map[string]record.Record) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastSave = make(map[string]record.Record, len(records))
	for k, v := range records {
		m.lastSave[k] = v
	}
	return nil
}

func newLoaded(t *testing.T, repo *mockRepo) *Service {
	t.Helper()
	svc := New(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc
}

func boolPtr(b bool) *bool { return &b }

// --- Tests ---

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	svc := newLoaded(t, repo)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "racecar")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Value() != "racecar" {
		t.Errorf("Value = %q", rec.Value())
	}
	if !rec.Properties().IsPalindrome {
		t.Error("properties not computed at creation")
	}
	if repo.saveCalls != 1 {
		t.Errorf("SaveAll called %d times, want 1", repo.saveCalls)
	}
	if _, ok := repo.lastSave[rec.ID()]; !ok {
		t.Error("created record not in persisted state")
	}
}

func TestCreate_Duplicate(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "hello"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(ctx, "hello")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("error = %v, want ErrAlreadyExists", err)
	}
	if svc.Count() != 1 {
		t.Errorf("Count = %d, want 1", svc.Count())
	}
}

func TestCreate_PersistFailureRollsBack(t *testing.T) {
	repo := &mockRepo{saveErr: errors.New("disk full")}
	svc := newLoaded(t, repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "hello"); err == nil {
		t.Fatal("expected persist failure")
	}
	if svc.Count() != 0 {
		t.Error("failed create must not be visible")
	}

	// Store still works after the failure clears.
	repo.saveErr = nil
	if _, err := svc.Create(ctx, "hello"); err != nil {
		t.Fatalf("Create after recovery: %v", err)
	}
}

func TestGet(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})
	ctx := context.Background()

	created, _ := svc.Create(ctx, "hello")

	got, err := svc.Get(ctx, "hello")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID() != created.ID() {
		t.Errorf("ID = %q, want %q", got.ID(), created.ID())
	}

	if _, err := svc.Get(ctx, "absent"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	// Identity is exact: different case is a different string.
	if _, err := svc.Get(ctx, "Hello"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound for case-variant lookup", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{}
	svc := newLoaded(t, repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "hello"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "hello"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "hello"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted record still retrievable: %v", err)
	}
	if len(repo.lastSave) != 0 {
		t.Error("deletion not persisted")
	}

	if err := svc.Delete(ctx, "hello"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestDelete_PersistFailureRollsBack(t *testing.T) {
	repo := &mockRepo{}
	svc := newLoaded(t, repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "keep me"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if err := svc.Delete(ctx, "keep me"); err == nil {
		t.Fatal("expected persist failure")
	}
	if _, err := svc.Get(ctx, "keep me"); err != nil {
		t.Errorf("record lost after failed delete: %v", err)
	}

	// Insertion order survives the rollback.
	repo.saveErr = nil
	page, total := svc.List(ctx, filter.Spec{}, 0, 0)
	if total != 1 || len(page) != 1 || page[0].Value() != "keep me" {
		t.Errorf("page = %v total = %d", page, total)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})
	ctx := context.Background()

	for _, v := range []string{"charlie", "alpha", "bravo"} {
		if _, err := svc.Create(ctx, v); err != nil {
			t.Fatalf("Create(%q): %v", v, err)
		}
	}

	page, total := svc.List(ctx, filter.Spec{}, 0, 0)
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	want := []string{"charlie", "alpha", "bravo"}
	for i, w := range want {
		if page[i].Value() != w {
			t.Errorf("page[%d] = %q, want %q", i, page[i].Value(), w)
		}
	}
}

func TestList_FilterAndPage(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})
	ctx := context.Background()

	for _, v := range []string{"noon", "hello", "racecar", "abba"} {
		if _, err := svc.Create(ctx, v); err != nil {
			t.Fatalf("Create(%q): %v", v, err)
		}
	}

	page, total := svc.List(ctx, filter.Spec{IsPalindrome: boolPtr(true)}, 1, 1)
	if total != 3 {
		t.Errorf("total = %d, want 3 palindromes before slicing", total)
	}
	if len(page) != 1 || page[0].Value() != "racecar" {
		t.Errorf("page = %v, want [racecar]", page)
	}
}

func TestList_OffsetPastMatches(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})
	ctx := context.Background()

	for _, v := range []string{"a", "b"} {
		if _, err := svc.Create(ctx, v); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, total := svc.List(ctx, filter.Spec{}, 1000, 10)
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(page) != 0 {
		t.Errorf("page len = %d, want 0", len(page))
	}
}

func TestLoad_OrdersByCreationTime(t *testing.T) {
	older := record.Reconstruct("id-b", "second", record.New("second").Properties(), 200)
	oldest := record.Reconstruct("id-a", "first", record.New("first").Properties(), 100)
	repo := &mockRepo{loaded: map[string]record.Record{
		"id-b": older,
		"id-a": oldest,
	}}

	svc := newLoaded(t, repo)
	page, total := svc.List(context.Background(), filter.Spec{}, 0, 0)
	if total != 2 {
		t.Fatalf("total = %d", total)
	}
	if page[0].Value() != "first" || page[1].Value() != "second" {
		t.Errorf("load order = [%q %q], want createdAt order", page[0].Value(), page[1].Value())
	}
}

func TestTranslate_Passthrough(t *testing.T) {
	svc := New(&mockRepo{})

	spec, err := svc.Translate("palindromic strings longer than 5")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if spec.IsPalindrome == nil || spec.MinLength == nil || *spec.MinLength != 5 {
		t.Errorf("spec = %+v", spec)
	}

	if _, err := svc.Translate("  "); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Errorf("error = %v, want ErrEmptyQuery", err)
	}
}

func TestCreate_EmptyStringAllowed(t *testing.T) {
	svc := newLoaded(t, &mockRepo{})

	rec, err := svc.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create(\"\"): %v", err)
	}
	p := rec.Properties()
	if p.Length != 0 || !p.IsPalindrome || p.WordCount != 0 || p.UniqueCharacters != 0 {
		t.Errorf("properties = %+v", p)
	}
}
