package strdex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestOpenRequiresStorage(t *testing.T) {
	_, err := Open(context.Background())
	if err == nil {
		t.Fatal("expected error when no storage option is given")
	}
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "strings.json")

	client, err := Open(ctx, WithJSONFile(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer client.Close()

	rec, err := client.CreateString(ctx, "racecar")
	if err != nil {
		t.Fatalf("CreateString: %v", err)
	}
	if !rec.Properties().IsPalindrome {
		t.Error("expected racecar to be a palindrome")
	}

	if _, err := client.CreateString(ctx, "racecar"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate create: expected ErrAlreadyExists, got %v", err)
	}

	got, err := client.GetString(ctx, "racecar")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if got.ID() != rec.ID() {
		t.Errorf("ID = %q, want %q", got.ID(), rec.ID())
	}

	if _, err := client.GetString(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := client.CreateString(ctx, "hello world"); err != nil {
		t.Fatalf("CreateString: %v", err)
	}

	spec, err := client.TranslateQuery("all palindromic strings")
	if err != nil {
		t.Fatalf("TranslateQuery: %v", err)
	}
	records, total := client.ListStrings(ctx, spec, 0, 0)
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if records[0].Value() != "racecar" {
		t.Errorf("Value = %q, want racecar", records[0].Value())
	}

	if err := client.DeleteString(ctx, "racecar"); err != nil {
		t.Fatalf("DeleteString: %v", err)
	}
	if err := client.DeleteString(ctx, "racecar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestClientPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "strings.json")

	client, err := Open(ctx, WithJSONFile(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := client.CreateString(ctx, "durable"); err != nil {
		t.Fatalf("CreateString: %v", err)
	}
	client.Close()

	reopened, err := Open(ctx, WithJSONFile(path))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	rec, err := reopened.GetString(ctx, "durable")
	if err != nil {
		t.Fatalf("GetString after reopen: %v", err)
	}
	if rec.Value() != "durable" {
		t.Errorf("Value = %q, want durable", rec.Value())
	}
}
