package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/orensade/Intub/internal/shared/storage/kv"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(ctx, "history"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "history", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "history", `[{"id":"b"}]`); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.Get(ctx, "history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"id":"b"}]` {
		t.Fatalf("expected upserted value, got %q", got)
	}

	if err := store.Delete(ctx, "history"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "history"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set(ctx, "history", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "history")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got != "[]" {
		t.Fatalf("expected persisted value, got %q", got)
	}
}
