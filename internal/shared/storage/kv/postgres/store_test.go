package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/orensade/Intub/internal/shared/storage/kv"
)

func TestPostgresGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	store := &Store{DB: db}

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"a"}]`)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_records WHERE key = $1`)).
		WithArgs("history").
		WillReturnRows(rows)

	got, err := store.Get(context.Background(), "history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"id":"a"}]` {
		t.Fatalf("unexpected value %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	store := &Store{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_records WHERE key = $1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
}

func TestPostgresSetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	store := &Store{DB: db}

	mock.ExpectExec(`(?s)INSERT INTO kv_records .*ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("history", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Set(context.Background(), "history", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	store := &Store{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_records WHERE key = $1`)).
		WithArgs("history").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Delete(context.Background(), "history"); err != nil {
		t.Fatalf("delete absent should not error, got %v", err)
	}
}
