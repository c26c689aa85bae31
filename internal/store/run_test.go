package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
)

// fakeDB is a minimal DB double — no mocking library appears anywhere in
// the example corpus, so a small hand-written fake is the simplest thing
// that exercises the query-building and JSON-encoding logic without a
// real Postgres connection.
type fakeDB struct {
	execCalls []string
	execErr   error
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.execCalls = append(f.execCalls, query)
	return nil, f.execErr
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestRunStore_CreateAssignsIDAndPersists(t *testing.T) {
	db := &fakeDB{}
	s := NewRunStore(db)

	run := &Run{
		Weeks:      2,
		Grid:       [][][]model.EmployeeID{{{1, 0, 2}}},
		FinalScore: 42.5,
	}

	if err := s.Create(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected Create to assign a non-nil ID")
	}
	if run.CreatedAt.IsZero() {
		t.Error("expected Create to stamp CreatedAt")
	}
	if len(db.execCalls) != 1 {
		t.Fatalf("expected exactly one exec call, got %d", len(db.execCalls))
	}
}

func TestDefaultListFilter(t *testing.T) {
	f := DefaultListFilter()
	if f.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", f.Limit)
	}
	if f.OrderDir != "desc" {
		t.Errorf("expected default order desc, got %s", f.OrderDir)
	}
}
