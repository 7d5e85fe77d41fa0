package resetflow_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	store "clubdesk/internal/adapters/storage/resetflow"
	domain "clubdesk/internal/domain/resetflow"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return store.NewSQLiteStore(db)
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	flow := domain.New("r1", now)
	if err := flow.EnterEmail("ana@example.org", now); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, flow); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.State != domain.StateEmailEntered || got.Email != "ana@example.org" {
		t.Errorf("flow = %+v", got)
	}

	// The restored flow must keep enforcing step order.
	if err := got.MarkPasswordSet(now); !errors.Is(err, domain.ErrWrongState) {
		t.Errorf("err = %v, want ErrWrongState", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetByID(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteStale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	fresh := domain.New("fresh", now)
	stale := domain.New("stale", now.Add(-time.Hour))
	if err := s.Save(ctx, fresh); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, stale); err != nil {
		t.Fatal(err)
	}

	n, err := s.DeleteStale(ctx, now)
	if err != nil {
		t.Fatalf("DeleteStale: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d flows, want 1", n)
	}
	if _, err := s.GetByID(ctx, "fresh"); err != nil {
		t.Errorf("fresh flow lost: %v", err)
	}
	if _, err := s.GetByID(ctx, "stale"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("stale flow survived: %v", err)
	}
}
