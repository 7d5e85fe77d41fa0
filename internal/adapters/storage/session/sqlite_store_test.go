package session_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	store "clubdesk/internal/adapters/storage/session"
	domain "clubdesk/internal/domain/session"
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

func sampleSession(hash string, now time.Time) domain.Session {
	return domain.Session{
		TokenHash: hash,
		UserID:    "u1",
		Email:     "ana@example.org",
		Name:      "Ana Silva",
		APIToken:  "bearer-token",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.Save(ctx, sampleSession("h1", now)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.GetByTokenHash(ctx, "h1")
	if err != nil {
		t.Fatalf("GetByTokenHash: %v", err)
	}
	if got.UserID != "u1" || got.APIToken != "bearer-token" {
		t.Errorf("session = %+v", got)
	}
	if !got.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("ExpiresAt = %v", got.ExpiresAt)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByTokenHash(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Save(ctx, sampleSession("h1", now)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "h1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByTokenHash(ctx, "h1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestDeleteExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	live := sampleSession("live", now)
	dead := sampleSession("dead", now.Add(-48*time.Hour))
	if err := s.Save(ctx, live); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, dead); err != nil {
		t.Fatal(err)
	}

	n, err := s.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d sessions, want 1", n)
	}
	if _, err := s.GetByTokenHash(ctx, "live"); err != nil {
		t.Errorf("live session lost: %v", err)
	}
	if _, err := s.GetByTokenHash(ctx, "dead"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expired session survived: %v", err)
	}
}
