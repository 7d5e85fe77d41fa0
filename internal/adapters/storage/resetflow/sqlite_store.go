package resetflow

import (
	"context"
	"database/sql"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/resetflow"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a flow by ID.
// PRE: id is non-empty
// POST: Returns the flow or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*domain.Flow, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, state, email, created_at, updated_at FROM reset_flow WHERE id = ?`, id)

	var v domain.Flow
	var state, createdAt, updatedAt string
	err := row.Scan(&v.ID, &state, &v.Email, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.State = domain.State(state)
	if v.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, err
	}
	if v.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// Save inserts or updates a flow.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, v *domain.Flow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reset_flow (id, state, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   state=excluded.state, email=excluded.email,
		   created_at=excluded.created_at, updated_at=excluded.updated_at`,
		v.ID, string(v.State), v.Email,
		v.CreatedAt.Format(timeLayout), v.UpdatedAt.Format(timeLayout))
	return err
}

// Delete removes a flow by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reset_flow WHERE id = ?`, id)
	return err
}

// DeleteStale removes flows that have outlived their TTL.
// POST: Returns the number of flows removed
func (s *SQLiteStore) DeleteStale(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-domain.TTL)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reset_flow WHERE updated_at < ?`, cutoff.Format(timeLayout))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
