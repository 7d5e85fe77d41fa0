package session

import (
	"context"
	"database/sql"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/session"
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

const sessionColumns = `token_hash, user_id, email, name, api_token, created_at, expires_at`

// GetByTokenHash retrieves a session by hashed token.
// PRE: tokenHash is non-empty
// POST: Returns the session or ErrNotFound
func (s *SQLiteStore) GetByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM session WHERE token_hash = ?`, tokenHash)
	return scanSession(row)
}

// Save inserts or updates a session.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, v domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (token_hash, user_id, email, name, api_token, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(token_hash) DO UPDATE SET
		   user_id=excluded.user_id, email=excluded.email, name=excluded.name,
		   api_token=excluded.api_token, created_at=excluded.created_at,
		   expires_at=excluded.expires_at`,
		v.TokenHash, v.UserID, v.Email, v.Name, v.APIToken,
		v.CreatedAt.Format(timeLayout), v.ExpiresAt.Format(timeLayout))
	return err
}

// Delete removes a session by hashed token.
// PRE: tokenHash is non-empty
// POST: Entity with given token hash is removed
func (s *SQLiteStore) Delete(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE token_hash = ?`, tokenHash)
	return err
}

// DeleteExpired removes all sessions past their expiry.
// POST: Returns the number of sessions removed
func (s *SQLiteStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE expires_at < ?`, now.Format(timeLayout))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func scanSession(row *sql.Row) (domain.Session, error) {
	var v domain.Session
	var createdAt, expiresAt string
	err := row.Scan(&v.TokenHash, &v.UserID, &v.Email, &v.Name, &v.APIToken, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return domain.Session{}, ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	if v.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.Session{}, err
	}
	if v.ExpiresAt, err = time.Parse(timeLayout, expiresAt); err != nil {
		return domain.Session{}, err
	}
	return v, nil
}
