package session

import (
	"context"
	"errors"
	"time"

	domain "clubdesk/internal/domain/session"
)

// ErrNotFound is returned when no live session matches the token.
var ErrNotFound = errors.New("session not found")

// Store persists dashboard sessions.
type Store interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
