package resetflow

import (
	"context"
	"errors"
	"time"

	domain "clubdesk/internal/domain/resetflow"
)

// ErrNotFound is returned when no flow matches the id.
var ErrNotFound = errors.New("reset flow not found")

// Store persists in-progress password reset flows.
type Store interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Save(ctx context.Context, value *domain.Flow) error
	Delete(ctx context.Context, id string) error
	DeleteStale(ctx context.Context, now time.Time) (int, error)
}
