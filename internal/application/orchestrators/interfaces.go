package orchestrators

import (
	"context"
	"net/url"

	"clubdesk/internal/adapters/api"
)

// Backend is the slice of the upstream client the orchestrators use.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) (*api.Pagination, error)
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
