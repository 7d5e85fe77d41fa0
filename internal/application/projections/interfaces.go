package projections

import (
	"context"
	"net/url"

	"clubdesk/internal/adapters/api"
)

// Getter is the read slice of the upstream client the projections use.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values, out any) (*api.Pagination, error)
}

// ChoiceSource serves cached reference lists for filter dropdowns.
type ChoiceSource interface {
	Get(ctx context.Context, path string) ([]api.Choice, error)
}
