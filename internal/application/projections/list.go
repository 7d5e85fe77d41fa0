package projections

import (
	"context"

	"clubdesk/internal/application/listutil"
)

// fetchList runs one paginated list call against the backend and folds
// its pagination block into view paging state. The backend is the only
// authority on filtering and page math; nothing is re-filtered here.
// INVARIANT: exactly one upstream request per call
func fetchList[T any](ctx context.Context, g Getter, path string, lp listutil.ListParams) ([]T, listutil.PageInfo, error) {
	var items []T
	pg, err := g.Get(ctx, path, lp.BackendQuery(), &items)
	if err != nil {
		return nil, listutil.PageInfo{}, err
	}
	return items, listutil.PageInfoFromBackend(lp, pg), nil
}
