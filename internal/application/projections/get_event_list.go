package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/event"
)

// GetEventListQuery carries query parameters.
type GetEventListQuery struct {
	Params listutil.ListParams
}

// GetEventListResult carries the query result.
type GetEventListResult struct {
	Events []event.Event
	Page   listutil.PageInfo
}

// GetEventListDeps holds dependencies for GetEventList.
type GetEventListDeps struct {
	Backend Getter
}

// QueryGetEventList retrieves one page of events.
func QueryGetEventList(ctx context.Context, query GetEventListQuery, deps GetEventListDeps) (GetEventListResult, error) {
	events, page, err := fetchList[event.Event](ctx, deps.Backend, api.PathEvents, query.Params)
	if err != nil {
		return GetEventListResult{}, err
	}
	return GetEventListResult{Events: events, Page: page}, nil
}

// GetEventDetailQuery carries query parameters.
type GetEventDetailQuery struct {
	EventID string
}

// GetEventDetailResult carries the query result.
type GetEventDetailResult struct {
	Event event.Event
}

// QueryGetEventDetail retrieves one event.
func QueryGetEventDetail(ctx context.Context, query GetEventDetailQuery, deps GetEventListDeps) (GetEventDetailResult, error) {
	var ev event.Event
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathEvents, query.EventID), nil, &ev)
	if err != nil {
		return GetEventDetailResult{}, err
	}
	return GetEventDetailResult{Event: ev}, nil
}
