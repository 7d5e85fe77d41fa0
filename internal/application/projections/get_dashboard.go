package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
	"clubdesk/internal/domain/event"
	"clubdesk/internal/domain/member"
)

// GetDashboardResult carries the query result.
type GetDashboardResult struct {
	TotalMembers   int
	ActiveMembers  int
	UnpaidInvoices int

	UpcomingEvents []event.Event
	RecentPayments []billing.Payment
}

// GetDashboardDeps holds dependencies for GetDashboard.
type GetDashboardDeps struct {
	Backend Getter
}

// QueryGetDashboard aggregates the landing page counters and panels.
// Counts come from pagination totals so only one row is transferred
// per counter.
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (GetDashboardResult, error) {
	var result GetDashboardResult

	total, err := countOf[member.Member](ctx, deps.Backend, api.PathMembers, nil)
	if err != nil {
		return GetDashboardResult{}, err
	}
	result.TotalMembers = total

	active, err := countOf[member.Member](ctx, deps.Backend, api.PathMembers,
		map[string]string{"membership_status": "active"})
	if err != nil {
		return GetDashboardResult{}, err
	}
	result.ActiveMembers = active

	unpaid, err := countOf[billing.Invoice](ctx, deps.Backend, api.PathInvoices,
		map[string]string{"status": billing.StatusUnpaid})
	if err != nil {
		return GetDashboardResult{}, err
	}
	result.UnpaidInvoices = unpaid

	events, _, err := fetchList[event.Event](ctx, deps.Backend, api.PathEvents, listutil.ListParams{
		PageParams:   listutil.PageParams{Page: 1, PerPage: 5},
		SortParams:   listutil.SortParams{Sort: "start_date", Dir: "asc"},
		FilterParams: listutil.FilterParams{Filters: map[string]string{"status": event.StatusPlanned}},
	})
	if err != nil {
		return GetDashboardResult{}, err
	}
	result.UpcomingEvents = events

	payments, _, err := fetchList[billing.Payment](ctx, deps.Backend, api.PathPayments, listutil.ListParams{
		PageParams: listutil.PageParams{Page: 1, PerPage: 5},
		SortParams: listutil.SortParams{Sort: "payment_date", Dir: "desc"},
	})
	if err != nil {
		return GetDashboardResult{}, err
	}
	result.RecentPayments = payments

	return result, nil
}

func countOf[T any](ctx context.Context, g Getter, path string, filters map[string]string) (int, error) {
	lp := listutil.ListParams{
		PageParams:   listutil.PageParams{Page: 1, PerPage: 1},
		FilterParams: listutil.FilterParams{Filters: filters},
	}
	_, page, err := fetchList[T](ctx, g, path, lp)
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}
