package projections_test

import (
	"context"
	"testing"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/projections"
)

func TestQueryGetDashboard(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		api.PathMembers: {body: `[{"id":"m1"}]`,
			pagination: &api.Pagination{Count: 120, TotalPages: 120, CurrentPage: 1, PageSize: 1}},
		api.PathInvoices: {body: `[{"id":"i1"}]`,
			pagination: &api.Pagination{Count: 7, TotalPages: 7, CurrentPage: 1, PageSize: 1}},
		api.PathEvents: {body: `[{"id":"e1","title":"AGM","status":"planned"}]`,
			pagination: &api.Pagination{Count: 1, TotalPages: 1, CurrentPage: 1, PageSize: 5}},
		api.PathPayments: {body: `[{"id":"p1","amount":"50.00"},{"id":"p2","amount":"20.00"}]`,
			pagination: &api.Pagination{Count: 2, TotalPages: 1, CurrentPage: 1, PageSize: 5}},
	}}

	result, err := projections.QueryGetDashboard(context.Background(),
		projections.GetDashboardDeps{Backend: backend})
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}

	// Both member counters read the same endpoint with different
	// filters; the fake serves the same total for both.
	if result.TotalMembers != 120 || result.ActiveMembers != 120 {
		t.Errorf("member counts = %d / %d", result.TotalMembers, result.ActiveMembers)
	}
	if result.UnpaidInvoices != 7 {
		t.Errorf("UnpaidInvoices = %d, want 7", result.UnpaidInvoices)
	}
	if len(result.UpcomingEvents) != 1 || result.UpcomingEvents[0].Title != "AGM" {
		t.Errorf("events = %+v", result.UpcomingEvents)
	}
	if len(result.RecentPayments) != 2 {
		t.Errorf("payments = %+v", result.RecentPayments)
	}

	// Counters must transfer one row each, never the full table.
	q := backend.lastQuery(t, api.PathInvoices)
	if q.Get("page_size") != "1" {
		t.Errorf("invoice counter page_size = %q, want 1", q.Get("page_size"))
	}
	if q.Get("status") != "unpaid" {
		t.Errorf("invoice counter filter = %q", q.Get("status"))
	}
}

func TestQueryGetDashboard_Failure(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		api.PathMembers: {err: errUpstream},
	}}

	_, err := projections.QueryGetDashboard(context.Background(),
		projections.GetDashboardDeps{Backend: backend})
	if err == nil {
		t.Fatal("expected error when a counter fetch fails")
	}
}
