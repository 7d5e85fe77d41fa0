package web

import (
	"encoding/json"
	"net/http"
	"time"

	"clubdesk/internal/application/projections"
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetDashboard(r.Context(),
		projections.GetDashboardDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "dashboard.html", map[string]any{
			"Title":  "Dashboard",
			"Notice": noticeText(err),
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Title":          "Dashboard",
		"TotalMembers":   result.TotalMembers,
		"ActiveMembers":  result.ActiveMembers,
		"UnpaidInvoices": result.UnpaidInvoices,
		"UpcomingEvents": result.UpcomingEvents,
		"RecentPayments": result.RecentPayments,
	})
}

// handleAdminPerf shows request and upstream call timings from the
// in-memory collector.
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}

	window := 15 * time.Minute
	if v := r.URL.Query().Get("window"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 && d <= 24*time.Hour {
			window = d
		}
	}

	snap := perfCollector.Snapshot(timeNow().Add(-window), 20)

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
		return
	}

	renderTemplate(w, r, "admin_perf.html", map[string]any{
		"Title":    "Performance",
		"Snapshot": snap,
		"Window":   window.String(),
	})
}
