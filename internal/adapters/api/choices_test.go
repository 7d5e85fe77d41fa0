package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"clubdesk/internal/adapters/api"
)

func choicesBackend(hits *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Write([]byte(`{"code": 200, "status": "success", "data": [
			{"id": 1, "name": "Lifetime"}, {"id": 2, "name": "Annual"}, {"id": 3, "name": "Honorary"}
		]}`))
	}))
}

// TestChoiceCache_ServesCached verifies a second Get within the TTL
// does not hit the backend.
func TestChoiceCache_ServesCached(t *testing.T) {
	var hits int64
	backend := choicesBackend(&hits)
	defer backend.Close()

	cache := api.NewChoiceCache(api.New(backend.URL))
	ctx := context.Background()

	first, err := cache.Get(ctx, api.ChoicesMembershipTypes)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	second, err := cache.Get(ctx, api.ChoicesMembershipTypes)
	if err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if atomic.LoadInt64(&hits) != 1 {
		t.Errorf("backend hits = %d, want 1", hits)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from fetched result")
	}
	if len(first) != 3 || first[0].Name != "Lifetime" {
		t.Errorf("choices = %+v", first)
	}
}

// TestChoiceCache_RefetchesExpired verifies an expired entry goes back
// to the backend.
func TestChoiceCache_RefetchesExpired(t *testing.T) {
	var hits int64
	backend := choicesBackend(&hits)
	defer backend.Close()

	cache := api.NewChoiceCache(api.New(backend.URL))
	cache.SetTTL(0)
	ctx := context.Background()

	if _, err := cache.Get(ctx, api.ChoicesGenders); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if _, err := cache.Get(ctx, api.ChoicesGenders); err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if atomic.LoadInt64(&hits) != 2 {
		t.Errorf("backend hits = %d, want 2", hits)
	}
}

// TestChoiceCache_StaleFallbackOnFailure verifies a failed refresh
// serves the previously cached list instead of an error.
func TestChoiceCache_StaleFallbackOnFailure(t *testing.T) {
	var hits int64
	backend := choicesBackend(&hits)

	cache := api.NewChoiceCache(api.New(backend.URL))
	cache.SetTTL(0)
	ctx := context.Background()

	first, err := cache.Get(ctx, api.ChoicesInstitutes)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	backend.Close()

	stale, err := cache.Get(ctx, api.ChoicesInstitutes)
	if err != nil {
		t.Fatalf("Get() with dead backend error: %v", err)
	}
	if !reflect.DeepEqual(stale, first) {
		t.Error("expected the stale cached list when the refresh fails")
	}
}

// TestFilterChoices verifies the case-insensitive substring filter for
// reference lists.
func TestFilterChoices(t *testing.T) {
	choices := []api.Choice{
		{ID: 1, Name: "Lifetime"},
		{ID: 2, Name: "Annual"},
		{ID: 3, Name: "Honorary Life"},
	}

	tests := []struct {
		name  string
		q     string
		want  int
		first string
	}{
		{"empty query returns all", "", 3, "Lifetime"},
		{"case-insensitive match", "life", 2, "Lifetime"},
		{"exact word", "Annual", 1, "Annual"},
		{"no match", "junior", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := api.FilterChoices(choices, tt.q)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			if tt.want > 0 && got[0].Name != tt.first {
				t.Errorf("first = %q, want %q", got[0].Name, tt.first)
			}
		})
	}
}
