package api

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Choice is a backend-managed enumerated value ("reference code"):
// an {id, name} pair used to populate selection controls.
type Choice struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultChoiceTTL is how long a fetched choice list stays fresh.
// Choice lists are the only client-side cache in the dashboard.
const DefaultChoiceTTL = 5 * time.Minute

type choiceEntry struct {
	choices   []Choice
	fetchedAt time.Time
}

// ChoiceCache fetches and caches reference-choice lists keyed by their
// backend path. Refreshes go through a per-path latest-wins guard so a
// slow stale fetch can never overwrite a newer one.
type ChoiceCache struct {
	client *Client
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]choiceEntry
	guards  map[string]*Latest
}

// NewChoiceCache creates a cache over the given client.
// PRE: client is non-nil
// POST: Returns an empty cache with the default TTL
func NewChoiceCache(client *Client) *ChoiceCache {
	return &ChoiceCache{
		client:  client,
		ttl:     DefaultChoiceTTL,
		entries: make(map[string]choiceEntry),
		guards:  make(map[string]*Latest),
	}
}

// Get returns the choice list at path, serving a fresh cached copy
// when available and fetching otherwise. A stale cached copy is
// returned as fallback when the fetch fails.
// PRE: path is a backend choices endpoint
// POST: Returns the most recent list the cache could obtain
func (cc *ChoiceCache) Get(ctx context.Context, path string) ([]Choice, error) {
	cc.mu.RLock()
	entry, ok := cc.entries[path]
	ttl := cc.ttl
	cc.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < ttl {
		return entry.choices, nil
	}

	guard := cc.guard(path)
	seq := guard.Begin()

	var choices []Choice
	if _, err := cc.client.Get(ctx, path, nil, &choices); err != nil {
		if ok {
			// Serve stale rather than nothing
			return entry.choices, nil
		}
		return nil, err
	}

	guard.Apply(seq, func() {
		cc.mu.Lock()
		cc.entries[path] = choiceEntry{choices: choices, fetchedAt: time.Now()}
		cc.mu.Unlock()
	})
	return choices, nil
}

// SetTTL overrides the freshness window.
func (cc *ChoiceCache) SetTTL(ttl time.Duration) {
	cc.mu.Lock()
	cc.ttl = ttl
	cc.mu.Unlock()
}

func (cc *ChoiceCache) guard(path string) *Latest {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	g, ok := cc.guards[path]
	if !ok {
		g = &Latest{}
		cc.guards[path] = g
	}
	return g
}

// FilterChoices narrows a fully fetched choice list by case-insensitive
// substring match on the name. Choice lists are non-paginated reference
// data, the one place client-side filtering is the authority.
// PRE: none
// POST: Returns choices whose name contains q; all choices when q is empty
func FilterChoices(choices []Choice, q string) []Choice {
	if q == "" {
		return choices
	}
	needle := strings.ToLower(q)
	var out []Choice
	for _, c := range choices {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}
