package api

import "sync"

// Latest tags requests with monotonically increasing sequence numbers
// so only the most recently issued request's response may update
// shared state. A response whose tag is not the latest issued, or one
// that arrives after a newer response already applied, is discarded.
type Latest struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Begin registers a new request and returns its sequence tag.
// PRE: none
// POST: Returns a tag strictly greater than any previously issued
func (l *Latest) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// Apply runs fn only if seq is still the latest issued tag and no
// newer result has been applied. Returns whether fn ran.
// PRE: seq was returned by Begin on this Latest
// POST: fn ran at most once, under the guard's lock
func (l *Latest) Apply(seq uint64, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.issued || seq <= l.applied {
		return false
	}
	l.applied = seq
	fn()
	return true
}
