package session_test

import (
	"testing"
	"time"

	"clubdesk/internal/domain/session"
)

func TestExpiryFor(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tokenExp time.Time
		want     time.Time
	}{
		{"noClaim", time.Time{}, now.Add(24 * time.Hour)},
		{"tokenOutlivesCap", now.Add(72 * time.Hour), now.Add(24 * time.Hour)},
		{"tokenExpiresFirst", now.Add(2 * time.Hour), now.Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.ExpiryFor(now, tt.tokenExp)
			if !got.Equal(tt.want) {
				t.Errorf("ExpiryFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTokenUnique(t *testing.T) {
	a, err := session.NewToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := session.NewToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two fresh tokens must differ")
	}
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(a))
	}
}

func TestHashTokenStable(t *testing.T) {
	if session.HashToken("abc") != session.HashToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if session.HashToken("abc") == session.HashToken("abd") {
		t.Fatal("different tokens must hash differently")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	s := session.Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Error("session should still be valid")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Error("session should have expired")
	}
}
