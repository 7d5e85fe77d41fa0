package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// MaxLifetime caps a session regardless of how long the backend token
// stays valid.
const MaxLifetime = 24 * time.Hour

// Session is one authenticated dashboard login. The raw cookie token
// is never stored; only its hash is persisted.
type Session struct {
	TokenHash string
	UserID    string
	Email     string
	Name      string

	// APIToken is the backend bearer token attached to every upstream
	// request made on this session's behalf.
	APIToken string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// ExpiryFor picks the session expiry: 24 hours, shortened to the
// backend token's own expiry when that comes first. A zero tokenExp
// means the token carries no usable expiry claim.
func ExpiryFor(now time.Time, tokenExp time.Time) time.Time {
	exp := now.Add(MaxLifetime)
	if !tokenExp.IsZero() && tokenExp.Before(exp) {
		exp = tokenExp
	}
	return exp
}

// NewToken returns a fresh random session token in hex form.
func NewToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashToken derives the storage key for a raw token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
