package middleware

import (
	"context"
	"net/http"
	"time"

	sessionStore "clubdesk/internal/adapters/storage/session"
	domain "clubdesk/internal/domain/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID string
	Email  string
	Name   string

	// APIToken is the backend bearer token for this login.
	APIToken string

	// TokenHash keys the persisted session row.
	TokenHash string

	ExpiresAt time.Time
}

// Sessions resolves cookie tokens against the persistent store.
type Sessions struct {
	store sessionStore.Store
	now   func() time.Time
}

// NewSessions creates a session resolver backed by the given store.
func NewSessions(store sessionStore.Store) *Sessions {
	return &Sessions{store: store, now: time.Now}
}

// Resolve looks up a raw cookie token.
// PRE: token is non-empty
// POST: Returns the session if stored and not expired; expired rows
// are deleted on sight
func (s *Sessions) Resolve(ctx context.Context, token string) (Session, bool) {
	hash := domain.HashToken(token)
	stored, err := s.store.GetByTokenHash(ctx, hash)
	if err != nil {
		return Session{}, false
	}
	if stored.Expired(s.now()) {
		_ = s.store.Delete(ctx, hash)
		return Session{}, false
	}
	return Session{
		UserID:    stored.UserID,
		Email:     stored.Email,
		Name:      stored.Name,
		APIToken:  stored.APIToken,
		TokenHash: hash,
		ExpiresAt: stored.ExpiresAt,
	}, true
}

const sessionCookieName = "clubdesk_session"

// Auth returns middleware that resolves the session cookie and sets
// the session in context. It does NOT block unauthenticated requests;
// use RequireAuth for that.
func Auth(sessions *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Resolve(r.Context(), cookie.Value); ok {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  expiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// SessionCookieName returns the cookie name, for tests and logout.
func SessionCookieName() string {
	return sessionCookieName
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
