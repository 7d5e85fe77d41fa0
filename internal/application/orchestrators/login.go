package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/api"
	domain "clubdesk/internal/domain/session"
)

// SessionStoreForLogin defines the store interface needed by Login and Logout.
type SessionStoreForLogin interface {
	Save(ctx context.Context, value domain.Session) error
	Delete(ctx context.Context, tokenHash string) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	// Token is the raw session cookie value; only its hash is stored.
	Token     string
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Backend      Backend
	SessionStore SessionStoreForLogin
	Now          func() time.Time
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// loginResponse is the backend's login payload.
type loginResponse struct {
	Access string `json:"access"`
	User   struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// ExecuteLogin exchanges credentials for a backend token and opens a
// local session around it.
// PRE: Valid email and password provided
// POST: Session persisted with hashed token; expiry capped by the
// backend token's own expiry claim
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	var resp loginResponse
	err := deps.Backend.Post(ctx, api.PathLogin, map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}, &resp)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.IsUnauthorized() {
			slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "rejected")
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if resp.Access == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := domain.NewToken()
	if err != nil {
		return LoginResult{}, err
	}

	now := deps.Now()
	tokenExp, _ := api.TokenExpiry(resp.Access)
	expiresAt := domain.ExpiryFor(now, tokenExp)

	sess := domain.Session{
		TokenHash: domain.HashToken(token),
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Name:      resp.User.Name,
		APIToken:  resp.Access,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := deps.SessionStore.Save(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "login", "email", resp.User.Email)
	return LoginResult{
		Token:     token,
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Name:      resp.User.Name,
		ExpiresAt: expiresAt,
	}, nil
}

// LogoutInput carries input for the logout orchestrator.
type LogoutInput struct {
	Token string
}

// LogoutDeps holds dependencies for Logout.
type LogoutDeps struct {
	Backend      Backend
	SessionStore SessionStoreForLogin
}

// ExecuteLogout drops the local session and tells the backend to
// revoke the token. A backend failure does not keep the session alive.
// POST: local session removed
func ExecuteLogout(ctx context.Context, input LogoutInput, deps LogoutDeps) error {
	if err := deps.SessionStore.Delete(ctx, domain.HashToken(input.Token)); err != nil {
		return err
	}
	if err := deps.Backend.Post(ctx, api.PathLogout, nil, nil); err != nil {
		// The local session is already gone; revocation failure is
		// logged and surfaced as a notice, not a blocked logout.
		slog.Warn("auth_event", "event", "logout_revoke_failed", "error", err)
	}
	slog.Info("auth_event", "event", "logout")
	return nil
}
