package orchestrators_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/orchestrators"
	sessiondomain "clubdesk/internal/domain/session"
)

func TestExecuteLogin(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathLogin: {body: `{"access":"backend-token","user":{"id":"u1","email":"ana@example.org","name":"Ana Silva"}}`},
	}}
	store := newFakeSessionStore()

	result, err := orchestrators.ExecuteLogin(context.Background(),
		orchestrators.LoginInput{Email: "ana@example.org", Password: "hunter2"},
		orchestrators.LoginDeps{Backend: backend, SessionStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}

	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.Email != "ana@example.org" || result.Name != "Ana Silva" {
		t.Errorf("result = %+v", result)
	}

	// The raw token must not be the storage key.
	if _, ok := store.sessions[result.Token]; ok {
		t.Error("raw token used as storage key")
	}
	sess, ok := store.sessions[sessiondomain.HashToken(result.Token)]
	if !ok {
		t.Fatal("session not stored under hashed token")
	}
	if sess.APIToken != "backend-token" {
		t.Errorf("APIToken = %q", sess.APIToken)
	}

	// An opaque token carries no expiry claim, so the 24h cap applies.
	if want := fixedNow().Add(24 * time.Hour); !sess.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", sess.ExpiresAt, want)
	}
}

func TestExecuteLogin_Rejected(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathLogin: {err: &api.Error{StatusCode: 401, Message: "invalid credentials"}},
	}}

	_, err := orchestrators.ExecuteLogin(context.Background(),
		orchestrators.LoginInput{Email: "ana@example.org", Password: "wrong"},
		orchestrators.LoginDeps{Backend: backend, SessionStore: newFakeSessionStore(), Now: fixedNow})
	if !errors.Is(err, orchestrators.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestExecuteLogin_EmptyFieldsSkipNetwork(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{}}

	_, err := orchestrators.ExecuteLogin(context.Background(),
		orchestrators.LoginInput{Email: "", Password: ""},
		orchestrators.LoginDeps{Backend: backend, SessionStore: newFakeSessionStore(), Now: fixedNow})
	if !errors.Is(err, orchestrators.ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
	if len(backend.calls) != 0 {
		t.Errorf("backend called %d times for an empty form", len(backend.calls))
	}
}

func TestExecuteLogin_NoResponse(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathLogin: {err: api.ErrNoResponse},
	}}

	_, err := orchestrators.ExecuteLogin(context.Background(),
		orchestrators.LoginInput{Email: "ana@example.org", Password: "hunter2"},
		orchestrators.LoginDeps{Backend: backend, SessionStore: newFakeSessionStore(), Now: fixedNow})
	if !errors.Is(err, api.ErrNoResponse) {
		t.Fatalf("transport failure must pass through, got %v", err)
	}
}

func TestExecuteLogout(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathLogout: {},
	}}
	store := newFakeSessionStore()
	hash := sessiondomain.HashToken("tok")
	store.sessions[hash] = sessiondomain.Session{TokenHash: hash}

	err := orchestrators.ExecuteLogout(context.Background(),
		orchestrators.LogoutInput{Token: "tok"},
		orchestrators.LogoutDeps{Backend: backend, SessionStore: store})
	if err != nil {
		t.Fatalf("ExecuteLogout: %v", err)
	}
	if _, ok := store.sessions[hash]; ok {
		t.Error("session still present after logout")
	}
}

func TestExecuteLogout_RevokeFailureStillLogsOut(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathLogout: {err: api.ErrNoResponse},
	}}
	store := newFakeSessionStore()
	hash := sessiondomain.HashToken("tok")
	store.sessions[hash] = sessiondomain.Session{TokenHash: hash}

	if err := orchestrators.ExecuteLogout(context.Background(),
		orchestrators.LogoutInput{Token: "tok"},
		orchestrators.LogoutDeps{Backend: backend, SessionStore: store}); err != nil {
		t.Fatalf("ExecuteLogout: %v", err)
	}
	if _, ok := store.sessions[hash]; ok {
		t.Error("session survived a failed upstream revocation")
	}
}
