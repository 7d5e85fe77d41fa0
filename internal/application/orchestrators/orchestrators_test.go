package orchestrators_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/adapters/email"
	resetdomain "clubdesk/internal/domain/resetflow"
	sessiondomain "clubdesk/internal/domain/session"
)

// fakeBackend records writes and serves canned JSON per method+path.
type fakeBackend struct {
	responses map[string]fakeResponse
	calls     []fakeCall
}

type fakeResponse struct {
	body string
	err  error
}

type fakeCall struct {
	method string
	path   string
	body   any
}

func (f *fakeBackend) serve(method, path string, body, out any) error {
	f.calls = append(f.calls, fakeCall{method: method, path: path, body: body})
	resp, ok := f.responses[method+" "+path]
	if !ok {
		return &api.Error{StatusCode: 404, Message: "not found"}
	}
	if resp.err != nil {
		return resp.err
	}
	if out != nil && resp.body != "" {
		return json.Unmarshal([]byte(resp.body), out)
	}
	return nil
}

func (f *fakeBackend) Get(ctx context.Context, path string, query url.Values, out any) (*api.Pagination, error) {
	return nil, f.serve("GET", path, nil, out)
}

func (f *fakeBackend) Post(ctx context.Context, path string, body, out any) error {
	return f.serve("POST", path, body, out)
}

func (f *fakeBackend) Put(ctx context.Context, path string, body, out any) error {
	return f.serve("PUT", path, body, out)
}

func (f *fakeBackend) Delete(ctx context.Context, path string) error {
	return f.serve("DELETE", path, nil, nil)
}

// fakeSessionStore keeps sessions in a map keyed by token hash.
type fakeSessionStore struct {
	sessions map[string]sessiondomain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]sessiondomain.Session)}
}

func (f *fakeSessionStore) Save(ctx context.Context, v sessiondomain.Session) error {
	f.sessions[v.TokenHash] = v
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

// fakeFlowStore keeps reset flows in a map.
type fakeFlowStore struct {
	flows map[string]*resetdomain.Flow
}

func newFakeFlowStore() *fakeFlowStore {
	return &fakeFlowStore{flows: make(map[string]*resetdomain.Flow)}
}

func (f *fakeFlowStore) GetByID(ctx context.Context, id string) (*resetdomain.Flow, error) {
	flow, ok := f.flows[id]
	if !ok {
		return nil, errors.New("reset flow not found")
	}
	cp := *flow
	return &cp, nil
}

func (f *fakeFlowStore) Save(ctx context.Context, v *resetdomain.Flow) error {
	cp := *v
	f.flows[v.ID] = &cp
	return nil
}

func (f *fakeFlowStore) Delete(ctx context.Context, id string) error {
	delete(f.flows, id)
	return nil
}

// fakeSender records outgoing emails.
type fakeSender struct {
	sent []email.SendRequest
	err  error
}

func (f *fakeSender) Send(ctx context.Context, req email.SendRequest) (email.SendResult, error) {
	if f.err != nil {
		return email.SendResult{}, f.err
	}
	f.sent = append(f.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}
