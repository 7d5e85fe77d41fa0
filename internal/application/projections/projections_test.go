package projections_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"clubdesk/internal/adapters/api"
)

// fakeBackend serves canned JSON per path and records every request.
type fakeBackend struct {
	responses map[string]fakeResponse
	calls     []fakeCall
}

type fakeResponse struct {
	body       string
	pagination *api.Pagination
	err        error
}

type fakeCall struct {
	path  string
	query url.Values
}

func (f *fakeBackend) Get(ctx context.Context, path string, query url.Values, out any) (*api.Pagination, error) {
	f.calls = append(f.calls, fakeCall{path: path, query: query})
	resp, ok := f.responses[path]
	if !ok {
		return nil, &api.Error{StatusCode: 404, Message: "not found"}
	}
	if resp.err != nil {
		return nil, resp.err
	}
	if err := json.Unmarshal([]byte(resp.body), out); err != nil {
		return nil, err
	}
	return resp.pagination, nil
}

func (f *fakeBackend) lastQuery(t *testing.T, path string) url.Values {
	t.Helper()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].path == path {
			return f.calls[i].query
		}
	}
	t.Fatalf("no call recorded for %s", path)
	return nil
}

// fakeChoices serves fixed choice lists.
type fakeChoices struct {
	choices map[string][]api.Choice
	err     error
}

func (f *fakeChoices) Get(ctx context.Context, path string) ([]api.Choice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.choices[path], nil
}

var errUpstream = errors.New("upstream unavailable")
