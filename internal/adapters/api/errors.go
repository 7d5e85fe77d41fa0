package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoResponse marks transport-level failures where no response
// reached the dashboard at all (connection refused, timeout, DNS).
var ErrNoResponse = errors.New("no response from server")

// Error is a structured failure returned by the backend.
// Fields carries per-field validation messages keyed by the submitted
// field name; Message and Detail carry flat errors.
type Error struct {
	StatusCode int
	Message    string
	Detail     string
	Fields     map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
	}
	if e.Detail != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Detail)
	}
	if len(e.Fields) > 0 {
		var fields []string
		for f := range e.Fields {
			fields = append(fields, f)
		}
		return fmt.Sprintf("backend validation failed (%d): %s", e.StatusCode, strings.Join(fields, ", "))
	}
	return fmt.Sprintf("backend error (%d)", e.StatusCode)
}

// IsNotFound reports whether the backend returned 404.
// INVARIANT: Error fields are not mutated
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the bearer token.
// INVARIANT: Error fields are not mutated
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// HasFieldErrors reports whether the failure carries per-field messages.
// INVARIANT: Error fields are not mutated
func (e *Error) HasFieldErrors() bool {
	return len(e.Fields) > 0
}

// Notice returns the single user-facing message for a flat error.
// PRE: none
// POST: Returns Message, falling back to Detail, then a generic notice
func (e *Error) Notice() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return "the server rejected the request"
}

// IsNoResponse reports whether err is a transport failure with no
// backend response.
func IsNoResponse(err error) bool {
	return errors.Is(err, ErrNoResponse)
}

// AsError unwraps err into a backend *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFoundErr reports whether err is a backend 404.
func IsNotFoundErr(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.IsNotFound()
}
