package api

import (
	"encoding/json"
)

// Envelope is the response wrapper used by every backend endpoint:
// { code, status, message, data, pagination? }.
type Envelope struct {
	Code       int             `json:"code"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Envelope status values reported by the backend.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// IsError reports whether the envelope carries an error status.
// INVARIANT: Envelope fields are not mutated
func (e *Envelope) IsError() bool {
	return e.Status == StatusError
}

// Pagination is the backend's page metadata. Next and Previous are
// URL-or-null markers; only their presence is meaningful to the dashboard.
type Pagination struct {
	Count       int     `json:"count"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
	PageSize    int     `json:"page_size"`
}

// HasNext reports whether the backend says a next page exists.
// INVARIANT: Pagination fields are not mutated
func (p *Pagination) HasNext() bool {
	return p != nil && p.Next != nil && *p.Next != ""
}

// HasPrevious reports whether the backend says a previous page exists.
// INVARIANT: Pagination fields are not mutated
func (p *Pagination) HasPrevious() bool {
	return p != nil && p.Previous != nil && *p.Previous != ""
}
