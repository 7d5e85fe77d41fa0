package member

import (
	"errors"
	"strings"

	"clubdesk/internal/application/fielderr"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxBatchLength = 20
)

// Membership status constants (backend reference codes use the same values).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

// Domain errors
var (
	ErrNotFound = errors.New("member not found")
)

// Member is a club member as the backend serves it. Reference-code
// fields (membership type, status, gender) carry the backend's choice
// names, not local enumerations.
type Member struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	MembershipType string `json:"membership_type"`
	Status         string `json:"membership_status"`
	BatchNumber    string `json:"batch_number"`
	Gender         string `json:"gender"`
	Institute      string `json:"institute"`
	BloodGroup     string `json:"blood_group"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"date_of_birth"`
}

// FullName joins the name parts for display.
// INVARIANT: Member fields are not mutated
func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// IsActive returns true if the member's membership is active.
// INVARIANT: Member fields are not mutated
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// Detail is the member detail view: the member plus its read-only
// one-to-many sub-records as the backend nests them.
type Detail struct {
	Member
	Contacts    []Contact    `json:"contact_numbers"`
	Addresses   []Address    `json:"addresses"`
	Jobs        []Job        `json:"jobs"`
	Spouses     []Spouse     `json:"spouses"`
	Descendants []Descendant `json:"descendants"`
	Documents   []Document   `json:"documents"`
}

// Contact is a member contact number sub-record.
type Contact struct {
	ID     string `json:"id"`
	Type   string `json:"contact_type"`
	Number string `json:"number"`
}

// Address is a member address sub-record.
type Address struct {
	ID      string `json:"id"`
	Type    string `json:"address_type"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Job is a member employment sub-record.
type Job struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization_name"`
	Location     string `json:"location"`
}

// Spouse is a member spouse sub-record.
type Spouse struct {
	ID     string `json:"id"`
	Name   string `json:"spouse_name"`
	Status string `json:"current_status"`
}

// Descendant is a member descendant sub-record.
type Descendant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Relation    string `json:"relation_type"`
	DateOfBirth string `json:"date_of_birth"`
}

// Document is a member document sub-record (stored by the backend;
// the dashboard only links to it).
type Document struct {
	ID   string `json:"id"`
	Type string `json:"document_type"`
	Name string `json:"document_name"`
	URL  string `json:"document_url"`
}

// Form carries the editable member fields submitted from the
// create/edit screen. Field names match the backend's, so upstream
// validation errors land on the right inputs.
type Form struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	MembershipType string `json:"membership_type"`
	BatchNumber    string `json:"batch_number"`
	Gender         string `json:"gender"`
	Institute      string `json:"institute"`
	DateOfBirth    string `json:"date_of_birth"`
}

// Validate runs the local form rules. A non-empty result blocks the
// upstream call.
// PRE: Form holds submitted values
// POST: returns per-field messages; empty when the form may be submitted
func (f *Form) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.FirstName) == "" {
		errs.Add("first_name", "required")
	}
	if len(f.FirstName) > MaxNameLength {
		errs.Add("first_name", "cannot exceed 100 characters")
	}
	if len(f.LastName) > MaxNameLength {
		errs.Add("last_name", "cannot exceed 100 characters")
	}
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		errs.Add("email", "must be a valid email address")
	}
	if strings.TrimSpace(f.MembershipType) == "" {
		errs.Add("membership_type", "required")
	}
	if len(f.BatchNumber) > MaxBatchLength {
		errs.Add("batch_number", "cannot exceed 20 characters")
	}
	return errs
}
