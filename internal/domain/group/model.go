package group

import (
	"errors"
	"strings"

	"clubdesk/internal/application/fielderr"
)

// Max length constants.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrNotFound      = errors.New("group not found")
	ErrAlreadyMember = errors.New("user is already in the group")
	ErrNotMember     = errors.New("user is not in the group")
)

// Group is a backend permission group. Users and permissions are
// managed through dedicated add/remove operations, never by editing
// the group object itself.
type Group struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Users       []User       `json:"users"`
	Permissions []Permission `json:"permissions"`
}

// User is a group member as the backend nests it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"username"`
	Email string `json:"email"`
}

// Permission is a backend permission entry.
type Permission struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"codename"`
}

// HasUser reports whether the user is already in the group.
// INVARIANT: Group fields are not mutated
func (g *Group) HasUser(userID string) bool {
	for _, u := range g.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// HasPermission reports whether the group already carries the permission.
// INVARIANT: Group fields are not mutated
func (g *Group) HasPermission(permissionID string) bool {
	for _, p := range g.Permissions {
		if p.ID == permissionID {
			return true
		}
	}
	return false
}

// Form carries a submitted group name.
type Form struct {
	Name string `json:"name"`
}

// Validate runs the local group form rules.
// PRE: Form holds submitted values
// POST: returns per-field messages; empty when the form may be submitted
func (f *Form) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "required")
	}
	if len(f.Name) > MaxNameLength {
		errs.Add("name", "cannot exceed 100 characters")
	}
	return errs
}
