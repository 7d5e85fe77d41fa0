package member_test

import (
	"testing"

	"clubdesk/internal/domain/member"
)

// TestFormValidation tests local validation of the member form.
func TestFormValidation(t *testing.T) {
	tests := []struct {
		name      string
		form      member.Form
		wantField string // field expected to carry an error; "" means valid
	}{
		{
			name: "valid form",
			form: member.Form{
				FirstName:      "Ayesha",
				LastName:       "Rahman",
				Email:          "ayesha@example.com",
				MembershipType: "Lifetime",
				BatchNumber:    "1998",
			},
			wantField: "",
		},
		{
			name: "valid without optional fields",
			form: member.Form{
				FirstName:      "Karim",
				MembershipType: "Annual",
			},
			wantField: "",
		},
		{
			name:      "missing first name",
			form:      member.Form{MembershipType: "Annual"},
			wantField: "first_name",
		},
		{
			name: "invalid email",
			form: member.Form{
				FirstName:      "Karim",
				MembershipType: "Annual",
				Email:          "not-an-email",
			},
			wantField: "email",
		},
		{
			name: "missing membership type",
			form: member.Form{
				FirstName: "Karim",
			},
			wantField: "membership_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				if !errs.Empty() {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if !errs.Has(tt.wantField) {
				t.Errorf("Validate() missing error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

// TestFullName tests display-name joining.
func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		member member.Member
		want   string
	}{
		{"both parts", member.Member{FirstName: "Ayesha", LastName: "Rahman"}, "Ayesha Rahman"},
		{"first only", member.Member{FirstName: "Ayesha"}, "Ayesha"},
		{"last only", member.Member{LastName: "Rahman"}, "Rahman"},
		{"empty", member.Member{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.member.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestIsActive tests the membership status helper.
func TestIsActive(t *testing.T) {
	m := member.Member{Status: member.StatusActive}
	if !m.IsActive() {
		t.Error("IsActive() = false for active member")
	}
	m.Status = member.StatusExpired
	if m.IsActive() {
		t.Error("IsActive() = true for expired member")
	}
}
