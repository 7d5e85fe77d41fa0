package resetflow_test

import (
	"errors"
	"testing"
	"time"

	"clubdesk/internal/domain/resetflow"
)

func TestHappyPath(t *testing.T) {
	now := time.Now()
	f := resetflow.New("r1", now)

	if err := f.EnterEmail("ana@example.org", now); err != nil {
		t.Fatalf("EnterEmail: %v", err)
	}
	if f.State != resetflow.StateEmailEntered {
		t.Fatalf("state = %q, want email_entered", f.State)
	}
	if err := f.MarkOtpVerified(now); err != nil {
		t.Fatalf("MarkOtpVerified: %v", err)
	}
	if err := f.MarkPasswordSet(now); err != nil {
		t.Fatalf("MarkPasswordSet: %v", err)
	}
	if f.State != resetflow.StatePasswordSet {
		t.Fatalf("state = %q, want password_set", f.State)
	}
}

func TestOutOfOrderStepsRejected(t *testing.T) {
	now := time.Now()

	t.Run("otpBeforeEmail", func(t *testing.T) {
		f := resetflow.New("r1", now)
		if err := f.MarkOtpVerified(now); !errors.Is(err, resetflow.ErrWrongState) {
			t.Fatalf("err = %v, want ErrWrongState", err)
		}
		if f.State != resetflow.StateStarted {
			t.Fatalf("state changed to %q on rejected step", f.State)
		}
	})

	t.Run("passwordBeforeOtp", func(t *testing.T) {
		f := resetflow.New("r1", now)
		if err := f.EnterEmail("ana@example.org", now); err != nil {
			t.Fatal(err)
		}
		if err := f.MarkPasswordSet(now); !errors.Is(err, resetflow.ErrWrongState) {
			t.Fatalf("err = %v, want ErrWrongState", err)
		}
	})

	t.Run("repeatedStep", func(t *testing.T) {
		f := resetflow.New("r1", now)
		if err := f.EnterEmail("ana@example.org", now); err != nil {
			t.Fatal(err)
		}
		if err := f.EnterEmail("ana@example.org", now); !errors.Is(err, resetflow.ErrWrongState) {
			t.Fatalf("err = %v, want ErrWrongState", err)
		}
	})
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	f := resetflow.New("r1", now)
	later := now.Add(resetflow.TTL + time.Minute)

	if err := f.EnterEmail("ana@example.org", later); !errors.Is(err, resetflow.ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestEmailFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      resetflow.EmailForm
		wantField string
	}{
		{"valid", resetflow.EmailForm{Email: "ana@example.org"}, ""},
		{"empty", resetflow.EmailForm{}, "email"},
		{"noAt", resetflow.EmailForm{Email: "ana.example.org"}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" && !errs.Empty() {
				t.Fatalf("expected no errors, got %v", errs)
			}
			if tt.wantField != "" && !errs.Has(tt.wantField) {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestPasswordFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      resetflow.PasswordForm
		wantField string
	}{
		{"valid", resetflow.PasswordForm{Password: "hunter2hunter2", Confirm: "hunter2hunter2"}, ""},
		{"empty", resetflow.PasswordForm{}, "password"},
		{"short", resetflow.PasswordForm{Password: "abc", Confirm: "abc"}, "password"},
		{"mismatch", resetflow.PasswordForm{Password: "hunter2hunter2", Confirm: "other"}, "confirm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" && !errs.Empty() {
				t.Fatalf("expected no errors, got %v", errs)
			}
			if tt.wantField != "" && !errs.Has(tt.wantField) {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}
