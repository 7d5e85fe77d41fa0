package resetflow

import (
	"errors"
	"strings"
	"time"

	"clubdesk/internal/application/fielderr"
)

// State is a step in the password reset wizard. Transitions only move
// forward, one step at a time; a request arriving for any other step
// is rejected and the flow is left unchanged.
type State string

const (
	StateStarted      State = "started"
	StateEmailEntered State = "email_entered"
	StateOtpVerified  State = "otp_verified"
	StatePasswordSet  State = "password_set"
)

// How long a flow stays usable before it must be restarted.
const TTL = 15 * time.Minute

var (
	ErrWrongState = errors.New("reset step out of order")
	ErrExpired    = errors.New("reset flow expired")
)

// Flow is one in-progress password reset.
type Flow struct {
	ID        string
	State     State
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New starts a fresh flow.
func New(id string, now time.Time) *Flow {
	return &Flow{ID: id, State: StateStarted, CreatedAt: now, UpdatedAt: now}
}

// Expired reports whether the flow has outlived its TTL.
func (f *Flow) Expired(now time.Time) bool {
	return now.Sub(f.UpdatedAt) > TTL
}

// EnterEmail records the address the reset code was sent to.
// PRE: flow is in Started state and not expired
// POST: flow is in EmailEntered state
func (f *Flow) EnterEmail(email string, now time.Time) error {
	if err := f.guard(StateStarted, now); err != nil {
		return err
	}
	f.Email = email
	f.State = StateEmailEntered
	f.UpdatedAt = now
	return nil
}

// MarkOtpVerified advances the flow once the backend has accepted the code.
// PRE: flow is in EmailEntered state and not expired
// POST: flow is in OtpVerified state
func (f *Flow) MarkOtpVerified(now time.Time) error {
	if err := f.guard(StateEmailEntered, now); err != nil {
		return err
	}
	f.State = StateOtpVerified
	f.UpdatedAt = now
	return nil
}

// MarkPasswordSet completes the flow. A completed flow accepts no
// further transitions and should be deleted by the caller.
// PRE: flow is in OtpVerified state and not expired
// POST: flow is in PasswordSet state
func (f *Flow) MarkPasswordSet(now time.Time) error {
	if err := f.guard(StateOtpVerified, now); err != nil {
		return err
	}
	f.State = StatePasswordSet
	f.UpdatedAt = now
	return nil
}

func (f *Flow) guard(want State, now time.Time) error {
	if f.Expired(now) {
		return ErrExpired
	}
	if f.State != want {
		return ErrWrongState
	}
	return nil
}

// EmailForm carries the first wizard step.
type EmailForm struct {
	Email string
}

// Validate runs the local email step rules.
func (f *EmailForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", "required")
	} else if !strings.Contains(f.Email, "@") {
		errs.Add("email", "must be a valid email address")
	}
	return errs
}

// OtpForm carries the code verification step.
type OtpForm struct {
	Code string
}

// Validate runs the local code step rules.
func (f *OtpForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	code := strings.TrimSpace(f.Code)
	if code == "" {
		errs.Add("code", "required")
	} else if len(code) < 4 {
		errs.Add("code", "too short")
	}
	return errs
}

// PasswordForm carries the final step.
type PasswordForm struct {
	Password string
	Confirm  string
}

// Validate runs the local password step rules.
func (f *PasswordForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if f.Password == "" {
		errs.Add("password", "required")
	} else if len(f.Password) < 8 {
		errs.Add("password", "must be at least 8 characters")
	}
	if f.Confirm != f.Password {
		errs.Add("confirm", "passwords do not match")
	}
	return errs
}
