package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	domain "clubdesk/internal/domain/resetflow"
)

// FlowStoreForReset defines the store interface needed by the reset wizard.
type FlowStoreForReset interface {
	GetByID(ctx context.Context, id string) (*domain.Flow, error)
	Save(ctx context.Context, value *domain.Flow) error
	Delete(ctx context.Context, id string) error
}

// ResetDeps holds dependencies shared by the reset wizard steps.
type ResetDeps struct {
	Backend    Backend
	FlowStore  FlowStoreForReset
	GenerateID func() string
	Now        func() time.Time
}

// StartResetInput carries the first wizard step.
type StartResetInput struct {
	Email string
}

// StartResetResult carries the new flow id for the wizard cookie.
type StartResetResult struct {
	FlowID string
}

// ExecuteStartReset opens a flow and asks the backend to email a code.
// PRE: none; this is the wizard entry point
// POST: flow persisted in EmailEntered state on success
func ExecuteStartReset(ctx context.Context, input StartResetInput, deps ResetDeps) (StartResetResult, fielderr.Errors, error) {
	form := domain.EmailForm{Email: input.Email}
	if errs := form.Validate(); !errs.Empty() {
		return StartResetResult{}, errs, nil
	}

	now := deps.Now()
	flow := domain.New(deps.GenerateID(), now)

	errs, err := submitResetStep(ctx, deps, api.PathPasswordForgot,
		map[string]string{"email": input.Email})
	if errs != nil || err != nil {
		return StartResetResult{}, errs, err
	}

	if err := flow.EnterEmail(input.Email, now); err != nil {
		return StartResetResult{}, nil, err
	}
	if err := deps.FlowStore.Save(ctx, flow); err != nil {
		return StartResetResult{}, nil, err
	}

	slog.Info("auth_event", "event", "reset_started", "email", input.Email)
	return StartResetResult{FlowID: flow.ID}, nil, nil
}

// VerifyResetOtpInput carries the code verification step.
type VerifyResetOtpInput struct {
	FlowID string
	Code   string
}

// ExecuteVerifyResetOtp checks the emailed code with the backend.
// PRE: flow exists and is in EmailEntered state
// POST: flow advanced to OtpVerified on success; out-of-order or
// expired flows surface domain errors without touching the backend
func ExecuteVerifyResetOtp(ctx context.Context, input VerifyResetOtpInput, deps ResetDeps) (fielderr.Errors, error) {
	form := domain.OtpForm{Code: input.Code}
	if errs := form.Validate(); !errs.Empty() {
		return errs, nil
	}

	flow, err := deps.FlowStore.GetByID(ctx, input.FlowID)
	if err != nil {
		return nil, err
	}

	now := deps.Now()
	if flow.Expired(now) {
		return nil, domain.ErrExpired
	}
	if flow.State != domain.StateEmailEntered {
		return nil, domain.ErrWrongState
	}

	errs, err := submitResetStep(ctx, deps, api.PathPasswordVerify,
		map[string]string{"email": flow.Email, "otp": input.Code})
	if errs != nil || err != nil {
		return errs, err
	}

	if err := flow.MarkOtpVerified(now); err != nil {
		return nil, err
	}
	if err := deps.FlowStore.Save(ctx, flow); err != nil {
		return nil, err
	}
	return nil, nil
}

// CompleteResetInput carries the final step.
type CompleteResetInput struct {
	FlowID   string
	Password string
	Confirm  string
}

// ExecuteCompleteReset sets the new password and closes the flow.
// PRE: flow exists and is in OtpVerified state
// POST: flow deleted on success so the wizard cannot be replayed
func ExecuteCompleteReset(ctx context.Context, input CompleteResetInput, deps ResetDeps) (fielderr.Errors, error) {
	form := domain.PasswordForm{Password: input.Password, Confirm: input.Confirm}
	if errs := form.Validate(); !errs.Empty() {
		return errs, nil
	}

	flow, err := deps.FlowStore.GetByID(ctx, input.FlowID)
	if err != nil {
		return nil, err
	}

	now := deps.Now()
	if flow.Expired(now) {
		return nil, domain.ErrExpired
	}
	if flow.State != domain.StateOtpVerified {
		return nil, domain.ErrWrongState
	}

	errs, err := submitResetStep(ctx, deps, api.PathPasswordReset,
		map[string]string{"email": flow.Email, "password": input.Password})
	if errs != nil || err != nil {
		return errs, err
	}

	if err := flow.MarkPasswordSet(now); err != nil {
		return nil, err
	}
	if err := deps.FlowStore.Delete(ctx, flow.ID); err != nil {
		return nil, err
	}

	slog.Info("auth_event", "event", "reset_completed", "email", flow.Email)
	return nil, nil
}

// ExecuteAbandonReset drops a flow when the user leaves the wizard.
func ExecuteAbandonReset(ctx context.Context, flowID string, deps ResetDeps) error {
	return deps.FlowStore.Delete(ctx, flowID)
}

func submitResetStep(ctx context.Context, deps ResetDeps, path string, body map[string]string) (fielderr.Errors, error) {
	err := deps.Backend.Post(ctx, path, body, nil)
	if err == nil {
		return nil, nil
	}
	if apiErr, ok := api.AsError(err); ok && apiErr.HasFieldErrors() {
		errs := fielderr.New()
		errs.Merge(apiErr.Fields)
		return errs, nil
	}
	return nil, err
}
