package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/orchestrators"
	resetdomain "clubdesk/internal/domain/resetflow"
)

func resetDeps(backend *fakeBackend, flows *fakeFlowStore) orchestrators.ResetDeps {
	return orchestrators.ResetDeps{
		Backend:    backend,
		FlowStore:  flows,
		GenerateID: func() string { return "flow-1" },
		Now:        fixedNow,
	}
}

func TestResetWizard_HappyPath(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathPasswordForgot: {},
		"POST " + api.PathPasswordVerify: {},
		"POST " + api.PathPasswordReset:  {},
	}}
	flows := newFakeFlowStore()
	deps := resetDeps(backend, flows)
	ctx := context.Background()

	start, errs, err := orchestrators.ExecuteStartReset(ctx,
		orchestrators.StartResetInput{Email: "ana@example.org"}, deps)
	if err != nil || !errs.Empty() {
		t.Fatalf("start: errs=%v err=%v", errs, err)
	}
	if start.FlowID != "flow-1" {
		t.Fatalf("FlowID = %q", start.FlowID)
	}
	if flows.flows["flow-1"].State != resetdomain.StateEmailEntered {
		t.Fatalf("state = %q", flows.flows["flow-1"].State)
	}

	errs, err = orchestrators.ExecuteVerifyResetOtp(ctx,
		orchestrators.VerifyResetOtpInput{FlowID: "flow-1", Code: "123456"}, deps)
	if err != nil || !errs.Empty() {
		t.Fatalf("verify: errs=%v err=%v", errs, err)
	}
	if flows.flows["flow-1"].State != resetdomain.StateOtpVerified {
		t.Fatalf("state = %q", flows.flows["flow-1"].State)
	}

	errs, err = orchestrators.ExecuteCompleteReset(ctx,
		orchestrators.CompleteResetInput{FlowID: "flow-1", Password: "hunter2hunter2", Confirm: "hunter2hunter2"}, deps)
	if err != nil || !errs.Empty() {
		t.Fatalf("complete: errs=%v err=%v", errs, err)
	}

	// A completed flow is gone and cannot be replayed.
	if _, ok := flows.flows["flow-1"]; ok {
		t.Fatal("flow survived completion")
	}
}

func TestResetWizard_StepOutOfOrder(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathPasswordForgot: {},
	}}
	flows := newFakeFlowStore()
	deps := resetDeps(backend, flows)
	ctx := context.Background()

	if _, errs, err := orchestrators.ExecuteStartReset(ctx,
		orchestrators.StartResetInput{Email: "ana@example.org"}, deps); err != nil || !errs.Empty() {
		t.Fatalf("start: errs=%v err=%v", errs, err)
	}

	// Jumping straight to the final step must be rejected without a
	// backend call.
	before := len(backend.calls)
	_, err := orchestrators.ExecuteCompleteReset(ctx,
		orchestrators.CompleteResetInput{FlowID: "flow-1", Password: "hunter2hunter2", Confirm: "hunter2hunter2"}, deps)
	if !errors.Is(err, resetdomain.ErrWrongState) {
		t.Fatalf("err = %v, want ErrWrongState", err)
	}
	if len(backend.calls) != before {
		t.Error("backend called for an out-of-order step")
	}
}

func TestResetWizard_WrongOtpMapsFieldError(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"POST " + api.PathPasswordForgot: {},
		"POST " + api.PathPasswordVerify: {err: &api.Error{StatusCode: 400,
			Fields: map[string][]string{"otp": {"invalid or expired code"}}}},
	}}
	flows := newFakeFlowStore()
	deps := resetDeps(backend, flows)
	ctx := context.Background()

	if _, errs, err := orchestrators.ExecuteStartReset(ctx,
		orchestrators.StartResetInput{Email: "ana@example.org"}, deps); err != nil || !errs.Empty() {
		t.Fatalf("start: errs=%v err=%v", errs, err)
	}

	errs, err := orchestrators.ExecuteVerifyResetOtp(ctx,
		orchestrators.VerifyResetOtpInput{FlowID: "flow-1", Code: "999999"}, deps)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !errs.Has("otp") {
		t.Fatalf("errs = %v, want otp field error", errs)
	}

	// The rejected code must not advance the flow.
	if flows.flows["flow-1"].State != resetdomain.StateEmailEntered {
		t.Errorf("state = %q", flows.flows["flow-1"].State)
	}
}

func TestStartReset_LocalValidationBlocksNetwork(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{}}
	deps := resetDeps(backend, newFakeFlowStore())

	_, errs, err := orchestrators.ExecuteStartReset(context.Background(),
		orchestrators.StartResetInput{Email: "not-an-email"}, deps)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !errs.Has("email") {
		t.Fatalf("errs = %v", errs)
	}
	if len(backend.calls) != 0 {
		t.Error("backend called despite local validation failure")
	}
}
