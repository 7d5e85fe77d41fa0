package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/member"
)

// SaveMemberInput carries input for the save member orchestrator.
type SaveMemberInput struct {
	MemberID string // empty for create, set for update
	Form     member.Form
}

// SaveMemberResult carries the saved member.
type SaveMemberResult struct {
	Member member.Member
}

// SaveMemberDeps holds dependencies for SaveMember.
type SaveMemberDeps struct {
	Backend Backend
}

// ExecuteSaveMember creates or updates a member.
// PRE: Form holds submitted values
// POST: on local validation failure no backend call is made; backend
// field rejections come back as form errors
func ExecuteSaveMember(ctx context.Context, input SaveMemberInput, deps SaveMemberDeps) (SaveMemberResult, fielderr.Errors, error) {
	var saved member.Member
	errs, err := submit(&input.Form, func() error {
		if input.MemberID == "" {
			return deps.Backend.Post(ctx, api.PathMembers, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathMembers, input.MemberID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveMemberResult{}, errs, err
	}

	slog.Info("member_saved", "member_id", saved.ID, "created", input.MemberID == "")
	return SaveMemberResult{Member: saved}, nil, nil
}

// DeleteMemberInput carries input for the delete member orchestrator.
type DeleteMemberInput struct {
	MemberID string
}

// ExecuteDeleteMember removes a member.
// PRE: the caller has shown a confirmation screen
// POST: backend 404 surfaces as not-found, not success
func ExecuteDeleteMember(ctx context.Context, input DeleteMemberInput, deps SaveMemberDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathMembers, input.MemberID)); err != nil {
		return err
	}
	slog.Info("member_deleted", "member_id", input.MemberID)
	return nil
}
