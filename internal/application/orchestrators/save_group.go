package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/group"
)

// SaveGroupInput carries input for the save group orchestrator.
type SaveGroupInput struct {
	GroupID string // empty for create, set for update
	Form    group.Form
}

// SaveGroupResult carries the saved group.
type SaveGroupResult struct {
	Group group.Group
}

// SaveGroupDeps holds dependencies for the group orchestrators.
type SaveGroupDeps struct {
	Backend Backend
}

// ExecuteSaveGroup creates or renames a permission group. Users and
// permissions are never written through this path; membership changes
// go through the dedicated add/remove orchestrators below.
func ExecuteSaveGroup(ctx context.Context, input SaveGroupInput, deps SaveGroupDeps) (SaveGroupResult, fielderr.Errors, error) {
	var saved group.Group
	errs, err := submit(&input.Form, func() error {
		if input.GroupID == "" {
			return deps.Backend.Post(ctx, api.PathGroups, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathGroups, input.GroupID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveGroupResult{}, errs, err
	}

	slog.Info("group_saved", "group_id", saved.ID, "created", input.GroupID == "")
	return SaveGroupResult{Group: saved}, nil, nil
}

// GroupMemberInput carries input for the add/remove user orchestrators.
type GroupMemberInput struct {
	GroupID string
	UserID  string
}

// ExecuteAddGroupUser adds a user to a group.
// POST: idempotent from the caller's view; adding a present user is
// reported by the backend as a field rejection
func ExecuteAddGroupUser(ctx context.Context, input GroupMemberInput, deps SaveGroupDeps) error {
	path := fmt.Sprintf("%s/users", api.Detail(api.PathGroups, input.GroupID))
	if err := deps.Backend.Post(ctx, path, map[string]string{"user": input.UserID}, nil); err != nil {
		return err
	}
	slog.Info("group_user_added", "group_id", input.GroupID, "user_id", input.UserID)
	return nil
}

// ExecuteRemoveGroupUser removes a user from a group.
func ExecuteRemoveGroupUser(ctx context.Context, input GroupMemberInput, deps SaveGroupDeps) error {
	path := fmt.Sprintf("%s/users/%s", api.Detail(api.PathGroups, input.GroupID), input.UserID)
	if err := deps.Backend.Delete(ctx, path); err != nil {
		return err
	}
	slog.Info("group_user_removed", "group_id", input.GroupID, "user_id", input.UserID)
	return nil
}

// GroupPermissionInput carries input for the permission orchestrators.
type GroupPermissionInput struct {
	GroupID      string
	PermissionID string
}

// ExecuteAddGroupPermission grants a permission to a group.
func ExecuteAddGroupPermission(ctx context.Context, input GroupPermissionInput, deps SaveGroupDeps) error {
	path := fmt.Sprintf("%s/permissions", api.Detail(api.PathGroups, input.GroupID))
	if err := deps.Backend.Post(ctx, path, map[string]string{"permission": input.PermissionID}, nil); err != nil {
		return err
	}
	slog.Info("group_permission_added", "group_id", input.GroupID, "permission_id", input.PermissionID)
	return nil
}

// ExecuteRemoveGroupPermission revokes a permission from a group.
func ExecuteRemoveGroupPermission(ctx context.Context, input GroupPermissionInput, deps SaveGroupDeps) error {
	path := fmt.Sprintf("%s/permissions/%s", api.Detail(api.PathGroups, input.GroupID), input.PermissionID)
	if err := deps.Backend.Delete(ctx, path); err != nil {
		return err
	}
	slog.Info("group_permission_removed", "group_id", input.GroupID, "permission_id", input.PermissionID)
	return nil
}

// DeleteGroupInput carries input for the delete group orchestrator.
type DeleteGroupInput struct {
	GroupID string
}

// ExecuteDeleteGroup removes a group.
// PRE: the caller has shown a confirmation screen
func ExecuteDeleteGroup(ctx context.Context, input DeleteGroupInput, deps SaveGroupDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathGroups, input.GroupID)); err != nil {
		return err
	}
	slog.Info("group_deleted", "group_id", input.GroupID)
	return nil
}
