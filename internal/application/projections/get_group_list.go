package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/group"
)

// GetGroupListQuery carries query parameters.
type GetGroupListQuery struct {
	Params listutil.ListParams
}

// GetGroupListResult carries the query result.
type GetGroupListResult struct {
	Groups []group.Group
	Page   listutil.PageInfo
}

// GetGroupListDeps holds dependencies for the group queries.
type GetGroupListDeps struct {
	Backend Getter
}

// QueryGetGroupList retrieves one page of permission groups.
func QueryGetGroupList(ctx context.Context, query GetGroupListQuery, deps GetGroupListDeps) (GetGroupListResult, error) {
	groups, page, err := fetchList[group.Group](ctx, deps.Backend, api.PathGroups, query.Params)
	if err != nil {
		return GetGroupListResult{}, err
	}
	return GetGroupListResult{Groups: groups, Page: page}, nil
}

// GetGroupDetailQuery carries query parameters.
type GetGroupDetailQuery struct {
	GroupID string
}

// GetGroupDetailResult carries the query result.
type GetGroupDetailResult struct {
	Group group.Group

	// The full permission catalogue, so the detail screen can offer
	// the ones the group does not carry yet.
	AllPermissions []group.Permission
}

// QueryGetGroupDetail retrieves one group plus the permission catalogue.
func QueryGetGroupDetail(ctx context.Context, query GetGroupDetailQuery, deps GetGroupListDeps) (GetGroupDetailResult, error) {
	var g group.Group
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathGroups, query.GroupID), nil, &g)
	if err != nil {
		return GetGroupDetailResult{}, err
	}

	var perms []group.Permission
	if _, err := deps.Backend.Get(ctx, api.PathPermissions, nil, &perms); err != nil {
		return GetGroupDetailResult{}, err
	}

	return GetGroupDetailResult{Group: g, AllPermissions: perms}, nil
}
