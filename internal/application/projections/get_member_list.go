package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/member"
)

// GetMemberListQuery carries query parameters.
type GetMemberListQuery struct {
	Params listutil.ListParams
}

// GetMemberListResult carries the query result.
type GetMemberListResult struct {
	Members []member.Member
	Page    listutil.PageInfo

	// Dropdown choices for the filter bar.
	MembershipTypes []api.Choice
	Statuses        []api.Choice

	// Set when a choice fetch failed and the filter bar is incomplete.
	// The list itself is still valid; callers show this as a notice.
	ChoiceErr error
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	Backend Getter
	Choices ChoiceSource
}

// QueryGetMemberList retrieves one page of members plus filter choices.
// PRE: Params parsed from the request query string
// POST: rows and page math come from the backend response unchanged
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, deps GetMemberListDeps) (GetMemberListResult, error) {
	members, page, err := fetchList[member.Member](ctx, deps.Backend, api.PathMembers, query.Params)
	if err != nil {
		return GetMemberListResult{}, err
	}

	result := GetMemberListResult{Members: members, Page: page}

	// A choice fetch failure leaves the filter bar incomplete but does
	// not discard the list; the error is carried for display.
	if deps.Choices != nil {
		var errTypes, errStatuses error
		result.MembershipTypes, errTypes = deps.Choices.Get(ctx, api.ChoicesMembershipTypes)
		result.Statuses, errStatuses = deps.Choices.Get(ctx, api.ChoicesMemberStatuses)
		if errTypes != nil {
			result.ChoiceErr = errTypes
		} else if errStatuses != nil {
			result.ChoiceErr = errStatuses
		}
	}

	return result, nil
}
