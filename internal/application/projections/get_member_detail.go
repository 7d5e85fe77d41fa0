package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/domain/member"
)

// GetMemberDetailQuery carries query parameters.
type GetMemberDetailQuery struct {
	MemberID string
}

// GetMemberDetailResult carries the query result.
type GetMemberDetailResult struct {
	Member member.Detail
}

// GetMemberDetailDeps holds dependencies for GetMemberDetail.
type GetMemberDetailDeps struct {
	Backend Getter
}

// QueryGetMemberDetail retrieves one member with all sub-records.
// POST: returns api.Error with IsNotFound when the member does not exist
func QueryGetMemberDetail(ctx context.Context, query GetMemberDetailQuery, deps GetMemberDetailDeps) (GetMemberDetailResult, error) {
	var detail member.Detail
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathMembers, query.MemberID), nil, &detail)
	if err != nil {
		return GetMemberDetailResult{}, err
	}
	return GetMemberDetailResult{Member: detail}, nil
}
