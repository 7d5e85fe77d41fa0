package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// GetIncomeListQuery carries query parameters.
type GetIncomeListQuery struct {
	Params listutil.ListParams
}

// GetIncomeListResult carries the query result.
type GetIncomeListResult struct {
	Incomes []billing.Income
	Page    listutil.PageInfo
}

// GetIncomeListDeps holds dependencies for GetIncomeList.
type GetIncomeListDeps struct {
	Backend Getter
}

// QueryGetIncomeList retrieves one page of income records.
func QueryGetIncomeList(ctx context.Context, query GetIncomeListQuery, deps GetIncomeListDeps) (GetIncomeListResult, error) {
	incomes, page, err := fetchList[billing.Income](ctx, deps.Backend, api.PathIncomes, query.Params)
	if err != nil {
		return GetIncomeListResult{}, err
	}
	return GetIncomeListResult{Incomes: incomes, Page: page}, nil
}

// GetIncomeDetailQuery carries query parameters.
type GetIncomeDetailQuery struct {
	IncomeID string
}

// GetIncomeDetailResult carries the query result.
type GetIncomeDetailResult struct {
	Income billing.Income
}

// QueryGetIncomeDetail retrieves one income record for the edit screen.
func QueryGetIncomeDetail(ctx context.Context, query GetIncomeDetailQuery, deps GetIncomeListDeps) (GetIncomeDetailResult, error) {
	var inc billing.Income
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathIncomes, query.IncomeID), nil, &inc)
	if err != nil {
		return GetIncomeDetailResult{}, err
	}
	return GetIncomeDetailResult{Income: inc}, nil
}
