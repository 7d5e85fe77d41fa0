package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// GetSaleListQuery carries query parameters.
type GetSaleListQuery struct {
	Params listutil.ListParams
}

// GetSaleListResult carries the query result.
type GetSaleListResult struct {
	Sales []billing.Sale
	Page  listutil.PageInfo
}

// GetSaleListDeps holds dependencies for GetSaleList.
type GetSaleListDeps struct {
	Backend Getter
}

// QueryGetSaleList retrieves one page of sales.
func QueryGetSaleList(ctx context.Context, query GetSaleListQuery, deps GetSaleListDeps) (GetSaleListResult, error) {
	sales, page, err := fetchList[billing.Sale](ctx, deps.Backend, api.PathSales, query.Params)
	if err != nil {
		return GetSaleListResult{}, err
	}
	return GetSaleListResult{Sales: sales, Page: page}, nil
}

// GetSaleDetailQuery carries query parameters.
type GetSaleDetailQuery struct {
	SaleID string
}

// GetSaleDetailResult carries the query result.
type GetSaleDetailResult struct {
	Sale billing.Sale

	// Line total and grand total formatted for display.
	Total string
}

// QueryGetSaleDetail retrieves one sale and sums its lines exactly.
// INVARIANT: the total is a decimal sum, never float arithmetic
func QueryGetSaleDetail(ctx context.Context, query GetSaleDetailQuery, deps GetSaleListDeps) (GetSaleDetailResult, error) {
	var s billing.Sale
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathSales, query.SaleID), nil, &s)
	if err != nil {
		return GetSaleDetailResult{}, err
	}

	amounts := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		amounts = append(amounts, line.Total)
	}
	total, err := billing.SumAmounts(amounts...)
	if err != nil {
		return GetSaleDetailResult{}, err
	}

	return GetSaleDetailResult{Sale: s, Total: billing.FormatAmount(total)}, nil
}
