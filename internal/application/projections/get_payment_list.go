package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// GetPaymentListQuery carries query parameters.
type GetPaymentListQuery struct {
	Params listutil.ListParams
}

// GetPaymentListResult carries the query result.
type GetPaymentListResult struct {
	Payments []billing.Payment
	Page     listutil.PageInfo

	// Payment method choices for the filter bar.
	Methods   []api.Choice
	ChoiceErr error
}

// GetPaymentListDeps holds dependencies for GetPaymentList.
type GetPaymentListDeps struct {
	Backend Getter
	Choices ChoiceSource
}

// QueryGetPaymentList retrieves one page of payments plus filter choices.
func QueryGetPaymentList(ctx context.Context, query GetPaymentListQuery, deps GetPaymentListDeps) (GetPaymentListResult, error) {
	payments, page, err := fetchList[billing.Payment](ctx, deps.Backend, api.PathPayments, query.Params)
	if err != nil {
		return GetPaymentListResult{}, err
	}

	result := GetPaymentListResult{Payments: payments, Page: page}
	if deps.Choices != nil {
		result.Methods, result.ChoiceErr = deps.Choices.Get(ctx, api.PathPaymentOptions)
	}
	return result, nil
}

// GetPaymentDetailQuery carries query parameters.
type GetPaymentDetailQuery struct {
	PaymentID string
}

// GetPaymentDetailResult carries the query result.
type GetPaymentDetailResult struct {
	Payment billing.Payment
}

// QueryGetPaymentDetail retrieves one payment, as shown on the receipt screen.
func QueryGetPaymentDetail(ctx context.Context, query GetPaymentDetailQuery, deps GetPaymentListDeps) (GetPaymentDetailResult, error) {
	var p billing.Payment
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathPayments, query.PaymentID), nil, &p)
	if err != nil {
		return GetPaymentDetailResult{}, err
	}
	return GetPaymentDetailResult{Payment: p}, nil
}
