package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// GetInvoiceListQuery carries query parameters.
type GetInvoiceListQuery struct {
	Params listutil.ListParams
}

// GetInvoiceListResult carries the query result.
type GetInvoiceListResult struct {
	Invoices []billing.Invoice
	Page     listutil.PageInfo
}

// GetInvoiceListDeps holds dependencies for the billing list queries.
type GetInvoiceListDeps struct {
	Backend Getter
}

// QueryGetInvoiceList retrieves one page of invoices.
func QueryGetInvoiceList(ctx context.Context, query GetInvoiceListQuery, deps GetInvoiceListDeps) (GetInvoiceListResult, error) {
	invoices, page, err := fetchList[billing.Invoice](ctx, deps.Backend, api.PathInvoices, query.Params)
	if err != nil {
		return GetInvoiceListResult{}, err
	}
	return GetInvoiceListResult{Invoices: invoices, Page: page}, nil
}

// GetInvoiceDetailQuery carries query parameters.
type GetInvoiceDetailQuery struct {
	InvoiceID string
}

// GetInvoiceDetailResult carries the query result.
type GetInvoiceDetailResult struct {
	Invoice  billing.Invoice
	Payments []billing.Payment
}

// QueryGetInvoiceDetail retrieves one invoice with its payments.
// POST: payments are the ones the backend links to this invoice
func QueryGetInvoiceDetail(ctx context.Context, query GetInvoiceDetailQuery, deps GetInvoiceListDeps) (GetInvoiceDetailResult, error) {
	var inv billing.Invoice
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathInvoices, query.InvoiceID), nil, &inv)
	if err != nil {
		return GetInvoiceDetailResult{}, err
	}

	lp := listutil.ListParams{
		PageParams:   listutil.PageParams{Page: 1, PerPage: 100},
		FilterParams: listutil.FilterParams{Filters: map[string]string{"invoice": query.InvoiceID}},
	}
	payments, _, err := fetchList[billing.Payment](ctx, deps.Backend, api.PathPayments, lp)
	if err != nil {
		return GetInvoiceDetailResult{}, err
	}

	return GetInvoiceDetailResult{Invoice: inv, Payments: payments}, nil
}
