package projections_test

import (
	"context"
	"testing"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/projections"
)

func TestQueryGetInvoiceDetail(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"/api/invoices/i1": {body: `{"id":"i1","invoice_number":"INV-001","total_amount":"100.00","status":"partial_paid"}`},
		api.PathPayments: {body: `[{"id":"p1","invoice":"i1","amount":"60.00"}]`,
			pagination: &api.Pagination{Count: 1, TotalPages: 1, CurrentPage: 1, PageSize: 100}},
	}}

	result, err := projections.QueryGetInvoiceDetail(context.Background(),
		projections.GetInvoiceDetailQuery{InvoiceID: "i1"},
		projections.GetInvoiceListDeps{Backend: backend})
	if err != nil {
		t.Fatalf("QueryGetInvoiceDetail: %v", err)
	}
	if result.Invoice.InvoiceNumber != "INV-001" {
		t.Errorf("invoice = %+v", result.Invoice)
	}
	if len(result.Payments) != 1 || result.Payments[0].Amount != "60.00" {
		t.Errorf("payments = %+v", result.Payments)
	}

	// The payment lookup must be scoped to this invoice server-side.
	q := backend.lastQuery(t, api.PathPayments)
	if q.Get("invoice") != "i1" {
		t.Errorf("payment filter = %v", q)
	}
}

func TestQueryGetSaleDetail_ExactTotal(t *testing.T) {
	// 0.10 + 0.20 must come out as 0.30, not a float artifact.
	backend := &fakeBackend{responses: map[string]fakeResponse{
		"/api/sales/s1": {body: `{"id":"s1","items":[
			{"item_name":"Tea","quantity":1,"unit_price":"0.10","total":"0.10"},
			{"item_name":"Scone","quantity":1,"unit_price":"0.20","total":"0.20"}]}`},
	}}

	result, err := projections.QueryGetSaleDetail(context.Background(),
		projections.GetSaleDetailQuery{SaleID: "s1"},
		projections.GetSaleListDeps{Backend: backend})
	if err != nil {
		t.Fatalf("QueryGetSaleDetail: %v", err)
	}
	if result.Total != "0.30" {
		t.Errorf("Total = %q, want 0.30", result.Total)
	}
}

func TestQueryGetTransactionList(t *testing.T) {
	backend := &fakeBackend{responses: map[string]fakeResponse{
		api.PathTransactions: {body: `[{"id":"t1","amount":"12.00","transaction_type":"credit"}]`,
			pagination: &api.Pagination{Count: 31, TotalPages: 2, CurrentPage: 1, PageSize: 20,
				Next: strptr("/api/transactions?page=2")}},
	}}

	result, err := projections.QueryGetTransactionList(context.Background(),
		projections.GetTransactionListQuery{Params: listutil.ListParams{
			PageParams: listutil.PageParams{Page: 1, PerPage: 20}}},
		projections.GetTransactionListDeps{Backend: backend})
	if err != nil {
		t.Fatalf("QueryGetTransactionList: %v", err)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Kind != "credit" {
		t.Errorf("transactions = %+v", result.Transactions)
	}
	if !result.Page.HasNext || result.Page.HasPrevious {
		t.Errorf("page = %+v", result.Page)
	}
}
