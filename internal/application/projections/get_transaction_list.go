package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// GetTransactionListQuery carries query parameters.
type GetTransactionListQuery struct {
	Params listutil.ListParams
}

// GetTransactionListResult carries the query result.
type GetTransactionListResult struct {
	Transactions []billing.Transaction
	Page         listutil.PageInfo
}

// GetTransactionListDeps holds dependencies for GetTransactionList.
type GetTransactionListDeps struct {
	Backend Getter
}

// QueryGetTransactionList retrieves one page of ledger transactions.
// Transactions are read-only on this side; there is no detail or edit.
func QueryGetTransactionList(ctx context.Context, query GetTransactionListQuery, deps GetTransactionListDeps) (GetTransactionListResult, error) {
	txs, page, err := fetchList[billing.Transaction](ctx, deps.Backend, api.PathTransactions, query.Params)
	if err != nil {
		return GetTransactionListResult{}, err
	}
	return GetTransactionListResult{Transactions: txs, Page: page}, nil
}
