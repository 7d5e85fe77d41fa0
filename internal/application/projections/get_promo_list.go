package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/promocode"
)

// GetPromoListQuery carries query parameters.
type GetPromoListQuery struct {
	Params listutil.ListParams
}

// GetPromoListResult carries the query result.
type GetPromoListResult struct {
	PromoCodes []promocode.PromoCode
	Page       listutil.PageInfo
}

// GetPromoListDeps holds dependencies for GetPromoList.
type GetPromoListDeps struct {
	Backend Getter
}

// QueryGetPromoList retrieves one page of promo codes.
func QueryGetPromoList(ctx context.Context, query GetPromoListQuery, deps GetPromoListDeps) (GetPromoListResult, error) {
	codes, page, err := fetchList[promocode.PromoCode](ctx, deps.Backend, api.PathPromoCodes, query.Params)
	if err != nil {
		return GetPromoListResult{}, err
	}
	return GetPromoListResult{PromoCodes: codes, Page: page}, nil
}

// GetPromoDetailQuery carries query parameters.
type GetPromoDetailQuery struct {
	PromoID string
}

// GetPromoDetailResult carries the query result.
type GetPromoDetailResult struct {
	PromoCode promocode.PromoCode
}

// QueryGetPromoDetail retrieves one promo code, as the edit screen needs it.
func QueryGetPromoDetail(ctx context.Context, query GetPromoDetailQuery, deps GetPromoListDeps) (GetPromoDetailResult, error) {
	var p promocode.PromoCode
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathPromoCodes, query.PromoID), nil, &p)
	if err != nil {
		return GetPromoDetailResult{}, err
	}
	return GetPromoDetailResult{PromoCode: p}, nil
}
