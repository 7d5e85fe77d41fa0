package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/facility"
)

// GetFacilityListQuery carries query parameters.
type GetFacilityListQuery struct {
	Params listutil.ListParams
}

// GetFacilityListResult carries the query result.
type GetFacilityListResult struct {
	Facilities []facility.Facility
	Page       listutil.PageInfo
}

// GetFacilityListDeps holds dependencies for GetFacilityList.
type GetFacilityListDeps struct {
	Backend Getter
}

// QueryGetFacilityList retrieves one page of facilities.
func QueryGetFacilityList(ctx context.Context, query GetFacilityListQuery, deps GetFacilityListDeps) (GetFacilityListResult, error) {
	facilities, page, err := fetchList[facility.Facility](ctx, deps.Backend, api.PathFacilities, query.Params)
	if err != nil {
		return GetFacilityListResult{}, err
	}
	return GetFacilityListResult{Facilities: facilities, Page: page}, nil
}

// GetRestaurantListQuery carries query parameters.
type GetRestaurantListQuery struct {
	Params listutil.ListParams
}

// GetRestaurantListResult carries the query result.
type GetRestaurantListResult struct {
	Restaurants []facility.Restaurant
	Page        listutil.PageInfo
}

// QueryGetRestaurantList retrieves one page of restaurants with menus.
func QueryGetRestaurantList(ctx context.Context, query GetRestaurantListQuery, deps GetFacilityListDeps) (GetRestaurantListResult, error) {
	restaurants, page, err := fetchList[facility.Restaurant](ctx, deps.Backend, api.PathRestaurants, query.Params)
	if err != nil {
		return GetRestaurantListResult{}, err
	}
	return GetRestaurantListResult{Restaurants: restaurants, Page: page}, nil
}

// GetFacilityDetailQuery carries query parameters.
type GetFacilityDetailQuery struct {
	FacilityID string
}

// GetFacilityDetailResult carries the query result.
type GetFacilityDetailResult struct {
	Facility facility.Facility
}

// QueryGetFacilityDetail retrieves one facility for the edit screen.
func QueryGetFacilityDetail(ctx context.Context, query GetFacilityDetailQuery, deps GetFacilityListDeps) (GetFacilityDetailResult, error) {
	var f facility.Facility
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathFacilities, query.FacilityID), nil, &f)
	if err != nil {
		return GetFacilityDetailResult{}, err
	}
	return GetFacilityDetailResult{Facility: f}, nil
}
