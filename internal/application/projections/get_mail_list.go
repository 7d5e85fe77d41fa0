package projections

import (
	"context"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/mail"
)

// GetMailConfigListQuery carries query parameters.
type GetMailConfigListQuery struct {
	Params listutil.ListParams
}

// GetMailConfigListResult carries the query result.
type GetMailConfigListResult struct {
	Configs []mail.Config
	Page    listutil.PageInfo
}

// GetMailListDeps holds dependencies for the mail queries.
type GetMailListDeps struct {
	Backend Getter
}

// QueryGetMailConfigList retrieves one page of mail configurations.
func QueryGetMailConfigList(ctx context.Context, query GetMailConfigListQuery, deps GetMailListDeps) (GetMailConfigListResult, error) {
	configs, page, err := fetchList[mail.Config](ctx, deps.Backend, api.PathMailConfigs, query.Params)
	if err != nil {
		return GetMailConfigListResult{}, err
	}
	return GetMailConfigListResult{Configs: configs, Page: page}, nil
}

// GetCampaignListQuery carries query parameters.
type GetCampaignListQuery struct {
	Params listutil.ListParams
}

// GetCampaignListResult carries the query result.
type GetCampaignListResult struct {
	Campaigns []mail.Campaign
	Page      listutil.PageInfo
}

// QueryGetCampaignList retrieves one page of bulk email campaigns.
func QueryGetCampaignList(ctx context.Context, query GetCampaignListQuery, deps GetMailListDeps) (GetCampaignListResult, error) {
	campaigns, page, err := fetchList[mail.Campaign](ctx, deps.Backend, api.PathMailCampaigns, query.Params)
	if err != nil {
		return GetCampaignListResult{}, err
	}
	return GetCampaignListResult{Campaigns: campaigns, Page: page}, nil
}

// GetMailConfigDetailQuery carries query parameters.
type GetMailConfigDetailQuery struct {
	ConfigID string
}

// GetMailConfigDetailResult carries the query result.
type GetMailConfigDetailResult struct {
	Config mail.Config
}

// QueryGetMailConfigDetail retrieves one mail configuration for the
// edit screen. The backend never returns the stored password.
func QueryGetMailConfigDetail(ctx context.Context, query GetMailConfigDetailQuery, deps GetMailListDeps) (GetMailConfigDetailResult, error) {
	var cfg mail.Config
	_, err := deps.Backend.Get(ctx, api.Detail(api.PathMailConfigs, query.ConfigID), nil, &cfg)
	if err != nil {
		return GetMailConfigDetailResult{}, err
	}
	return GetMailConfigDetailResult{Config: cfg}, nil
}
