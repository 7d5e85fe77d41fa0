package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/mail"
)

// SaveMailConfigInput carries input for the mail config orchestrator.
type SaveMailConfigInput struct {
	ConfigID string // empty for create, set for update
	Form     mail.ConfigForm
}

// SaveMailConfigResult carries the saved mail configuration.
type SaveMailConfigResult struct {
	Config mail.Config
}

// MailDeps holds dependencies for the mail orchestrators.
type MailDeps struct {
	Backend Backend
}

// ExecuteSaveMailConfig creates or updates an outgoing mail configuration.
func ExecuteSaveMailConfig(ctx context.Context, input SaveMailConfigInput, deps MailDeps) (SaveMailConfigResult, fielderr.Errors, error) {
	var saved mail.Config
	errs, err := submit(&input.Form, func() error {
		if input.ConfigID == "" {
			return deps.Backend.Post(ctx, api.PathMailConfigs, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathMailConfigs, input.ConfigID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveMailConfigResult{}, errs, err
	}

	slog.Info("mail_config_saved", "config_id", saved.ID, "created", input.ConfigID == "")
	return SaveMailConfigResult{Config: saved}, nil, nil
}

// SendCampaignInput carries a composed bulk email.
type SendCampaignInput struct {
	Form mail.CampaignForm
}

// SendCampaignResult carries the queued campaign.
type SendCampaignResult struct {
	Campaign mail.Campaign
}

// ExecuteSendCampaign submits a bulk email for delivery. The backend
// resolves recipients and does the actual sending; the dashboard only
// hands over the composed campaign.
// PRE: Form holds submitted values
// POST: on local validation failure no backend call is made
func ExecuteSendCampaign(ctx context.Context, input SendCampaignInput, deps MailDeps) (SendCampaignResult, fielderr.Errors, error) {
	var queued mail.Campaign
	errs, err := submit(&input.Form, func() error {
		return deps.Backend.Post(ctx, api.PathMailCampaigns, &input.Form, &queued)
	})
	if errs != nil || err != nil {
		return SendCampaignResult{}, errs, err
	}

	slog.Info("campaign_queued", "campaign_id", queued.ID, "recipients", input.Form.Recipients)
	return SendCampaignResult{Campaign: queued}, nil, nil
}

// DeleteMailConfigInput carries input for the delete config orchestrator.
type DeleteMailConfigInput struct {
	ConfigID string
}

// ExecuteDeleteMailConfig removes a mail configuration.
// PRE: the caller has shown a confirmation screen
func ExecuteDeleteMailConfig(ctx context.Context, input DeleteMailConfigInput, deps MailDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathMailConfigs, input.ConfigID)); err != nil {
		return err
	}
	slog.Info("mail_config_deleted", "config_id", input.ConfigID)
	return nil
}
