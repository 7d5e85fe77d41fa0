package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/mail"
)

// splitIDList turns a comma or whitespace separated ID field into a
// clean slice.
func splitIDList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// --- Mail configurations ---

var mailConfigSortCols = []string{"name", "host", "from_email"}

func handleMailConfigList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), mailConfigSortCols, nil)

	result, err := projections.QueryGetMailConfigList(r.Context(),
		projections.GetMailConfigListQuery{Params: lp},
		projections.GetMailListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "mail_config_list.html", map[string]any{
			"Title":  "Mail settings",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "mail_config_list.html", map[string]any{
		"Title":          "Mail settings",
		"Configs":        result.Configs,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func mailConfigFormPage(w http.ResponseWriter, r *http.Request, configID string, form mail.ConfigForm, errs map[string][]string, notice string) {
	renderTemplate(w, r, "mail_config_form.html", map[string]any{
		"Title":    formTitle(configID, "New mail configuration", "Edit mail configuration"),
		"ConfigID": configID,
		"Form":     form,
		"Errors":   errs,
		"Notice":   notice,
	})
}

func handleMailConfigNew(w http.ResponseWriter, r *http.Request) {
	mailConfigFormPage(w, r, "", mail.ConfigForm{Port: 587, UseTLS: true}, nil, "")
}

func handleMailConfigEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMailConfigDetail(r.Context(),
		projections.GetMailConfigDetailQuery{ConfigID: r.PathValue("id")},
		projections.GetMailListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	cfg := result.Config
	// Password is write-only; the edit form starts with it blank.
	form := mail.ConfigForm{
		Name:      cfg.Name,
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		UseTLS:    cfg.UseTLS,
		IsDefault: cfg.IsDefault,
	}
	mailConfigFormPage(w, r, cfg.ID, form, nil, "")
}

func mailConfigFormFromRequest(r *http.Request) mail.ConfigForm {
	port, _ := strconv.Atoi(r.FormValue("port"))
	return mail.ConfigForm{
		Name:      r.FormValue("name"),
		Host:      r.FormValue("host"),
		Port:      port,
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		FromEmail: r.FormValue("from_email"),
		FromName:  r.FormValue("from_name"),
		UseTLS:    r.FormValue("use_tls") == "on",
		IsDefault: r.FormValue("is_default") == "on",
	}
}

func handleMailConfigSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	configID := r.PathValue("id")
	input := orchestrators.SaveMailConfigInput{
		ConfigID: configID,
		Form:     mailConfigFormFromRequest(r),
	}

	_, fieldErrs, err := orchestrators.ExecuteSaveMailConfig(r.Context(), input,
		orchestrators.MailDeps{Backend: backendFor(r)})
	if err != nil {
		mailConfigFormPage(w, r, configID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		mailConfigFormPage(w, r, configID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(configID, "Mail configuration created.", "Mail configuration updated."))
	http.Redirect(w, r, "/mail/configs", http.StatusSeeOther)
}

func handleMailConfigDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMailConfigDetail(r.Context(),
		projections.GetMailConfigDetailQuery{ConfigID: r.PathValue("id")},
		projections.GetMailListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete mail configuration",
		"What":       result.Config.Name,
		"ActionPath": "/mail/configs/" + result.Config.ID + "/delete",
		"CancelPath": "/mail/configs",
	})
}

func handleMailConfigDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteMailConfig(r.Context(),
		orchestrators.DeleteMailConfigInput{ConfigID: r.PathValue("id")},
		orchestrators.MailDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Mail configuration deleted.")
	http.Redirect(w, r, "/mail/configs", http.StatusSeeOther)
}

// --- Bulk email campaigns ---

var campaignSortCols = []string{"subject", "status", "created_at"}

func handleCampaignList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), campaignSortCols, []string{"status"})

	result, err := projections.QueryGetCampaignList(r.Context(),
		projections.GetCampaignListQuery{Params: lp},
		projections.GetMailListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "campaign_list.html", map[string]any{
			"Title":  "Bulk email",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "campaign_list.html", map[string]any{
		"Title":          "Bulk email",
		"Campaigns":      result.Campaigns,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func campaignFormPage(w http.ResponseWriter, r *http.Request, form mail.CampaignForm, errs map[string][]string, notice string) {
	// The config dropdown reuses the config list; a fetch failure
	// leaves it empty with a notice, the compose form still renders.
	configs, cfgErr := projections.QueryGetMailConfigList(r.Context(),
		projections.GetMailConfigListQuery{Params: listutil.ListParams{
			PageParams: listutil.PageParams{Page: 1, PerPage: listutil.DefaultPerPage},
		}},
		projections.GetMailListDeps{Backend: backendFor(r)})
	if notice == "" && cfgErr != nil {
		notice = noticeText(cfgErr)
	}

	renderTemplate(w, r, "campaign_form.html", map[string]any{
		"Title":   "Compose bulk email",
		"Form":    form,
		"Errors":  errs,
		"Notice":  notice,
		"Configs": configs.Configs,
		"RecipientOptions": []string{
			mail.RecipientsAll, mail.RecipientsActive, mail.RecipientsSelected,
		},
	})
}

func handleCampaignNew(w http.ResponseWriter, r *http.Request) {
	campaignFormPage(w, r, mail.CampaignForm{Recipients: mail.RecipientsAll}, nil, "")
}

func handleCampaignSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.SendCampaignInput{
		Form: mail.CampaignForm{
			Subject:    r.FormValue("subject"),
			Body:       r.FormValue("body"),
			Recipients: r.FormValue("recipients"),
			MemberIDs:  splitIDList(r.FormValue("member_ids")),
			ConfigID:   r.FormValue("config_id"),
		},
	}

	_, fieldErrs, err := orchestrators.ExecuteSendCampaign(r.Context(), input,
		orchestrators.MailDeps{Backend: backendFor(r)})
	if err != nil {
		campaignFormPage(w, r, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		campaignFormPage(w, r, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, "Campaign queued for delivery.")
	http.Redirect(w, r, "/mail/campaigns", http.StatusSeeOther)
}
