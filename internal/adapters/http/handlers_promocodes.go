package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/promocode"
)

var promoSortCols = []string{"promo_code", "start_date", "end_date", "limit"}

func handlePromoList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), promoSortCols, []string{"category"})

	result, err := projections.QueryGetPromoList(r.Context(),
		projections.GetPromoListQuery{Params: lp},
		projections.GetPromoListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "promo_list.html", map[string]any{
			"Title":  "Promo codes",
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

	renderTemplate(w, r, "promo_list.html", map[string]any{
		"Title":          "Promo codes",
		"PromoCodes":     result.PromoCodes,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func promoFormPage(w http.ResponseWriter, r *http.Request, promoID string, form promocode.Form, errs map[string][]string, notice string) {
	renderTemplate(w, r, "promo_form.html", map[string]any{
		"Title":      formTitle(promoID, "New promo code", "Edit promo code"),
		"PromoID":    promoID,
		"Form":       form,
		"Categories": strings.Join(form.Categories, ", "),
		"Errors":     errs,
		"Notice":     notice,
	})
}

func handlePromoNew(w http.ResponseWriter, r *http.Request) {
	promoFormPage(w, r, "", promocode.Form{}, nil, "")
}

func handlePromoEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPromoDetail(r.Context(),
		projections.GetPromoDetailQuery{PromoID: r.PathValue("id")},
		projections.GetPromoListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	p := result.PromoCode
	form := promocode.Form{
		Code:       p.Code,
		Percentage: p.Percentage,
		Amount:     p.Amount,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		UsageLimit: strconv.Itoa(p.UsageLimit),
		Categories: p.Categories,
	}
	promoFormPage(w, r, p.ID, form, nil, "")
}

func promoFormFromRequest(r *http.Request) promocode.Form {
	// Categories arrive as one comma separated field.
	var categories []string
	for _, c := range strings.Split(r.FormValue("categories"), ",") {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return promocode.Form{
		Code:       r.FormValue("promo_code"),
		Percentage: r.FormValue("percentage"),
		Amount:     r.FormValue("amount"),
		StartDate:  r.FormValue("start_date"),
		EndDate:    r.FormValue("end_date"),
		UsageLimit: r.FormValue("limit"),
		Categories: categories,
	}
}

func handlePromoSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	promoID := r.PathValue("id")
	input := orchestrators.SavePromoCodeInput{
		PromoID: promoID,
		Form:    promoFormFromRequest(r),
	}

	_, fieldErrs, err := orchestrators.ExecuteSavePromoCode(r.Context(), input,
		orchestrators.SavePromoCodeDeps{Backend: backendFor(r)})
	if err != nil {
		promoFormPage(w, r, promoID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		promoFormPage(w, r, promoID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(promoID, "Promo code created.", "Promo code updated."))
	http.Redirect(w, r, "/promo-codes", http.StatusSeeOther)
}

func handlePromoDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPromoDetail(r.Context(),
		projections.GetPromoDetailQuery{PromoID: r.PathValue("id")},
		projections.GetPromoListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete promo code",
		"What":       result.PromoCode.Code,
		"ActionPath": "/promo-codes/" + result.PromoCode.ID + "/delete",
		"CancelPath": "/promo-codes",
	})
}

func handlePromoDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeletePromoCode(r.Context(),
		orchestrators.DeletePromoCodeInput{PromoID: r.PathValue("id")},
		orchestrators.SavePromoCodeDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Promo code deleted.")
	http.Redirect(w, r, "/promo-codes", http.StatusSeeOther)
}
