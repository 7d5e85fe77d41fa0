package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/facility"
)

var facilitySortCols = []string{"name", "capacity", "hourly_rate", "status"}

func handleFacilityList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), facilitySortCols, []string{"status"})

	result, err := projections.QueryGetFacilityList(r.Context(),
		projections.GetFacilityListQuery{Params: lp},
		projections.GetFacilityListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "facility_list.html", map[string]any{
			"Title":  "Facilities",
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

	renderTemplate(w, r, "facility_list.html", map[string]any{
		"Title":          "Facilities",
		"Facilities":     result.Facilities,
		"PageInfo":       result.Page,
		"Params":         lp,
		"Statuses":       facility.Statuses,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func facilityFormPage(w http.ResponseWriter, r *http.Request, facilityID string, form facility.Form, errs map[string][]string, notice string) {
	renderTemplate(w, r, "facility_form.html", map[string]any{
		"Title":      formTitle(facilityID, "New facility", "Edit facility"),
		"FacilityID": facilityID,
		"Form":       form,
		"Errors":     errs,
		"Notice":     notice,
		"Statuses":   facility.Statuses,
	})
}

func handleFacilityNew(w http.ResponseWriter, r *http.Request) {
	facilityFormPage(w, r, "", facility.Form{Status: facility.StatusAvailable}, nil, "")
}

func handleFacilityEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetFacilityDetail(r.Context(),
		projections.GetFacilityDetailQuery{FacilityID: r.PathValue("id")},
		projections.GetFacilityListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	f := result.Facility
	form := facility.Form{
		Name:        f.Name,
		Description: f.Description,
		Capacity:    f.Capacity,
		HourlyRate:  f.HourlyRate,
		Status:      f.Status,
	}
	facilityFormPage(w, r, f.ID, form, nil, "")
}

func facilityFormFromRequest(r *http.Request) facility.Form {
	capacity, _ := strconv.Atoi(r.FormValue("capacity"))
	return facility.Form{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Capacity:    capacity,
		HourlyRate:  r.FormValue("hourly_rate"),
		Status:      r.FormValue("status"),
	}
}

func handleFacilitySave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	facilityID := r.PathValue("id")
	input := orchestrators.SaveFacilityInput{
		FacilityID: facilityID,
		Form:       facilityFormFromRequest(r),
	}

	_, fieldErrs, err := orchestrators.ExecuteSaveFacility(r.Context(), input,
		orchestrators.SaveFacilityDeps{Backend: backendFor(r)})
	if err != nil {
		facilityFormPage(w, r, facilityID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		facilityFormPage(w, r, facilityID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(facilityID, "Facility created.", "Facility updated."))
	http.Redirect(w, r, "/facilities", http.StatusSeeOther)
}

func handleFacilityDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetFacilityDetail(r.Context(),
		projections.GetFacilityDetailQuery{FacilityID: r.PathValue("id")},
		projections.GetFacilityListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete facility",
		"What":       result.Facility.Name,
		"ActionPath": "/facilities/" + result.Facility.ID + "/delete",
		"CancelPath": "/facilities",
	})
}

func handleFacilityDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteFacility(r.Context(),
		orchestrators.DeleteFacilityInput{FacilityID: r.PathValue("id")},
		orchestrators.SaveFacilityDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Facility deleted.")
	http.Redirect(w, r, "/facilities", http.StatusSeeOther)
}

// --- Restaurants and their menus ---

var restaurantSortCols = []string{"name"}

func handleRestaurantList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), restaurantSortCols, nil)

	result, err := projections.QueryGetRestaurantList(r.Context(),
		projections.GetRestaurantListQuery{Params: lp},
		projections.GetFacilityListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "restaurant_list.html", map[string]any{
			"Title":  "Restaurants",
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

	renderTemplate(w, r, "restaurant_list.html", map[string]any{
		"Title":          "Restaurants",
		"Restaurants":    result.Restaurants,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func itemFormPage(w http.ResponseWriter, r *http.Request, itemID string, form facility.ItemForm, errs map[string][]string, notice string) {
	renderTemplate(w, r, "menu_item_form.html", map[string]any{
		"Title":  formTitle(itemID, "New menu item", "Edit menu item"),
		"ItemID": itemID,
		"Form":   form,
		"Errors": errs,
		"Notice": notice,
	})
}

func handleMenuItemNew(w http.ResponseWriter, r *http.Request) {
	itemFormPage(w, r, "", facility.ItemForm{}, nil, "")
}

func handleMenuItemSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	itemID := r.PathValue("id")
	input := orchestrators.SaveRestaurantItemInput{
		ItemID: itemID,
		Form: facility.ItemForm{
			Name:     r.FormValue("name"),
			Price:    r.FormValue("price"),
			Category: r.FormValue("category"),
		},
	}

	_, fieldErrs, err := orchestrators.ExecuteSaveRestaurantItem(r.Context(), input,
		orchestrators.SaveFacilityDeps{Backend: backendFor(r)})
	if err != nil {
		itemFormPage(w, r, itemID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		itemFormPage(w, r, itemID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(itemID, "Menu item created.", "Menu item updated."))
	http.Redirect(w, r, "/restaurants", http.StatusSeeOther)
}
