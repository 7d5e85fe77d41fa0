package web

import (
	"encoding/json"
	"net/http"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/event"
)

var eventSortCols = []string{"title", "status", "start_date", "end_date"}

var eventFilterKeys = []string{"status", "venue"}

func handleEventList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), eventSortCols, eventFilterKeys)

	result, err := projections.QueryGetEventList(r.Context(),
		projections.GetEventListQuery{Params: lp},
		projections.GetEventListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "event_list.html", map[string]any{
			"Title":  "Events",
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

	renderTemplate(w, r, "event_list.html", map[string]any{
		"Title":          "Events",
		"Events":         result.Events,
		"PageInfo":       result.Page,
		"Params":         lp,
		"Statuses":       event.Statuses,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func handleEventDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetEventDetail(r.Context(),
		projections.GetEventDetailQuery{EventID: r.PathValue("id")},
		projections.GetEventListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	// Description is markdown, rendered by the template's
	// renderMarkdown func with raw HTML escaped.
	renderTemplate(w, r, "event_detail.html", map[string]any{
		"Title": result.Event.Title,
		"Event": result.Event,
	})
}

func eventFormPage(w http.ResponseWriter, r *http.Request, eventID string, form event.Form, errs map[string][]string, notice string) {
	renderTemplate(w, r, "event_form.html", map[string]any{
		"Title":    formTitle(eventID, "New event", "Edit event"),
		"EventID":  eventID,
		"Form":     form,
		"Errors":   errs,
		"Notice":   notice,
		"Statuses": event.Statuses,
	})
}

func handleEventNew(w http.ResponseWriter, r *http.Request) {
	eventFormPage(w, r, "", event.Form{Status: event.StatusPlanned}, nil, "")
}

func handleEventEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetEventDetail(r.Context(),
		projections.GetEventDetailQuery{EventID: r.PathValue("id")},
		projections.GetEventListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	ev := result.Event
	form := event.Form{
		Title:                ev.Title,
		Description:          ev.Description,
		Status:               ev.Status,
		StartDate:            ev.StartDate.Format(event.FormTimeLayout),
		EndDate:              ev.EndDate.Format(event.FormTimeLayout),
		RegistrationDeadline: ev.RegistrationDeadline.Format(event.FormTimeLayout),
		Venue:                ev.Venue,
		Organizer:            ev.Organizer,
	}
	eventFormPage(w, r, ev.ID, form, nil, "")
}

func eventFormFromRequest(r *http.Request) event.Form {
	return event.Form{
		Title:                r.FormValue("title"),
		Description:          r.FormValue("description"),
		Status:               r.FormValue("status"),
		StartDate:            r.FormValue("start_date"),
		EndDate:              r.FormValue("end_date"),
		RegistrationDeadline: r.FormValue("registration_deadline"),
		Venue:                r.FormValue("venue"),
		Organizer:            r.FormValue("organizer"),
	}
}

func handleEventSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	eventID := r.PathValue("id")
	input := orchestrators.SaveEventInput{
		EventID: eventID,
		Form:    eventFormFromRequest(r),
	}

	result, fieldErrs, err := orchestrators.ExecuteSaveEvent(r.Context(), input,
		orchestrators.SaveEventDeps{Backend: backendFor(r)})
	if err != nil {
		eventFormPage(w, r, eventID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		eventFormPage(w, r, eventID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(eventID, "Event created.", "Event updated."))
	http.Redirect(w, r, "/events/"+result.Event.ID, http.StatusSeeOther)
}

func handleEventDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetEventDetail(r.Context(),
		projections.GetEventDetailQuery{EventID: r.PathValue("id")},
		projections.GetEventListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete event",
		"What":       result.Event.Title,
		"ActionPath": "/events/" + result.Event.ID + "/delete",
		"CancelPath": "/events/" + result.Event.ID,
	})
}

func handleEventDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteEvent(r.Context(),
		orchestrators.DeleteEventInput{EventID: r.PathValue("id")},
		orchestrators.SaveEventDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Event deleted.")
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}
