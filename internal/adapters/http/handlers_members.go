package web

import (
	"encoding/json"
	"net/http"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/member"
)

// memberSortCols are the columns the member list can be ordered by.
// Anything else in the query string is dropped before it reaches the
// backend.
var memberSortCols = []string{"first_name", "last_name", "email", "membership_status", "batch_number"}

var memberFilterKeys = []string{"membership_type", "membership_status"}

func memberListParams(r *http.Request) listutil.ListParams {
	return listutil.ParseListParams(r.URL.Query(), memberSortCols, memberFilterKeys)
}

// memberFormChoices loads the reference lists the member form offers.
// A failed fetch leaves its dropdown empty and carries one notice; the
// form itself still renders.
func memberFormChoices(r *http.Request) map[string]any {
	out := map[string]any{}
	if deps.Choices == nil {
		return out
	}
	var firstErr error
	load := func(key, path string) {
		choices, err := deps.Choices.Get(r.Context(), path)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out[key] = choices
	}
	load("MembershipTypes", api.ChoicesMembershipTypes)
	load("Statuses", api.ChoicesMemberStatuses)
	load("Genders", api.ChoicesGenders)
	load("Institutes", api.ChoicesInstitutes)
	out["Notice"] = noticeText(firstErr)
	return out
}

func handleMemberList(w http.ResponseWriter, r *http.Request) {
	lp := memberListParams(r)

	result, err := projections.QueryGetMemberList(r.Context(),
		projections.GetMemberListQuery{Params: lp},
		projections.GetMemberListDeps{Backend: backendFor(r), Choices: deps.Choices})
	if err != nil {
		renderTemplate(w, r, "member_list.html", map[string]any{
			"Title":  "Members",
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

	renderTemplate(w, r, "member_list.html", map[string]any{
		"Title":           "Members",
		"Members":         result.Members,
		"PageInfo":        result.Page,
		"Params":          lp,
		"MembershipTypes": result.MembershipTypes,
		"Statuses":        result.Statuses,
		"PerPageOptions":  listutil.PerPageOptions,
		"Notice":          noticeText(result.ChoiceErr),
	})
}

func handleMemberDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMemberDetail(r.Context(),
		projections.GetMemberDetailQuery{MemberID: r.PathValue("id")},
		projections.GetMemberDetailDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "member_detail.html", map[string]any{
		"Title":  result.Member.FullName(),
		"Member": result.Member,
	})
}

// memberFormPage renders the create/edit form. A nil errs map means a
// fresh form.
func memberFormPage(w http.ResponseWriter, r *http.Request, memberID string, form member.Form, errs map[string][]string, notice string) {
	choiceData := memberFormChoices(r)
	renderTemplate(w, r, "member_form.html", map[string]any{
		"Title":           formTitle(memberID, "New member", "Edit member"),
		"MemberID":        memberID,
		"Form":            form,
		"Errors":          errs,
		"Notice":          notice,
		"MembershipTypes": choiceData["MembershipTypes"],
		"Statuses":        choiceData["Statuses"],
		"Genders":         choiceData["Genders"],
		"Institutes":      choiceData["Institutes"],
		"ChoiceNotice":    choiceData["Notice"],
	})
}

func handleMemberNew(w http.ResponseWriter, r *http.Request) {
	memberFormPage(w, r, "", member.Form{}, nil, "")
}

func handleMemberEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMemberDetail(r.Context(),
		projections.GetMemberDetailQuery{MemberID: r.PathValue("id")},
		projections.GetMemberDetailDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	m := result.Member
	form := member.Form{
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		MembershipType: m.MembershipType,
		BatchNumber:    m.BatchNumber,
		Gender:         m.Gender,
		Institute:      m.Institute,
		DateOfBirth:    m.DateOfBirth,
	}
	memberFormPage(w, r, m.ID, form, nil, "")
}

func memberFormFromRequest(r *http.Request) member.Form {
	return member.Form{
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		Email:          r.FormValue("email"),
		MembershipType: r.FormValue("membership_type"),
		BatchNumber:    r.FormValue("batch_number"),
		Gender:         r.FormValue("gender"),
		Institute:      r.FormValue("institute"),
		DateOfBirth:    r.FormValue("date_of_birth"),
	}
}

// handleMemberSave covers both create (no id in the path) and update.
// Field rejections, local or upstream, re-render the form with the
// user's input intact.
func handleMemberSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	memberID := r.PathValue("id")
	input := orchestrators.SaveMemberInput{
		MemberID: memberID,
		Form:     memberFormFromRequest(r),
	}

	result, fieldErrs, err := orchestrators.ExecuteSaveMember(r.Context(), input,
		orchestrators.SaveMemberDeps{Backend: backendFor(r)})
	if err != nil {
		memberFormPage(w, r, memberID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		memberFormPage(w, r, memberID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(memberID, "Member created.", "Member updated."))
	http.Redirect(w, r, "/members/"+result.Member.ID, http.StatusSeeOther)
}

func handleMemberDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMemberDetail(r.Context(),
		projections.GetMemberDetailQuery{MemberID: r.PathValue("id")},
		projections.GetMemberDetailDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete member",
		"What":       result.Member.FullName(),
		"ActionPath": "/members/" + result.Member.ID + "/delete",
		"CancelPath": "/members/" + result.Member.ID,
	})
}

func handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteMember(r.Context(),
		orchestrators.DeleteMemberInput{MemberID: r.PathValue("id")},
		orchestrators.SaveMemberDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Member deleted.")
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}
