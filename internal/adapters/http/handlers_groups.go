package web

import (
	"encoding/json"
	"net/http"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/group"
)

var groupSortCols = []string{"name"}

func handleGroupList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), groupSortCols, nil)

	result, err := projections.QueryGetGroupList(r.Context(),
		projections.GetGroupListQuery{Params: lp},
		projections.GetGroupListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "group_list.html", map[string]any{
			"Title":  "Groups",
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

	renderTemplate(w, r, "group_list.html", map[string]any{
		"Title":          "Groups",
		"Groups":         result.Groups,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

// handleGroupDetail shows the group's users and permissions, plus the
// permissions it does not hold yet so they can be granted.
func handleGroupDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetGroupDetail(r.Context(),
		projections.GetGroupDetailQuery{GroupID: r.PathValue("id")},
		projections.GetGroupListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	var missing []group.Permission
	for _, p := range result.AllPermissions {
		if !result.Group.HasPermission(p.ID) {
			missing = append(missing, p)
		}
	}

	renderTemplate(w, r, "group_detail.html", map[string]any{
		"Title":              result.Group.Name,
		"Group":              result.Group,
		"MissingPermissions": missing,
	})
}

func groupFormPage(w http.ResponseWriter, r *http.Request, groupID string, form group.Form, errs map[string][]string, notice string) {
	renderTemplate(w, r, "group_form.html", map[string]any{
		"Title":   formTitle(groupID, "New group", "Rename group"),
		"GroupID": groupID,
		"Form":    form,
		"Errors":  errs,
		"Notice":  notice,
	})
}

func handleGroupNew(w http.ResponseWriter, r *http.Request) {
	groupFormPage(w, r, "", group.Form{}, nil, "")
}

func handleGroupEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetGroupDetail(r.Context(),
		projections.GetGroupDetailQuery{GroupID: r.PathValue("id")},
		projections.GetGroupListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}
	groupFormPage(w, r, result.Group.ID, group.Form{Name: result.Group.Name}, nil, "")
}

// handleGroupSave creates or renames a group. Membership never goes
// through this form; the add/remove handlers below own it.
func handleGroupSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	groupID := r.PathValue("id")
	input := orchestrators.SaveGroupInput{
		GroupID: groupID,
		Form:    group.Form{Name: r.FormValue("name")},
	}

	result, fieldErrs, err := orchestrators.ExecuteSaveGroup(r.Context(), input,
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		groupFormPage(w, r, groupID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		groupFormPage(w, r, groupID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(groupID, "Group created.", "Group renamed."))
	http.Redirect(w, r, "/groups/"+result.Group.ID, http.StatusSeeOther)
}

func handleGroupAddUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	groupID := r.PathValue("id")
	err := orchestrators.ExecuteAddGroupUser(r.Context(),
		orchestrators.GroupMemberInput{GroupID: groupID, UserID: r.FormValue("user")},
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		setFlash(w, "Could not add user: "+noticeText(err))
	} else {
		setFlash(w, "User added to group.")
	}
	http.Redirect(w, r, "/groups/"+groupID, http.StatusSeeOther)
}

func handleGroupRemoveUser(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	err := orchestrators.ExecuteRemoveGroupUser(r.Context(),
		orchestrators.GroupMemberInput{GroupID: groupID, UserID: r.PathValue("userID")},
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		setFlash(w, "Could not remove user: "+noticeText(err))
	} else {
		setFlash(w, "User removed from group.")
	}
	http.Redirect(w, r, "/groups/"+groupID, http.StatusSeeOther)
}

func handleGroupAddPermission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	groupID := r.PathValue("id")
	err := orchestrators.ExecuteAddGroupPermission(r.Context(),
		orchestrators.GroupPermissionInput{GroupID: groupID, PermissionID: r.FormValue("permission")},
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		setFlash(w, "Could not grant permission: "+noticeText(err))
	} else {
		setFlash(w, "Permission granted.")
	}
	http.Redirect(w, r, "/groups/"+groupID, http.StatusSeeOther)
}

func handleGroupRemovePermission(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	err := orchestrators.ExecuteRemoveGroupPermission(r.Context(),
		orchestrators.GroupPermissionInput{GroupID: groupID, PermissionID: r.PathValue("permID")},
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		setFlash(w, "Could not revoke permission: "+noticeText(err))
	} else {
		setFlash(w, "Permission revoked.")
	}
	http.Redirect(w, r, "/groups/"+groupID, http.StatusSeeOther)
}

func handleGroupDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetGroupDetail(r.Context(),
		projections.GetGroupDetailQuery{GroupID: r.PathValue("id")},
		projections.GetGroupListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete group",
		"What":       result.Group.Name,
		"ActionPath": "/groups/" + result.Group.ID + "/delete",
		"CancelPath": "/groups/" + result.Group.ID,
	})
}

func handleGroupDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteGroup(r.Context(),
		orchestrators.DeleteGroupInput{GroupID: r.PathValue("id")},
		orchestrators.SaveGroupDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Group deleted.")
	http.Redirect(w, r, "/groups", http.StatusSeeOther)
}
