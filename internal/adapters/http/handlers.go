package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/listutil"
	"clubdesk/internal/domain/billing"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is a variable so tests can point at the package-local copy.
var templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// noticeText translates a failed upstream call into exactly one
// user-visible message. No failure is silently dropped: transport
// errors, backend rejections and unknown errors all map to a notice.
func noticeText(err error) string {
	if err == nil {
		return ""
	}
	if api.IsNoResponse(err) {
		return "Cannot reach the server. Check your connection and try again."
	}
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Notice()
	}
	return "Something went wrong. Please try again."
}

const flashCookieName = "clubdesk_flash"

// setFlash stores a one-shot success message for the next page load.
// POST: exactly one flash pending; a second call before the read
// replaces the first
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   middleware.SecureCookies,
	})
}

// popFlash reads and clears the pending flash message.
// POST: the flash renders once; reloading the page shows no flash
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   middleware.SecureCookies,
	})
	msg, unescapeErr := url.QueryUnescape(c.Value)
	if unescapeErr != nil {
		return ""
	}
	return msg
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"currentEmail": func() string { return sess.Email },
		"currentName":  func() string { return sess.Name },
		"isLoggedIn":   func() bool { return loggedIn },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatAmount": billing.FormatAmount,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"pageQuery": func(lp listutil.ListParams, page int) template.URL {
			return template.URL(lp.ViewQuery(page))
		},
		"sortQuery": func(lp listutil.ListParams, col string) template.URL {
			next := lp
			next.Sort = col
			next.Dir = "asc"
			if lp.Sort == col && lp.Dir == "asc" {
				next.Dir = "desc"
			}
			return template.URL(next.ViewQuery(1))
		},
		"fieldErr": func(errs map[string][]string, field string) string {
			if len(errs[field]) == 0 {
				return ""
			}
			return errs[field][0]
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(w, r)
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// formTitle picks the page title for a create-or-edit form.
func formTitle(id, whenNew, whenEdit string) string {
	if id == "" {
		return whenNew
	}
	return whenEdit
}

// savedFlash picks the success flash for a create-or-edit save.
func savedFlash(id, whenCreated, whenUpdated string) string {
	if id == "" {
		return whenCreated
	}
	return whenUpdated
}

// handleUpstreamError renders the right response for a failed backend
// call made from a detail or action handler.
func handleUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if api.IsNotFoundErr(err) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if api.IsNoResponse(err) {
		renderTemplate(w, r, "error.html", map[string]any{
			"Title":  "Server unreachable",
			"Notice": noticeText(err),
		})
		return
	}
	if apiErr, ok := api.AsError(err); ok && apiErr.IsUnauthorized() {
		middleware.ClearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	internalError(w, err)
}
