package web

import (
	"errors"
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	resetflowStore "clubdesk/internal/adapters/storage/resetflow"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/domain/resetflow"
)

func isFlowNotFound(err error) bool {
	return errors.Is(err, resetflowStore.ErrNotFound)
}

// resetFlowCookieName carries the wizard flow id between the three
// password reset steps.
const resetFlowCookieName = "clubdesk_reset"

func setResetFlowCookie(w http.ResponseWriter, flowID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     resetFlowCookieName,
		Value:    flowID,
		Path:     "/password",
		MaxAge:   int(resetflow.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   middleware.SecureCookies,
	})
}

func clearResetFlowCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     resetFlowCookieName,
		Value:    "",
		Path:     "/password",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   middleware.SecureCookies,
	})
}

func resetFlowID(r *http.Request) string {
	c, err := r.Cookie(resetFlowCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func resetDeps() orchestrators.ResetDeps {
	return orchestrators.ResetDeps{
		Backend:    deps.Backend,
		FlowStore:  deps.Flows,
		GenerateID: generateID,
		Now:        timeNow,
	}
}

func handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "login.html", map[string]any{
		"Title": "Sign in",
	})
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
		Backend:      deps.Backend,
		SessionStore: deps.Sessions,
		Now:          timeNow,
	})
	if err != nil {
		notice := noticeText(err)
		if errors.Is(err, orchestrators.ErrInvalidCredentials) {
			notice = "Invalid email or password."
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"Title":  "Sign in",
			"Notice": notice,
			"Email":  input.Email,
		})
		return
	}

	middleware.SetSessionCookie(w, result.Token, result.ExpiresAt)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(middleware.SessionCookieName()); err == nil {
		token = c.Value
	}
	if token != "" {
		err := orchestrators.ExecuteLogout(r.Context(), orchestrators.LogoutInput{Token: token},
			orchestrators.LogoutDeps{
				Backend:      backendFor(r),
				SessionStore: deps.Sessions,
			})
		if err != nil {
			internalError(w, err)
			return
		}
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// --- Password reset wizard ---
//
// Three steps, each gated on the persisted flow state: enter email,
// enter the emailed code, choose a new password. Visiting a step out
// of order sends the user back to the start.

func handleResetEmailPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "reset_email.html", map[string]any{
		"Title": "Reset password",
	})
}

func handleResetEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.StartResetInput{Email: r.FormValue("email")}

	result, fieldErrs, err := orchestrators.ExecuteStartReset(r.Context(), input, resetDeps())
	if err != nil {
		renderTemplate(w, r, "reset_email.html", map[string]any{
			"Title":  "Reset password",
			"Notice": noticeText(err),
			"Email":  input.Email,
		})
		return
	}
	if !fieldErrs.Empty() {
		renderTemplate(w, r, "reset_email.html", map[string]any{
			"Title":  "Reset password",
			"Errors": map[string][]string(fieldErrs),
			"Email":  input.Email,
		})
		return
	}

	setResetFlowCookie(w, result.FlowID)
	http.Redirect(w, r, "/password/verify", http.StatusSeeOther)
}

func handleResetOtpPage(w http.ResponseWriter, r *http.Request) {
	if resetFlowID(r) == "" {
		http.Redirect(w, r, "/password/forgot", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "reset_otp.html", map[string]any{
		"Title": "Enter code",
	})
}

func handleResetOtp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.VerifyResetOtpInput{
		FlowID: resetFlowID(r),
		Code:   r.FormValue("otp"),
	}
	if input.FlowID == "" {
		http.Redirect(w, r, "/password/forgot", http.StatusSeeOther)
		return
	}

	fieldErrs, err := orchestrators.ExecuteVerifyResetOtp(r.Context(), input, resetDeps())
	if err != nil {
		if restartResetOnError(w, r, err) {
			return
		}
		renderTemplate(w, r, "reset_otp.html", map[string]any{
			"Title":  "Enter code",
			"Notice": noticeText(err),
		})
		return
	}
	if !fieldErrs.Empty() {
		renderTemplate(w, r, "reset_otp.html", map[string]any{
			"Title":  "Enter code",
			"Errors": map[string][]string(fieldErrs),
		})
		return
	}

	http.Redirect(w, r, "/password/reset", http.StatusSeeOther)
}

func handleResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	if resetFlowID(r) == "" {
		http.Redirect(w, r, "/password/forgot", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "reset_password.html", map[string]any{
		"Title": "Choose a new password",
	})
}

func handleResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.CompleteResetInput{
		FlowID:   resetFlowID(r),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}
	if input.FlowID == "" {
		http.Redirect(w, r, "/password/forgot", http.StatusSeeOther)
		return
	}

	fieldErrs, err := orchestrators.ExecuteCompleteReset(r.Context(), input, resetDeps())
	if err != nil {
		if restartResetOnError(w, r, err) {
			return
		}
		renderTemplate(w, r, "reset_password.html", map[string]any{
			"Title":  "Choose a new password",
			"Notice": noticeText(err),
		})
		return
	}
	if !fieldErrs.Empty() {
		renderTemplate(w, r, "reset_password.html", map[string]any{
			"Title":  "Choose a new password",
			"Errors": map[string][]string(fieldErrs),
		})
		return
	}

	clearResetFlowCookie(w)
	setFlash(w, "Password updated. Sign in with your new password.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func handleResetAbandon(w http.ResponseWriter, r *http.Request) {
	if id := resetFlowID(r); id != "" {
		if err := orchestrators.ExecuteAbandonReset(r.Context(), id, resetDeps()); err != nil {
			internalError(w, err)
			return
		}
	}
	clearResetFlowCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// restartResetOnError sends expired or out-of-order wizard flows back
// to the first step. Returns true when it handled the error.
func restartResetOnError(w http.ResponseWriter, r *http.Request, err error) bool {
	if errors.Is(err, resetflow.ErrExpired) || errors.Is(err, resetflow.ErrWrongState) || isFlowNotFound(err) {
		clearResetFlowCookie(w)
		setFlash(w, "That reset session is no longer valid. Start again.")
		http.Redirect(w, r, "/password/forgot", http.StatusSeeOther)
		return true
	}
	return false
}
