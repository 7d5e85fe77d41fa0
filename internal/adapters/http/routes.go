package web

import (
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
)

// registerRoutes wires every screen and action. Everything except the
// login and password reset flows sits behind RequireAuth.
func registerRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("GET /login", handleLoginPage)
	mux.HandleFunc("POST /login", handleLogin)
	mux.HandleFunc("POST /logout", handleLogout)

	// Password reset wizard
	mux.HandleFunc("GET /password/forgot", handleResetEmailPage)
	mux.HandleFunc("POST /password/forgot", handleResetEmail)
	mux.HandleFunc("GET /password/verify", handleResetOtpPage)
	mux.HandleFunc("POST /password/verify", handleResetOtp)
	mux.HandleFunc("GET /password/reset", handleResetPasswordPage)
	mux.HandleFunc("POST /password/reset", handleResetPassword)
	mux.HandleFunc("POST /password/abandon", handleResetAbandon)

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	// Dashboard
	mux.Handle("GET /{$}", authed(handleDashboard))

	// Members
	mux.Handle("GET /members", authed(handleMemberList))
	mux.Handle("GET /members/new", authed(handleMemberNew))
	mux.Handle("POST /members", authed(handleMemberSave))
	mux.Handle("GET /members/{id}", authed(handleMemberDetail))
	mux.Handle("GET /members/{id}/edit", authed(handleMemberEdit))
	mux.Handle("POST /members/{id}", authed(handleMemberSave))
	mux.Handle("GET /members/{id}/delete", authed(handleMemberDeleteConfirm))
	mux.Handle("POST /members/{id}/delete", authed(handleMemberDelete))

	// Events
	mux.Handle("GET /events", authed(handleEventList))
	mux.Handle("GET /events/new", authed(handleEventNew))
	mux.Handle("POST /events", authed(handleEventSave))
	mux.Handle("GET /events/{id}", authed(handleEventDetail))
	mux.Handle("GET /events/{id}/edit", authed(handleEventEdit))
	mux.Handle("POST /events/{id}", authed(handleEventSave))
	mux.Handle("GET /events/{id}/delete", authed(handleEventDeleteConfirm))
	mux.Handle("POST /events/{id}/delete", authed(handleEventDelete))

	// Billing
	mux.Handle("GET /invoices", authed(handleInvoiceList))
	mux.Handle("GET /invoices/{id}", authed(handleInvoiceDetail))
	mux.Handle("GET /payments", authed(handlePaymentList))
	mux.Handle("GET /payments/new", authed(handlePaymentNew))
	mux.Handle("POST /payments", authed(handlePaymentCreate))
	mux.Handle("GET /payments/{id}/receipt", authed(handlePaymentReceipt))
	mux.Handle("POST /payments/{id}/email-receipt", authed(handlePaymentEmailReceipt))
	mux.Handle("GET /sales", authed(handleSaleList))
	mux.Handle("GET /sales/{id}", authed(handleSaleDetail))
	mux.Handle("GET /incomes", authed(handleIncomeList))
	mux.Handle("GET /incomes/new", authed(handleIncomeNew))
	mux.Handle("POST /incomes", authed(handleIncomeSave))
	mux.Handle("GET /incomes/{id}/edit", authed(handleIncomeEdit))
	mux.Handle("POST /incomes/{id}", authed(handleIncomeSave))
	mux.Handle("GET /incomes/{id}/delete", authed(handleIncomeDeleteConfirm))
	mux.Handle("POST /incomes/{id}/delete", authed(handleIncomeDelete))
	mux.Handle("GET /transactions", authed(handleTransactionList))

	// Promo codes
	mux.Handle("GET /promo-codes", authed(handlePromoList))
	mux.Handle("GET /promo-codes/new", authed(handlePromoNew))
	mux.Handle("POST /promo-codes", authed(handlePromoSave))
	mux.Handle("GET /promo-codes/{id}/edit", authed(handlePromoEdit))
	mux.Handle("POST /promo-codes/{id}", authed(handlePromoSave))
	mux.Handle("GET /promo-codes/{id}/delete", authed(handlePromoDeleteConfirm))
	mux.Handle("POST /promo-codes/{id}/delete", authed(handlePromoDelete))

	// Groups and permissions
	mux.Handle("GET /groups", authed(handleGroupList))
	mux.Handle("GET /groups/new", authed(handleGroupNew))
	mux.Handle("POST /groups", authed(handleGroupSave))
	mux.Handle("GET /groups/{id}", authed(handleGroupDetail))
	mux.Handle("GET /groups/{id}/edit", authed(handleGroupEdit))
	mux.Handle("POST /groups/{id}", authed(handleGroupSave))
	mux.Handle("GET /groups/{id}/delete", authed(handleGroupDeleteConfirm))
	mux.Handle("POST /groups/{id}/delete", authed(handleGroupDelete))
	mux.Handle("POST /groups/{id}/users", authed(handleGroupAddUser))
	mux.Handle("POST /groups/{id}/users/{userID}/remove", authed(handleGroupRemoveUser))
	mux.Handle("POST /groups/{id}/permissions", authed(handleGroupAddPermission))
	mux.Handle("POST /groups/{id}/permissions/{permID}/remove", authed(handleGroupRemovePermission))

	// Bulk email
	mux.Handle("GET /mail/configs", authed(handleMailConfigList))
	mux.Handle("GET /mail/configs/new", authed(handleMailConfigNew))
	mux.Handle("POST /mail/configs", authed(handleMailConfigSave))
	mux.Handle("GET /mail/configs/{id}/edit", authed(handleMailConfigEdit))
	mux.Handle("POST /mail/configs/{id}", authed(handleMailConfigSave))
	mux.Handle("GET /mail/configs/{id}/delete", authed(handleMailConfigDeleteConfirm))
	mux.Handle("POST /mail/configs/{id}/delete", authed(handleMailConfigDelete))
	mux.Handle("GET /mail/campaigns", authed(handleCampaignList))
	mux.Handle("GET /mail/campaigns/new", authed(handleCampaignNew))
	mux.Handle("POST /mail/campaigns", authed(handleCampaignSend))

	// Facilities
	mux.Handle("GET /facilities", authed(handleFacilityList))
	mux.Handle("GET /facilities/new", authed(handleFacilityNew))
	mux.Handle("POST /facilities", authed(handleFacilitySave))
	mux.Handle("GET /facilities/{id}/edit", authed(handleFacilityEdit))
	mux.Handle("POST /facilities/{id}", authed(handleFacilitySave))
	mux.Handle("GET /facilities/{id}/delete", authed(handleFacilityDeleteConfirm))
	mux.Handle("POST /facilities/{id}/delete", authed(handleFacilityDelete))
	mux.Handle("GET /restaurants", authed(handleRestaurantList))
	mux.Handle("GET /restaurants/items/new", authed(handleMenuItemNew))
	mux.Handle("POST /restaurants/items", authed(handleMenuItemSave))
	mux.Handle("POST /restaurants/items/{id}", authed(handleMenuItemSave))

	// Admin
	mux.Handle("GET /admin/perf", authed(handleAdminPerf))
}
