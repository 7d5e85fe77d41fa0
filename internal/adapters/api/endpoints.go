package api

// Backend endpoint paths. Collection paths take list query parameters
// (page, page_size, search plus entity filters); detail paths append
// the resource ID.
const (
	PathLogin           = "/api/auth/login"
	PathLogout          = "/api/auth/logout"
	PathPasswordForgot  = "/api/auth/password/forgot"
	PathPasswordVerify  = "/api/auth/password/verify-otp"
	PathPasswordReset   = "/api/auth/password/reset"
	PathMembers         = "/api/members"
	PathEvents          = "/api/events"
	PathEventVenues     = "/api/events/venues"
	PathFacilities      = "/api/facilities"
	PathInvoices        = "/api/invoices"
	PathPayments        = "/api/payments"
	PathPaymentOptions  = "/api/payments/options"
	PathSales           = "/api/sales"
	PathRestaurants     = "/api/restaurants"
	PathRestaurantItems = "/api/restaurants/items"
	PathIncomes         = "/api/incomes"
	PathTransactions    = "/api/transactions"
	PathPromoCodes      = "/api/promo-codes"
	PathGroups          = "/api/groups"
	PathPermissions     = "/api/groups/permissions"
	PathMailConfigs     = "/api/mail/configs"
	PathMailCampaigns   = "/api/mail/campaigns"
	PathCategories      = "/api/categories"
	PathPosts           = "/api/posts"
)

// Reference-choice endpoints (see ChoiceCache).
const (
	ChoicesMembershipTypes = "/api/choices/membership-types"
	ChoicesMemberStatuses  = "/api/choices/membership-statuses"
	ChoicesGenders         = "/api/choices/genders"
	ChoicesInstitutes      = "/api/choices/institutes"
)

// Detail returns the detail path for a resource under base.
func Detail(base, id string) string {
	return base + "/" + id
}
