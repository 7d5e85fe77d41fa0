package promocode

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/billing"
)

// Max length constants.
const (
	MaxCodeLength = 30
)

// Domain errors
var (
	ErrNotFound = errors.New("promo code not found")
)

// PromoCode is a backend promo code. The discount is either a
// percentage or a fixed amount, never both.
type PromoCode struct {
	ID         string   `json:"id"`
	Code       string   `json:"promo_code"`
	Percentage string   `json:"percentage"`
	Amount     string   `json:"amount"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	UsageLimit int      `json:"limit"`
	UsedCount  int      `json:"remaining_limit"`
	Categories []string `json:"categories"`
}

// DiscountLabel renders the discount for list screens.
// INVARIANT: PromoCode fields are not mutated
func (p *PromoCode) DiscountLabel() string {
	if p.Percentage != "" {
		return p.Percentage + "%"
	}
	if p.Amount != "" {
		return billing.FormatAmount(p.Amount)
	}
	return "—"
}

// Form carries a submitted promo code.
type Form struct {
	Code       string   `json:"promo_code"`
	Percentage string   `json:"percentage"`
	Amount     string   `json:"amount"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	UsageLimit string   `json:"limit"`
	Categories []string `json:"categories"`
}

// Validate runs the local promo code rules.
// PRE: Form holds submitted values
// POST: returns per-field messages; empty when the form may be submitted
// INVARIANT: percentage and amount are mutually exclusive; end date >=
// start date when both are set
func (f *Form) Validate() fielderr.Errors {
	errs := fielderr.New()
	code := strings.TrimSpace(f.Code)
	if code == "" {
		errs.Add("promo_code", "required")
	}
	if len(code) > MaxCodeLength {
		errs.Add("promo_code", "cannot exceed 30 characters")
	}

	hasPercentage := f.Percentage != ""
	hasAmount := f.Amount != ""
	switch {
	case hasPercentage && hasAmount:
		errs.Add("percentage", "can't present together")
		errs.Add("amount", "can't present together")
	case !hasPercentage && !hasAmount:
		errs.AddNonField("either a percentage or a fixed amount is required")
	case hasPercentage:
		if pct, err := strconv.ParseFloat(f.Percentage, 64); err != nil {
			errs.Add("percentage", "must be a number")
		} else if pct <= 0 || pct > 100 {
			errs.Add("percentage", "must be between 0 and 100")
		}
	case hasAmount:
		if err := billing.ValidateAmount(f.Amount); err != nil {
			errs.Add("amount", err.Error())
		}
	}

	start, startErr := parseDate(f.StartDate)
	if f.StartDate != "" && startErr != nil {
		errs.Add("start_date", "must be a valid date")
	}
	if f.EndDate != "" {
		if end, err := parseDate(f.EndDate); err != nil {
			errs.Add("end_date", "must be a valid date")
		} else if startErr == nil && f.StartDate != "" && end.Before(start) {
			errs.Add("end_date", "must not be before the start date")
		}
	}

	if f.UsageLimit != "" {
		if n, err := strconv.Atoi(f.UsageLimit); err != nil || n < 1 {
			errs.Add("limit", "must be a positive whole number")
		}
	}
	return errs
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
