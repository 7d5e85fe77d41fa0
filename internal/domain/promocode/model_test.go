package promocode_test

import (
	"testing"

	"clubdesk/internal/domain/promocode"
)

// TestFormValidation_MutualExclusion tests the percentage XOR amount rule.
func TestFormValidation_MutualExclusion(t *testing.T) {
	// Both set: both fields flagged, network call must be blocked
	both := promocode.Form{Code: "SUMMER26", Percentage: "10", Amount: "5"}
	errs := both.Validate()
	if errs.First("percentage") != "can't present together" {
		t.Errorf("percentage error = %q, want \"can't present together\"", errs.First("percentage"))
	}
	if errs.First("amount") != "can't present together" {
		t.Errorf("amount error = %q, want \"can't present together\"", errs.First("amount"))
	}

	// Neither set: non-field notice
	neither := promocode.Form{Code: "SUMMER26"}
	errs = neither.Validate()
	if len(errs.NonField()) != 1 {
		t.Errorf("expected one non-field error, got %v", errs)
	}
}

// TestFormValidation tests the remaining local rules.
func TestFormValidation(t *testing.T) {
	tests := []struct {
		name      string
		form      promocode.Form
		wantField string
	}{
		{
			name:      "valid with percentage",
			form:      promocode.Form{Code: "SUMMER26", Percentage: "15", StartDate: "2026-06-01", EndDate: "2026-08-31", UsageLimit: "100"},
			wantField: "",
		},
		{
			name:      "valid with amount",
			form:      promocode.Form{Code: "FLAT50", Amount: "50.00"},
			wantField: "",
		},
		{
			name:      "missing code",
			form:      promocode.Form{Percentage: "10"},
			wantField: "promo_code",
		},
		{
			name:      "percentage above 100",
			form:      promocode.Form{Code: "X", Percentage: "150"},
			wantField: "percentage",
		},
		{
			name:      "negative amount",
			form:      promocode.Form{Code: "X", Amount: "-5"},
			wantField: "amount",
		},
		{
			name:      "end before start",
			form:      promocode.Form{Code: "X", Percentage: "10", StartDate: "2026-08-31", EndDate: "2026-06-01"},
			wantField: "end_date",
		},
		{
			name:      "zero usage limit",
			form:      promocode.Form{Code: "X", Percentage: "10", UsageLimit: "0"},
			wantField: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				if !errs.Empty() {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if !errs.Has(tt.wantField) {
				t.Errorf("Validate() missing error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

// TestDiscountLabel tests discount display.
func TestDiscountLabel(t *testing.T) {
	pct := promocode.PromoCode{Percentage: "15"}
	if got := pct.DiscountLabel(); got != "15%" {
		t.Errorf("DiscountLabel() = %q, want 15%%", got)
	}
	amt := promocode.PromoCode{Amount: "50"}
	if got := amt.DiscountLabel(); got != "50.00" {
		t.Errorf("DiscountLabel() = %q, want 50.00", got)
	}
	none := promocode.PromoCode{}
	if got := none.DiscountLabel(); got != "—" {
		t.Errorf("DiscountLabel() = %q, want —", got)
	}
}
