package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary amounts travel as decimal strings end-to-end; decimals are
// parsed for display and arithmetic only, and the transport value is
// never rewritten from a float.

// Amount validation errors.
var (
	ErrNotDecimal = errors.New("must be a decimal number")
	ErrNegative   = errors.New("must not be negative")
)

// ValidateAmount checks that s is a non-negative decimal string.
// PRE: none
// POST: returns nil when s is usable as a transport amount
func ValidateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ErrNotDecimal
	}
	if d.IsNegative() {
		return ErrNegative
	}
	return nil
}

// FormatAmount renders a transport amount with two decimal places for
// display. Unparsable input is returned unchanged so a backend quirk
// never blanks a screen.
// PRE: none
// POST: the returned string is for display only
func FormatAmount(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// SumAmounts adds transport amounts exactly and returns the total as a
// two-decimal display string.
// PRE: none
// POST: returns the exact sum; unparsable inputs are reported
func SumAmounts(amounts ...string) (string, error) {
	total := decimal.Zero
	for _, s := range amounts {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return "", fmt.Errorf("sum amounts: %q: %w", s, ErrNotDecimal)
		}
		total = total.Add(d)
	}
	return total.StringFixed(2), nil
}

// AmountLessThan compares two transport amounts exactly.
// PRE: both strings are valid decimal strings
// POST: returns a < b; false with an error otherwise
func AmountLessThan(a, b string) (bool, error) {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return false, fmt.Errorf("compare amounts: %q: %w", a, ErrNotDecimal)
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return false, fmt.Errorf("compare amounts: %q: %w", b, ErrNotDecimal)
	}
	return da.LessThan(db), nil
}
