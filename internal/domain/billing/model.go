package billing

import (
	"errors"

	"clubdesk/internal/application/fielderr"
)

// Settlement status constants (backend enumeration).
const (
	StatusPaid        = "paid"
	StatusUnpaid      = "unpaid"
	StatusPartialPaid = "partial_paid"
	StatusDue         = "due"
)

// Statuses lists the valid settlement statuses in display order.
var Statuses = []string{StatusPaid, StatusUnpaid, StatusPartialPaid, StatusDue}

// Domain errors
var (
	ErrNotFound = errors.New("record not found")
)

// Invoice is a backend invoice. Amounts stay decimal strings in
// transport; see money.go for display formatting.
type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	MemberID      string `json:"member"`
	MemberName    string `json:"member_name"`
	Amount        string `json:"total_amount"`
	PaidAmount    string `json:"paid_amount"`
	DueAmount     string `json:"due_amount"`
	Status        string `json:"status"`
	InvoiceType   string `json:"invoice_type"`
	IssuedAt      string `json:"issue_date"`
}

// IsSettled returns true when nothing remains due on the invoice.
// INVARIANT: Invoice fields are not mutated
func (i *Invoice) IsSettled() bool {
	return i.Status == StatusPaid
}

// Payment is a backend payment record.
type Payment struct {
	ID            string `json:"id"`
	MemberID      string `json:"member"`
	MemberName    string `json:"member_name"`
	InvoiceID     string `json:"invoice"`
	InvoiceNumber string `json:"invoice_number"`
	Amount        string `json:"amount"`
	Method        string `json:"payment_method"`
	Status        string `json:"status"`
	PaidAt        string `json:"payment_date"`
	Notes         string `json:"notes"`
}

// Sale is a backend restaurant/shop sale record.
type Sale struct {
	ID         string `json:"id"`
	MemberID   string `json:"member"`
	MemberName string `json:"member_name"`
	Restaurant string `json:"restaurant_name"`
	Amount     string `json:"total_amount"`
	Status     string `json:"status"`
	SoldAt     string `json:"sale_date"`
	Lines      []SaleLine `json:"items"`
}

// SaleLine is one sold item on a sale.
type SaleLine struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// Income is a backend income record.
type Income struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	ReceivedAt string `json:"received_date"`
}

// Transaction is a backend ledger transaction.
type Transaction struct {
	ID            string `json:"id"`
	MemberID      string `json:"member"`
	MemberName    string `json:"member_name"`
	Amount        string `json:"amount"`
	Kind          string `json:"transaction_type"`
	Status        string `json:"status"`
	OccurredAt    string `json:"transaction_date"`
	PaymentMethod string `json:"payment_method"`
}

// ValidStatus reports whether s is one of the settlement statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentForm carries a submitted manual payment.
type PaymentForm struct {
	MemberID  string `json:"member"`
	InvoiceID string `json:"invoice"`
	Amount    string `json:"amount"`
	Method    string `json:"payment_method"`
	Notes     string `json:"notes"`
}

// Validate runs the local payment form rules.
// PRE: PaymentForm holds submitted values
// POST: returns per-field messages; empty when the form may be submitted
// INVARIANT: Amount is a positive decimal string, never parsed to float
func (f *PaymentForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if f.MemberID == "" {
		errs.Add("member", "required")
	}
	if f.InvoiceID == "" {
		errs.Add("invoice", "required")
	}
	if f.Amount == "" {
		errs.Add("amount", "required")
	} else if err := ValidateAmount(f.Amount); err != nil {
		errs.Add("amount", err.Error())
	}
	if f.Method == "" {
		errs.Add("payment_method", "required")
	}
	return errs
}

// IncomeForm carries a submitted income record.
type IncomeForm struct {
	Source string `json:"source"`
	Amount string `json:"amount"`
	Status string `json:"status"`
}

// Validate runs the local income form rules.
func (f *IncomeForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if f.Source == "" {
		errs.Add("source", "required")
	}
	if f.Amount == "" {
		errs.Add("amount", "required")
	} else if err := ValidateAmount(f.Amount); err != nil {
		errs.Add("amount", err.Error())
	}
	if f.Status != "" && !ValidStatus(f.Status) {
		errs.Add("status", "must be paid, unpaid, partial_paid or due")
	}
	return errs
}
