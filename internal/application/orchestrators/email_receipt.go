package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/adapters/email"
	"clubdesk/internal/domain/billing"
)

// EmailReceiptInput carries input for the receipt email orchestrator.
type EmailReceiptInput struct {
	PaymentID string
	// ToOverride replaces the member's address when staff want the
	// copy sent elsewhere.
	ToOverride string
}

// EmailReceiptResult carries the provider message id.
type EmailReceiptResult struct {
	MessageID string
	SentTo    string
}

// EmailReceiptDeps holds dependencies for EmailReceipt.
type EmailReceiptDeps struct {
	Backend Backend
	Sender  email.Sender
}

var ErrNoRecipient = errors.New("no recipient address for receipt")

// paymentWithMember is the receipt payload: the payment plus the
// member's address resolved by the backend.
type paymentWithMember struct {
	billing.Payment
	MemberEmail string `json:"member_email"`
}

// ExecuteEmailReceipt sends a copy of a payment receipt by email.
// PRE: the payment exists upstream
// POST: exactly one email handed to the provider on success
func ExecuteEmailReceipt(ctx context.Context, input EmailReceiptInput, deps EmailReceiptDeps) (EmailReceiptResult, error) {
	var p paymentWithMember
	if _, err := deps.Backend.Get(ctx, api.Detail(api.PathPayments, input.PaymentID), nil, &p); err != nil {
		return EmailReceiptResult{}, err
	}

	to := input.ToOverride
	if to == "" {
		to = p.MemberEmail
	}
	if to == "" {
		return EmailReceiptResult{}, ErrNoRecipient
	}

	result, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{to},
		Subject: fmt.Sprintf("Payment receipt %s", p.ID),
		HTML:    receiptHTML(p),
	})
	if err != nil {
		return EmailReceiptResult{}, err
	}

	slog.Info("receipt_emailed", "payment_id", p.ID, "message_id", result.MessageID)
	return EmailReceiptResult{MessageID: result.MessageID, SentTo: to}, nil
}

func receiptHTML(p paymentWithMember) string {
	var b strings.Builder
	b.WriteString("<h2>Payment receipt</h2>")
	row := func(label, value string) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}
	row("Receipt", p.ID)
	row("Member", p.MemberName)
	row("Invoice", p.InvoiceNumber)
	row("Amount", billing.FormatAmount(p.Amount))
	row("Method", p.Method)
	row("Date", p.PaidAt)
	return b.String()
}
