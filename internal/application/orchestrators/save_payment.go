package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/billing"
)

// SavePaymentInput carries input for the record payment orchestrator.
type SavePaymentInput struct {
	Form billing.PaymentForm
}

// SavePaymentResult carries the recorded payment.
type SavePaymentResult struct {
	Payment billing.Payment
}

// SavePaymentDeps holds dependencies for the billing orchestrators.
type SavePaymentDeps struct {
	Backend Backend
}

// ExecuteSavePayment records a manual payment against an invoice.
// PRE: Form holds submitted values
// POST: on local validation failure no backend call is made; the
// backend owns the settlement math and remaining-due checks
func ExecuteSavePayment(ctx context.Context, input SavePaymentInput, deps SavePaymentDeps) (SavePaymentResult, fielderr.Errors, error) {
	var saved billing.Payment
	errs, err := submit(&input.Form, func() error {
		return deps.Backend.Post(ctx, api.PathPayments, &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SavePaymentResult{}, errs, err
	}

	slog.Info("payment_recorded", "payment_id", saved.ID, "invoice_id", input.Form.InvoiceID, "amount", input.Form.Amount)
	return SavePaymentResult{Payment: saved}, nil, nil
}

// SaveIncomeInput carries input for the record income orchestrator.
type SaveIncomeInput struct {
	IncomeID string // empty for create, set for update
	Form     billing.IncomeForm
}

// SaveIncomeResult carries the saved income record.
type SaveIncomeResult struct {
	Income billing.Income
}

// ExecuteSaveIncome creates or updates an income record.
func ExecuteSaveIncome(ctx context.Context, input SaveIncomeInput, deps SavePaymentDeps) (SaveIncomeResult, fielderr.Errors, error) {
	var saved billing.Income
	errs, err := submit(&input.Form, func() error {
		if input.IncomeID == "" {
			return deps.Backend.Post(ctx, api.PathIncomes, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathIncomes, input.IncomeID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveIncomeResult{}, errs, err
	}

	slog.Info("income_saved", "income_id", saved.ID, "created", input.IncomeID == "")
	return SaveIncomeResult{Income: saved}, nil, nil
}

// DeleteIncomeInput carries input for the delete income orchestrator.
type DeleteIncomeInput struct {
	IncomeID string
}

// ExecuteDeleteIncome removes an income record.
// PRE: the caller has shown a confirmation screen
func ExecuteDeleteIncome(ctx context.Context, input DeleteIncomeInput, deps SavePaymentDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathIncomes, input.IncomeID)); err != nil {
		return err
	}
	slog.Info("income_deleted", "income_id", input.IncomeID)
	return nil
}
