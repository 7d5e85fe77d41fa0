package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/promocode"
)

// SavePromoCodeInput carries input for the save promo code orchestrator.
type SavePromoCodeInput struct {
	PromoID string // empty for create, set for update
	Form    promocode.Form
}

// SavePromoCodeResult carries the saved promo code.
type SavePromoCodeResult struct {
	PromoCode promocode.PromoCode
}

// SavePromoCodeDeps holds dependencies for the promo code orchestrators.
type SavePromoCodeDeps struct {
	Backend Backend
}

// ExecuteSavePromoCode creates or updates a promo code.
// PRE: Form holds submitted values
// POST: a form carrying both percentage and amount never reaches the
// backend; both fields come back flagged
func ExecuteSavePromoCode(ctx context.Context, input SavePromoCodeInput, deps SavePromoCodeDeps) (SavePromoCodeResult, fielderr.Errors, error) {
	var saved promocode.PromoCode
	errs, err := submit(&input.Form, func() error {
		if input.PromoID == "" {
			return deps.Backend.Post(ctx, api.PathPromoCodes, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathPromoCodes, input.PromoID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SavePromoCodeResult{}, errs, err
	}

	slog.Info("promo_code_saved", "promo_id", saved.ID, "created", input.PromoID == "")
	return SavePromoCodeResult{PromoCode: saved}, nil, nil
}

// DeletePromoCodeInput carries input for the delete promo code orchestrator.
type DeletePromoCodeInput struct {
	PromoID string
}

// ExecuteDeletePromoCode removes a promo code.
// PRE: the caller has shown a confirmation screen
func ExecuteDeletePromoCode(ctx context.Context, input DeletePromoCodeInput, deps SavePromoCodeDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathPromoCodes, input.PromoID)); err != nil {
		return err
	}
	slog.Info("promo_code_deleted", "promo_id", input.PromoID)
	return nil
}
