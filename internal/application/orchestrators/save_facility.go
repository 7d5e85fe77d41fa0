package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/facility"
)

// SaveFacilityInput carries input for the save facility orchestrator.
type SaveFacilityInput struct {
	FacilityID string // empty for create, set for update
	Form       facility.Form
}

// SaveFacilityResult carries the saved facility.
type SaveFacilityResult struct {
	Facility facility.Facility
}

// SaveFacilityDeps holds dependencies for the facility orchestrators.
type SaveFacilityDeps struct {
	Backend Backend
}

// ExecuteSaveFacility creates or updates a facility.
func ExecuteSaveFacility(ctx context.Context, input SaveFacilityInput, deps SaveFacilityDeps) (SaveFacilityResult, fielderr.Errors, error) {
	var saved facility.Facility
	errs, err := submit(&input.Form, func() error {
		if input.FacilityID == "" {
			return deps.Backend.Post(ctx, api.PathFacilities, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathFacilities, input.FacilityID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveFacilityResult{}, errs, err
	}

	slog.Info("facility_saved", "facility_id", saved.ID, "created", input.FacilityID == "")
	return SaveFacilityResult{Facility: saved}, nil, nil
}

// SaveRestaurantItemInput carries input for the menu item orchestrator.
type SaveRestaurantItemInput struct {
	ItemID string // empty for create, set for update
	Form   facility.ItemForm
}

// SaveRestaurantItemResult carries the saved menu item.
type SaveRestaurantItemResult struct {
	Item facility.Item
}

// ExecuteSaveRestaurantItem creates or updates a restaurant menu item.
func ExecuteSaveRestaurantItem(ctx context.Context, input SaveRestaurantItemInput, deps SaveFacilityDeps) (SaveRestaurantItemResult, fielderr.Errors, error) {
	var saved facility.Item
	errs, err := submit(&input.Form, func() error {
		if input.ItemID == "" {
			return deps.Backend.Post(ctx, api.PathRestaurantItems, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathRestaurantItems, input.ItemID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveRestaurantItemResult{}, errs, err
	}

	slog.Info("restaurant_item_saved", "item_id", saved.ID, "created", input.ItemID == "")
	return SaveRestaurantItemResult{Item: saved}, nil, nil
}

// DeleteFacilityInput carries input for the delete facility orchestrator.
type DeleteFacilityInput struct {
	FacilityID string
}

// ExecuteDeleteFacility removes a facility.
// PRE: the caller has shown a confirmation screen
func ExecuteDeleteFacility(ctx context.Context, input DeleteFacilityInput, deps SaveFacilityDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathFacilities, input.FacilityID)); err != nil {
		return err
	}
	slog.Info("facility_deleted", "facility_id", input.FacilityID)
	return nil
}
