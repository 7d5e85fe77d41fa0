package orchestrators

import (
	"context"
	"log/slog"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/event"
)

// SaveEventInput carries input for the save event orchestrator.
type SaveEventInput struct {
	EventID string // empty for create, set for update
	Form    event.Form
}

// SaveEventResult carries the saved event.
type SaveEventResult struct {
	Event event.Event
}

// SaveEventDeps holds dependencies for the event orchestrators.
type SaveEventDeps struct {
	Backend Backend
}

// ExecuteSaveEvent creates or updates an event.
// PRE: Form holds submitted values
// POST: on local validation failure no backend call is made
func ExecuteSaveEvent(ctx context.Context, input SaveEventInput, deps SaveEventDeps) (SaveEventResult, fielderr.Errors, error) {
	var saved event.Event
	errs, err := submit(&input.Form, func() error {
		if input.EventID == "" {
			return deps.Backend.Post(ctx, api.PathEvents, &input.Form, &saved)
		}
		return deps.Backend.Put(ctx, api.Detail(api.PathEvents, input.EventID), &input.Form, &saved)
	})
	if errs != nil || err != nil {
		return SaveEventResult{}, errs, err
	}

	slog.Info("event_saved", "event_id", saved.ID, "created", input.EventID == "")
	return SaveEventResult{Event: saved}, nil, nil
}

// DeleteEventInput carries input for the delete event orchestrator.
type DeleteEventInput struct {
	EventID string
}

// ExecuteDeleteEvent removes an event.
// PRE: the caller has shown a confirmation screen
func ExecuteDeleteEvent(ctx context.Context, input DeleteEventInput, deps SaveEventDeps) error {
	if err := deps.Backend.Delete(ctx, api.Detail(api.PathEvents, input.EventID)); err != nil {
		return err
	}
	slog.Info("event_deleted", "event_id", input.EventID)
	return nil
}
