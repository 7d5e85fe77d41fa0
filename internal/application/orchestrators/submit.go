package orchestrators

import (
	"clubdesk/internal/adapters/api"
	"clubdesk/internal/application/fielderr"
)

// localCheck is the client-side validation run before any network call.
type localCheck interface {
	Validate() fielderr.Errors
}

// submit runs the two-stage form pipeline shared by every save
// orchestrator: local validation first, then the network call.
// PRE: send performs exactly one backend write
// POST: local failure returns field errors and send is never called;
// a backend rejection has its field errors mapped back the same way
// INVARIANT: a non-empty fielderr.Errors always reaches the caller
// together with a nil error; transport failures come back as error
func submit(form localCheck, send func() error) (fielderr.Errors, error) {
	if errs := form.Validate(); !errs.Empty() {
		return errs, nil
	}

	err := send()
	if err == nil {
		return nil, nil
	}

	// Upstream field rejections become form errors; everything else
	// (timeouts, 5xx, auth) stays an error for the caller to surface.
	if apiErr, ok := api.AsError(err); ok && apiErr.HasFieldErrors() {
		errs := fielderr.New()
		errs.Merge(apiErr.Fields)
		return errs, nil
	}
	return nil, err
}
