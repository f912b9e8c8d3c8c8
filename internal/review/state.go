package review

import (
	"fmt"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// Transition names one review action. Each transition is its own upstream
// call; the backend owns the resulting status.
type Transition string

const (
	TransitionProgress Transition = "PROGRESS"
	TransitionSubmit   Transition = "SUBMIT_FOR_REVIEW"
	TransitionApprove  Transition = "APPROVE"
	TransitionReject   Transition = "REJECT"
)

// Allowed enforces the UI-side preconditions of the review lifecycle:
// approve and reject require a PENDING record. Marking in-progress and
// submitting for review carry no status precondition here (whether the
// work was actually performed is the responsible party's call), so any
// existing record passes.
func Allowed(status models.MaintenanceStatus, t Transition) error {
	switch t {
	case TransitionApprove, TransitionReject:
		if status != models.StatusPending {
			return appErrors.Clone(appErrors.ErrTransition,
				fmt.Sprintf("el servicio debe estar pendiente de revisión, estado actual: %s", status))
		}
	case TransitionProgress, TransitionSubmit:
		// no local precondition
	default:
		return appErrors.Clone(appErrors.ErrTransition, fmt.Sprintf("transición desconocida: %s", t))
	}
	return nil
}
