package review

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

func TestAllowedApproveRequiresPending(t *testing.T) {
	require.NoError(t, Allowed(models.StatusPending, TransitionApprove))

	for _, status := range []models.MaintenanceStatus{models.StatusInProgress, models.StatusApproved, models.StatusRejected} {
		err := Allowed(status, TransitionApprove)
		require.Error(t, err, status)
		require.Equal(t, appErrors.ErrTransition.Code, appErrors.FromError(err).Code)
	}
}

func TestAllowedRejectRequiresPending(t *testing.T) {
	require.NoError(t, Allowed(models.StatusPending, TransitionReject))
	require.Error(t, Allowed(models.StatusApproved, TransitionReject))
}

func TestAllowedProgressAndSubmitHaveNoPrecondition(t *testing.T) {
	for _, status := range []models.MaintenanceStatus{models.StatusInProgress, models.StatusPending, models.StatusApproved, models.StatusRejected} {
		require.NoError(t, Allowed(status, TransitionProgress), status)
		require.NoError(t, Allowed(status, TransitionSubmit), status)
	}
}

func TestAllowedUnknownTransition(t *testing.T) {
	require.Error(t, Allowed(models.StatusPending, Transition("DESTROY")))
}
