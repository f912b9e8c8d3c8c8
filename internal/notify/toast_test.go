package notify

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

type countingCounter struct {
	levels []string
}

func (c *countingCounter) CountToast(level string) { c.levels = append(c.levels, level) }

func TestMutationOutcomeSuccessCopy(t *testing.T) {
	n := New(zap.NewNop(), nil)
	res := upstream.Success(json.RawMessage(`{}`))

	toast := n.MutationOutcome(res, "creó", "el cliente Ana", "ana@example.com")
	require.Equal(t, LevelSuccess, toast.Level)
	require.Equal(t, "Se creó el cliente Ana correctamente", toast.Title)
	require.Equal(t, "ana@example.com", toast.Description)
}

func TestMutationOutcomeFailureUsesInfinitive(t *testing.T) {
	n := New(zap.NewNop(), nil)
	res := upstream.Failure(errors.New("boom"))
	res.Message = ""

	toast := n.MutationOutcome(res, "cambió", "el estado de el cliente", "")
	require.Equal(t, LevelError, toast.Level)
	require.Equal(t, "No se pudo cambiar el estado de el cliente", toast.Title)
	require.Equal(t, MsgGenericFailure, toast.Description)
}

func TestMutationOutcomeFailureKeepsBackendMessage(t *testing.T) {
	n := New(zap.NewNop(), nil)
	res := upstream.Failure(errors.New("boom"))
	res.Message = "El correo ya existe."

	toast := n.MutationOutcome(res, "creó", "el cliente", "")
	require.Equal(t, "El correo ya existe.", toast.Description)
}

func TestMutationOutcomeSessionExpiredOverridesMessage(t *testing.T) {
	n := New(zap.NewNop(), nil)
	res := upstream.Failure(appErrors.ErrSessionExpired)
	res.Message = "whatever"

	toast := n.MutationOutcome(res, "creó", "el cliente", "")
	require.Equal(t, MsgSessionExpired, toast.Description)
}

func TestCounterReceivesEveryEmission(t *testing.T) {
	counter := &countingCounter{}
	n := New(zap.NewNop(), counter)

	n.Warning(MsgDuplicateEmail)
	n.Error("")
	n.MutationOutcome(upstream.Success(nil), "aprobó", "el servicio", "")

	require.Equal(t, []string{"warning", "error", "success"}, counter.levels)
}

func TestErrorFallsBackToGenericCopy(t *testing.T) {
	n := New(zap.NewNop(), nil)
	require.Equal(t, MsgGenericFailure, n.Error("").Title)
}
