package review

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// Outcome is what the review screens consume after a transition: the
// tagged result, the single toast, and whether to refetch the listing.
type Outcome struct {
	Result  *upstream.Result `json:"result"`
	Toast   notify.Toast     `json:"toast"`
	Refresh bool             `json:"refresh"`
}

type client interface {
	UpdateMaintenanceStatus(ctx context.Context, sess *upstream.Session, id string) *upstream.Result
	MarkMaintenanceInProgress(ctx context.Context, sess *upstream.Session, id string) *upstream.Result
	SubmitMaintenanceForReview(ctx context.Context, sess *upstream.Session, req dto.SubmitForReviewRequest) *upstream.Result
	ApproveMaintenance(ctx context.Context, sess *upstream.Session, id string) *upstream.Result
	RejectMaintenance(ctx context.Context, sess *upstream.Session, id string, req dto.RejectMaintenanceRequest) *upstream.Result
}

// Service drives the maintenance review lifecycle against the upstream.
type Service struct {
	client   client
	notifier *notify.Notifier
	logger   *zap.Logger
}

// NewService constructs the review service.
func NewService(c client, notifier *notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: c, notifier: notifier, logger: logger}
}

// RefreshStatus asks the backend to recompute and persist the record's
// status after external changes. The gateway never derives a status
// locally; screens call this and trust the mutation response.
func (s *Service) RefreshStatus(ctx context.Context, sess *upstream.Session, id, code string) (*Outcome, error) {
	if !validation.IsValidUUID(id) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid maintenance id")
	}
	result := s.client.UpdateMaintenanceStatus(ctx, sess, id)
	out := s.outcome(result, "actualizó", code)
	if result.OK() {
		out.Toast.Title = "Se actualizó el estado del servicio correctamente"
	}
	return out, nil
}

// MarkInProgress moves an existing record into IN_PROGRESS upstream.
func (s *Service) MarkInProgress(ctx context.Context, sess *upstream.Session, id, code string) (*Outcome, error) {
	if !validation.IsValidUUID(id) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid maintenance id")
	}
	result := s.client.MarkMaintenanceInProgress(ctx, sess, id)
	return s.outcome(result, "inició", code), nil
}

// SubmitForReview hands the finished work to the reviewers; the backend
// sets the record PENDING.
func (s *Service) SubmitForReview(ctx context.Context, sess *upstream.Session, id, code string) (*Outcome, error) {
	if !validation.IsValidUUID(id) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid maintenance id")
	}
	result := s.client.SubmitMaintenanceForReview(ctx, sess, dto.SubmitForReviewRequest{MaintenanceID: id})
	out := s.outcome(result, "envió", code)
	if result.OK() {
		out.Toast.Title = "Se envió el servicio a revisión correctamente"
	}
	return out, nil
}

// Approve accepts a PENDING record, closing the cycle.
func (s *Service) Approve(ctx context.Context, sess *upstream.Session, id, code string, status string) (*Outcome, error) {
	if !validation.IsValidUUID(id) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid maintenance id")
	}
	if err := Allowed(statusOf(status), TransitionApprove); err != nil {
		return nil, err
	}
	result := s.client.ApproveMaintenance(ctx, sess, id)
	return s.outcome(result, "aprobó", code), nil
}

// Reject sends a PENDING record back with a mandatory reason; the backend
// sets REJECTED and the responsible party redoes the work. The reason is
// re-validated here even though the reason modal already disables its
// submit while empty.
func (s *Service) Reject(ctx context.Context, sess *upstream.Session, id, code, reason string, status string) (*Outcome, error) {
	if !validation.IsValidUUID(id) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid maintenance id")
	}
	if err := Allowed(statusOf(status), TransitionReject); err != nil {
		return nil, err
	}
	if msg := validation.Required(reason); msg != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, msg)
	}
	result := s.client.RejectMaintenance(ctx, sess, id, dto.RejectMaintenanceRequest{RejectionReason: reason})
	return s.outcome(result, "rechazó", code), nil
}

func (s *Service) outcome(result *upstream.Result, verb, code string) *Outcome {
	detail := ""
	if code != "" {
		detail = fmt.Sprintf("con código: %s", code)
	}
	toast := s.notifier.MutationOutcome(result, verb, "el servicio", detail)
	return &Outcome{Result: result, Toast: toast, Refresh: result.OK()}
}

func statusOf(raw string) models.MaintenanceStatus {
	return models.MaintenanceStatus(raw)
}
