package upstream

import (
	"context"
	"net/http"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
)

// Maintenance listings are scoped by role on the upstream side; the
// gateway simply forwards the caller's token.

func (c *Client) MyMaintenance(ctx context.Context, sess *Session) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, sess, "/maintenance/my-maintenance", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MaintenanceCreatedByMe(ctx context.Context, sess *Session) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, sess, "/maintenance/created-by-me", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MaintenanceAssignedToMe(ctx context.Context, sess *Session) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, sess, "/maintenance/assigned-to-me", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMaintenance(ctx context.Context, sess *Session, req dto.CreateMaintenanceRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance", req)
}

func (c *Client) UpdateMaintenance(ctx context.Context, sess *Session, id string, req dto.UpdateMaintenanceRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/maintenance/"+id, req)
}

func (c *Client) UpdateMaintenanceStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPut, "/maintenance/update-status/"+id, nil)
}

// Review transitions. Each is its own upstream call; the backend owns the
// resulting status and the gateway never computes one locally.

func (c *Client) MarkMaintenanceInProgress(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance/progress/"+id, nil)
}

func (c *Client) SubmitMaintenanceForReview(ctx context.Context, sess *Session, req dto.SubmitForReviewRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance/submit-for-review", req)
}

func (c *Client) ApproveMaintenance(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance/approved/"+id, nil)
}

func (c *Client) RejectMaintenance(ctx context.Context, sess *Session, id string, req dto.RejectMaintenanceRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance/rejected/"+id, req)
}

// Scheduled maintenance ---------------------------------------------------

func (c *Client) ListScheduledMaintenance(ctx context.Context, sess *Session) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, sess, "/scheduled-maintenance/my-scheduled", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateScheduledMaintenance(ctx context.Context, sess *Session, id string, req dto.UpdateScheduledMaintenanceRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/scheduled-maintenance/"+id, req)
}
