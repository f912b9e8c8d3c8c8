package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/review"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// ReviewHandler drives the maintenance review lifecycle endpoints.
type ReviewHandler struct {
	reviews *review.Service
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(reviews *review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type transitionRequest struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (h *ReviewHandler) bind(c *gin.Context) (transitionRequest, bool) {
	var req transitionRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return req, false
	}
	return req, true
}

// MarkInProgress godoc
// @Summary Move a maintenance record into IN_PROGRESS
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Maintenance identifier"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/in-progress [post]
func (h *ReviewHandler) MarkInProgress(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.reviews.MarkInProgress(c.Request.Context(), sess, c.Param("id"), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// RefreshStatus godoc
// @Summary Ask the backend to recompute a record's status
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Maintenance identifier"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/status [put]
func (h *ReviewHandler) RefreshStatus(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.reviews.RefreshStatus(c.Request.Context(), sess, c.Param("id"), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// SubmitForReview godoc
// @Summary Send finished work to the reviewers
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Maintenance identifier"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/submit-for-review [post]
func (h *ReviewHandler) SubmitForReview(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.reviews.SubmitForReview(c.Request.Context(), sess, c.Param("id"), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Approve godoc
// @Summary Approve a PENDING maintenance record
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Maintenance identifier"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.reviews.Approve(c.Request.Context(), sess, c.Param("id"), req.Code, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Reject godoc
// @Summary Reject a PENDING maintenance record with a mandatory reason
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Maintenance identifier"
// @Param request body transitionRequest true "Rejection reason"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/reject [post]
func (h *ReviewHandler) Reject(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.reviews.Reject(c.Request.Context(), sess, c.Param("id"), req.Code, req.Reason, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}
