package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// MaintenanceHandler serves the per-user maintenance listings the review
// screens are built on.
type MaintenanceHandler struct {
	client *upstream.Client
}

// NewMaintenanceHandler constructs MaintenanceHandler.
func NewMaintenanceHandler(client *upstream.Client) *MaintenanceHandler {
	return &MaintenanceHandler{client: client}
}

// Mine godoc
// @Summary List the caller's maintenance records
// @Tags Maintenance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /maintenance [get]
func (h *MaintenanceHandler) Mine(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	records, err := h.client.MyMaintenance(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// CreatedByMe godoc
// @Summary List maintenance records the caller created
// @Tags Maintenance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /maintenance/created-by-me [get]
func (h *MaintenanceHandler) CreatedByMe(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	records, err := h.client.MaintenanceCreatedByMe(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// AssignedToMe godoc
// @Summary List maintenance records assigned to the caller
// @Tags Maintenance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /maintenance/assigned-to-me [get]
func (h *MaintenanceHandler) AssignedToMe(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	records, err := h.client.MaintenanceAssignedToMe(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}
