package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/service"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/export"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// ExportHandler streams maintenance reports as downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func formatOf(c *gin.Context) export.Format {
	if c.DefaultQuery("format", "csv") == "pdf" {
		return export.FormatPDF
	}
	return export.FormatCSV
}

// Maintenance godoc
// @Summary Download the caller's maintenance report
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/maintenance [get]
func (h *ExportHandler) Maintenance(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	file, err := h.exports.MaintenanceReport(c.Request.Context(), sess, formatOf(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(200, file.ContentType, file.Payload)
}

// Schedule godoc
// @Summary Download the scheduled-maintenance report
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/scheduled-maintenance [get]
func (h *ExportHandler) Schedule(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	file, err := h.exports.ScheduleReport(c.Request.Context(), sess, formatOf(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(200, file.ContentType, file.Payload)
}
