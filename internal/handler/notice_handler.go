package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// NoticeHandler serves the caller's notification feed.
type NoticeHandler struct {
	client  *upstream.Client
	enabled bool
}

// NewNoticeHandler constructs NoticeHandler.
func NewNoticeHandler(client *upstream.Client, enabled bool) *NoticeHandler {
	return &NoticeHandler{client: client, enabled: enabled}
}

// Mine godoc
// @Summary List the caller's notifications
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *NoticeHandler) Mine(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "notices are disabled"))
		return
	}
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	notices, err := h.client.MyAllNotices(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices)
}
