package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/service"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// ReferenceHandler serves the slow-moving reference lists that populate
// form selects: units of measurement and warehouse types.
type ReferenceHandler struct {
	client   *upstream.Client
	refCache *service.RefListCache
}

// NewReferenceHandler constructs ReferenceHandler.
func NewReferenceHandler(client *upstream.Client, refCache *service.RefListCache) *ReferenceHandler {
	return &ReferenceHandler{client: client, refCache: refCache}
}

// Units godoc
// @Summary List units of measurement
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /units-of-measurement [get]
func (h *ReferenceHandler) Units(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	if cached, hit := h.refCache.Get(c.Request.Context(), "units-of-measurement"); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}
	units, err := h.client.ListUnits(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.refCache.Set(c.Request.Context(), "units-of-measurement", units)
	response.JSON(c, http.StatusOK, units)
}

// WarehouseTypes godoc
// @Summary List warehouse types
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /warehouse-types [get]
func (h *ReferenceHandler) WarehouseTypes(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	if cached, hit := h.refCache.Get(c.Request.Context(), "warehouse-types"); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}
	types, err := h.client.ListWarehouseTypes(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.refCache.Set(c.Request.Context(), "warehouse-types", types)
	response.JSON(c, http.StatusOK, types)
}
