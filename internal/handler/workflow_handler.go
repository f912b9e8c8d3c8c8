package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/service"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// WorkflowHandler exposes the generic entity endpoints: list, the
// two-stage prepare/commit mutation flow, and the status toggle.
type WorkflowHandler struct {
	registry *service.Registry
	refCache *service.RefListCache
}

// NewWorkflowHandler constructs WorkflowHandler.
func NewWorkflowHandler(registry *service.Registry, refCache *service.RefListCache) *WorkflowHandler {
	return &WorkflowHandler{registry: registry, refCache: refCache}
}

// List godoc
// @Summary List one entity collection
// @Tags Entities
// @Produce json
// @Param entity path string true "Entity route name"
// @Success 200 {object} response.Envelope
// @Router /{entity} [get]
func (h *WorkflowHandler) List(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	entity := c.Param("entity")
	if cached, hit := h.refCache.Get(c.Request.Context(), entity); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}
	data, cacheable, err := h.registry.List(c.Request.Context(), sess, entity)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cacheable {
		h.refCache.Set(c.Request.Context(), entity, data)
	}
	response.JSON(c, http.StatusOK, data)
}

// Prepare godoc
// @Summary Validate a draft and build the confirmation summary
// @Tags Entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity route name"
// @Param request body service.WorkflowRequest true "Draft"
// @Success 200 {object} response.Envelope
// @Router /{entity}/prepare [post]
func (h *WorkflowHandler) Prepare(c *gin.Context) {
	h.prepare(c, c.Param("entity"))
}

// PrepareEntity binds Prepare to a fixed entity. The maintenance review
// routes register an :id child under the static maintenance node, which
// shadows the top-level :entity wildcard for that prefix; the fixed-entity
// routes restore prepare/commit there.
func (h *WorkflowHandler) PrepareEntity(entity string) gin.HandlerFunc {
	return func(c *gin.Context) { h.prepare(c, entity) }
}

func (h *WorkflowHandler) prepare(c *gin.Context, entity string) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req service.WorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	outcome, err := h.registry.Prepare(c.Request.Context(), sess, entity, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Commit godoc
// @Summary Perform the confirmed mutation
// @Tags Entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity route name"
// @Param request body service.WorkflowRequest true "Confirmed draft"
// @Success 200 {object} response.Envelope
// @Router /{entity}/commit [post]
func (h *WorkflowHandler) Commit(c *gin.Context) {
	h.commit(c, c.Param("entity"))
}

// CommitEntity binds Commit to a fixed entity, pairing with PrepareEntity.
func (h *WorkflowHandler) CommitEntity(entity string) gin.HandlerFunc {
	return func(c *gin.Context) { h.commit(c, entity) }
}

func (h *WorkflowHandler) commit(c *gin.Context, entity string) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req service.WorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	outcome, err := h.registry.Commit(c.Request.Context(), sess, entity, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if outcome.Result.OK() {
		h.refCache.Invalidate(c.Request.Context(), entity)
	}
	response.JSON(c, http.StatusOK, outcome)
}

// Toggle godoc
// @Summary Flip one record's enabled/disabled state
// @Tags Entities
// @Produce json
// @Param entity path string true "Entity route name"
// @Param id path string true "Record identifier"
// @Success 200 {object} response.Envelope
// @Router /{entity}/{id}/toggle-status [patch]
func (h *WorkflowHandler) Toggle(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	entity := c.Param("entity")
	outcome, err := h.registry.Toggle(c.Request.Context(), sess, entity, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if outcome.Result.OK() {
		h.refCache.Invalidate(c.Request.Context(), entity)
	}
	response.JSON(c, http.StatusOK, outcome)
}

// CreateEquipmentWithMaintenances godoc
// @Summary Create an equipment record with its scheduled services atomically
// @Tags Entities
// @Accept json
// @Produce json
// @Param request body dto.CreateEquipmentWithMaintenancesRequest true "Equipment and schedules"
// @Success 201 {object} response.Envelope
// @Router /equipment/with-maintenances [post]
func (h *WorkflowHandler) CreateEquipmentWithMaintenances(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	var req dto.CreateEquipmentWithMaintenancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	outcome, err := h.registry.CreateEquipmentWithMaintenances(c.Request.Context(), sess, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := http.StatusOK
	if outcome.Result.OK() {
		status = http.StatusCreated
	}
	response.JSON(c, status, outcome)
}
