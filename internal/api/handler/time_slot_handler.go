package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// TimeSlotHandler time slot CRUD
type TimeSlotHandler struct {
	svc service.TimeSlotService
}

// NewTimeSlotHandler creates a TimeSlotHandler.
func NewTimeSlotHandler(svc service.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{svc: svc}
}

// Create
// POST /admin/api/time-slots
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req dto.TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, item)
}

// List, only active slots unless active_only=false
// GET /admin/api/time-slots?active_only=
func (h *TimeSlotHandler) List(c *gin.Context) {
	var q dto.TimeSlotListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	activeOnly := q.ActiveOnly == nil || *q.ActiveOnly

	items, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /admin/api/time-slots/:id
func (h *TimeSlotHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, item)
}

// Update full replace
// PUT /admin/api/time-slots/:id
func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, item)
}

// Delete
// DELETE /admin/api/time-slots/:id
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "TimeSlot deleted successfully")
}
