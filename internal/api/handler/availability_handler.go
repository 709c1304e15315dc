package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// AvailabilityHandler the authenticated teacher's own availability windows.
type AvailabilityHandler struct {
	svc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// Create
// POST /api/teachers/availability
func (h *AvailabilityHandler) Create(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), teacherID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, item)
}

// List
// GET /api/teachers/availability?day_of_week=
func (h *AvailabilityHandler) List(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	var q dto.AvailabilityListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	items, err := h.svc.List(c.Request.Context(), teacherID, model.DayOfWeek(q.DayOfWeek))
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /api/teachers/availability/:id
func (h *AvailabilityHandler) Get(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), teacherID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, item)
}

// Update
// PUT /api/teachers/availability/:id
func (h *AvailabilityHandler) Update(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := h.svc.Update(c.Request.Context(), teacherID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, item)
}

// Delete
// DELETE /api/teachers/availability/:id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), teacherID, id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Availability deleted successfully")
}

// Check whether the caller is available for a slot
// GET /api/teachers/availability/check?day_of_week=&time_slot_id=
func (h *AvailabilityHandler) Check(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	var q dto.AvailabilityCheckQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	available, err := h.svc.IsTeacherAvailable(c.Request.Context(), teacherID, model.DayOfWeek(q.DayOfWeek), q.TimeSlotID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, gin.H{"available": available})
}
