package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// ClassRoomHandler classroom CRUD
type ClassRoomHandler struct {
	svc service.ClassRoomService
}

// NewClassRoomHandler creates a ClassRoomHandler.
func NewClassRoomHandler(svc service.ClassRoomService) *ClassRoomHandler {
	return &ClassRoomHandler{svc: svc}
}

// Create
// POST /admin/api/rooms
func (h *ClassRoomHandler) Create(c *gin.Context) {
	var req dto.ClassRoomRequest
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

// List
// GET /admin/api/rooms
func (h *ClassRoomHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /admin/api/rooms/:id
func (h *ClassRoomHandler) Get(c *gin.Context) {
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
// PUT /admin/api/rooms/:id
func (h *ClassRoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ClassRoomRequest
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
// DELETE /admin/api/rooms/:id
func (h *ClassRoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Room deleted successfully")
}
