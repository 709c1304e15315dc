package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// DivisionHandler division CRUD
type DivisionHandler struct {
	svc service.DivisionService
}

// NewDivisionHandler creates a DivisionHandler.
func NewDivisionHandler(svc service.DivisionService) *DivisionHandler {
	return &DivisionHandler{svc: svc}
}

// Create
// POST /admin/api/divisions
func (h *DivisionHandler) Create(c *gin.Context) {
	var req dto.DivisionRequest
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
// GET /admin/api/divisions
func (h *DivisionHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /admin/api/divisions/:id
func (h *DivisionHandler) Get(c *gin.Context) {
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
// PUT /admin/api/divisions/:id
func (h *DivisionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DivisionRequest
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
// DELETE /admin/api/divisions/:id
func (h *DivisionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Division deleted successfully")
}
