package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// AcademicYearHandler academic year CRUD and the current year
type AcademicYearHandler struct {
	svc service.AcademicYearService
}

// NewAcademicYearHandler creates a AcademicYearHandler.
func NewAcademicYearHandler(svc service.AcademicYearService) *AcademicYearHandler {
	return &AcademicYearHandler{svc: svc}
}

// Create
// POST /admin/api/academic-years
func (h *AcademicYearHandler) Create(c *gin.Context) {
	var req dto.AcademicYearRequest
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
// GET /admin/api/academic-years
func (h *AcademicYearHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /admin/api/academic-years/:id
func (h *AcademicYearHandler) Get(c *gin.Context) {
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
// PUT /admin/api/academic-years/:id
func (h *AcademicYearHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AcademicYearRequest
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
// DELETE /admin/api/academic-years/:id
func (h *AcademicYearHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Academic year deleted successfully")
}

// Current the academic year flagged as current
// GET /api/academic-years/current
func (h *AcademicYearHandler) Current(c *gin.Context) {
	item, err := h.svc.GetCurrent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, item)
}
