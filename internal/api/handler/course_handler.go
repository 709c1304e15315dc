package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// CourseHandler course CRUD
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// Create
// POST /admin/api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseRequest
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

// List optionally filtered by department
// GET /admin/api/courses?department_id=
func (h *CourseHandler) List(c *gin.Context) {
	var q dto.CourseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	items, err := h.svc.List(c.Request.Context(), q.DepartmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, items)
}

// Get
// GET /admin/api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
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
// PUT /admin/api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
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
// DELETE /admin/api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Course deleted successfully")
}
