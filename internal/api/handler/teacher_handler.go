package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// TeacherHandler admin teacher management and self-service profile.
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// ── admin ──

// Create
// POST /admin/api/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, teacher)
}

// List
// GET /admin/api/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teachers)
}

// Get
// GET /admin/api/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Update
// PUT /admin/api/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete
// DELETE /admin/api/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Teacher deleted successfully")
}

// ListPending teachers with a verified email awaiting approval
// GET /admin/api/teachers/pending-approvals
func (h *TeacherHandler) ListPending(c *gin.Context) {
	teachers, err := h.teacherSvc.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teachers)
}

// Approve
// PUT /admin/api/teachers/:id/approve
func (h *TeacherHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.Approve(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Reject with an optional reason
// PUT /admin/api/teachers/:id/reject
func (h *TeacherHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.RejectTeacherRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindFailed(c, err)
			return
		}
	}

	teacher, err := h.teacherSvc.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}

// AssignCourse
// POST /admin/api/courses/:id/teachers/:teacherId
func (h *TeacherHandler) AssignCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	teacherID, ok := pathID(c, "teacherId")
	if !ok {
		return
	}

	if err := h.teacherSvc.AssignCourse(c.Request.Context(), courseID, teacherID); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Teacher assigned to course")
}

// UnassignCourse
// DELETE /admin/api/courses/:id/teachers/:teacherId
func (h *TeacherHandler) UnassignCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	teacherID, ok := pathID(c, "teacherId")
	if !ok {
		return
	}

	if err := h.teacherSvc.UnassignCourse(c.Request.Context(), courseID, teacherID); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Teacher removed from course")
}

// ── self service ──

// GetProfile
// GET /api/teachers/profile
func (h *TeacherHandler) GetProfile(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.GetProfile(c.Request.Context(), teacherID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}

// UpdateProfile
// PUT /api/teachers/profile
func (h *TeacherHandler) UpdateProfile(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	teacher, err := h.teacherSvc.UpdateProfile(c.Request.Context(), teacherID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, teacher)
}
