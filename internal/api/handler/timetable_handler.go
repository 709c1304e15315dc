package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// TimetableHandler manual scheduling and timetable reads.
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler creates a TimetableHandler.
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// CreateManual books one entry after reference and conflict checks.
// POST /api/timetable/manual
func (h *TimetableHandler) CreateManual(c *gin.Context) {
	var req dto.ManualTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	entry, err := h.svc.CreateManual(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, entry)
}

// ListByDivision
// GET /api/timetable/division/:id?academic_year_id=
func (h *TimetableHandler) ListByDivision(c *gin.Context) {
	divisionID, yearID, ok := scopedQuery(c)
	if !ok {
		return
	}

	entries, err := h.svc.ListByDivision(c.Request.Context(), divisionID, yearID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, entries)
}

// ListByTeacher
// GET /api/timetable/teacher/:id?academic_year_id=
func (h *TimetableHandler) ListByTeacher(c *gin.Context) {
	teacherID, yearID, ok := scopedQuery(c)
	if !ok {
		return
	}

	entries, err := h.svc.ListByTeacher(c.Request.Context(), teacherID, yearID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, entries)
}

// TeacherLoad
// GET /api/timetable/teacher/:id/load?academic_year_id=
func (h *TimetableHandler) TeacherLoad(c *gin.Context) {
	teacherID, yearID, ok := scopedQuery(c)
	if !ok {
		return
	}

	load, err := h.svc.TeacherLoad(c.Request.Context(), teacherID, yearID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, load)
}

// Delete
// DELETE /admin/api/timetable/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Timetable entry deleted successfully")
}

// scopedQuery the :id path parameter plus the required academic_year_id query.
func scopedQuery(c *gin.Context) (uint, uint, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, 0, false
	}
	var q dto.AcademicYearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return 0, 0, false
	}
	return id, q.AcademicYearID, true
}
