package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler timetable downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// DivisionSpreadsheet
// GET /api/timetable/division/:id/export.xlsx?academic_year_id=
func (h *ExportHandler) DivisionSpreadsheet(c *gin.Context) {
	divisionID, yearID, ok := scopedQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.DivisionSpreadsheet(c.Request.Context(), divisionID, yearID)
	if err != nil {
		writeError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// TeacherCalendar
// GET /api/timetable/teacher/:id/export.ics?academic_year_id=
func (h *ExportHandler) TeacherCalendar(c *gin.Context) {
	teacherID, yearID, ok := scopedQuery(c)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.TeacherCalendar(c.Request.Context(), teacherID, yearID)
	if err != nil {
		writeError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, contentTypeICS, data)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
}
