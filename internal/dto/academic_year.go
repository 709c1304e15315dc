package dto

import "samaysetu/backend/internal/model"

// ── academic year ──

// AcademicYearRequest create and full-replace update. Dates are YYYY-MM-DD.
type AcademicYearRequest struct {
	YearName  string `json:"year_name"  binding:"required,max=20"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	IsCurrent bool   `json:"is_current"`
}

// AcademicYearResponse dates rendered as YYYY-MM-DD.
type AcademicYearResponse struct {
	ID        uint   `json:"id"`
	YearName  string `json:"year_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current"`
}

func NewAcademicYearResponse(y *model.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		ID:        y.ID,
		YearName:  y.YearName,
		StartDate: y.StartDate.Format(DateLayout),
		EndDate:   y.EndDate.Format(DateLayout),
		IsCurrent: y.IsCurrent,
	}
}

func NewAcademicYearResponses(list []model.AcademicYear) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(list))
	for i := range list {
		out = append(out, NewAcademicYearResponse(&list[i]))
	}
	return out
}
