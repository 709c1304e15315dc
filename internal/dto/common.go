package dto

const (
	timeLayout = "2006-01-02T15:04:05Z07:00"
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"
)

// AcademicYearQuery ?academic_year_id=
type AcademicYearQuery struct {
	AcademicYearID uint `form:"academic_year_id" binding:"required,min=1"`
}
