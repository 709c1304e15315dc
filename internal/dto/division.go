package dto

// ── division ──

// DivisionRequest create and full-replace update.
type DivisionRequest struct {
	Name           string `json:"name"             binding:"required,max=10"`
	Year           int    `json:"year"             binding:"required,min=1,max=4"`
	Branch         string `json:"branch"           binding:"required,max=50"`
	TotalStudents  int    `json:"total_students"   binding:"min=0"`
	IsActive       *bool  `json:"is_active"`
	DepartmentID   uint   `json:"department_id"    binding:"required,min=1"`
	AcademicYearID uint   `json:"academic_year_id" binding:"required,min=1"`
}
