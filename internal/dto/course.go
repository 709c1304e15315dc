package dto

// ── course ──

// CourseRequest create and full-replace update.
type CourseRequest struct {
	Name          string `json:"name"           binding:"required,max=100"`
	Code          string `json:"code"           binding:"required,max=20"`
	CourseType    string `json:"course_type"    binding:"required,oneof=THEORY LAB"`
	Credits       int    `json:"credits"        binding:"required,min=1"`
	HoursPerWeek  int    `json:"hours_per_week" binding:"required,min=1"`
	Semester      string `json:"semester"       binding:"required,oneof=SEM_1 SEM_2 SEM_3 SEM_4 SEM_5 SEM_6 SEM_7 SEM_8"`
	Description   string `json:"description"`
	Prerequisites string `json:"prerequisites"`
	IsActive      *bool  `json:"is_active"`
	DepartmentID  uint   `json:"department_id"  binding:"required,min=1"`
}

// CourseListQuery optional department filter.
type CourseListQuery struct {
	DepartmentID uint `form:"department_id"`
}
