package dto

// ── student ──

// StudentRequest create and full-replace update.
type StudentRequest struct {
	Name          string `json:"name"           binding:"required,max=100"`
	RollNumber    string `json:"roll_number"    binding:"required,max=20"`
	Email         string `json:"email"          binding:"required,email,max=100"`
	Phone         string `json:"phone"          binding:"omitempty,max=15"`
	AdmissionYear int    `json:"admission_year" binding:"omitempty,min=1900,max=3000"`
	IsActive      *bool  `json:"is_active"`
	DivisionID    *uint  `json:"division_id"`
}

// StudentListQuery optional division filter.
type StudentListQuery struct {
	DivisionID uint `form:"division_id"`
}
