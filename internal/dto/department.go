package dto

// ── department ──

// DepartmentRequest create and full-replace update.
type DepartmentRequest struct {
	Name             string `json:"name"               binding:"required,max=100"`
	Code             string `json:"code"               binding:"required,max=20"`
	HeadOfDepartment string `json:"head_of_department" binding:"omitempty,max=100"`
}
