package dto

import "samaysetu/backend/internal/model"

// ── teacher ──

// CreateTeacherRequest admin-created teacher.
type CreateTeacherRequest struct {
	Name             string `json:"name"               binding:"required,max=100"`
	EmployeeID       string `json:"employee_id"        binding:"required,max=20"`
	Email            string `json:"email"              binding:"required,email,max=100"`
	Phone            string `json:"phone"              binding:"omitempty,max=15"`
	WeeklyHoursLimit int    `json:"weekly_hours_limit" binding:"omitempty,min=1,max=40"`
	Specialization   string `json:"specialization"     binding:"omitempty,max=500"`
	Password         string `json:"password"           binding:"required,min=6,max=72"`
	Role             string `json:"role"               binding:"omitempty,oneof=TEACHER ADMIN"`
	DepartmentID     *uint  `json:"department_id"`
}

// UpdateTeacherRequest admin full replace. Password is re-hashed only when non-empty.
type UpdateTeacherRequest struct {
	Name             string `json:"name"               binding:"required,max=100"`
	EmployeeID       string `json:"employee_id"        binding:"required,max=20"`
	Email            string `json:"email"              binding:"required,email,max=100"`
	Phone            string `json:"phone"              binding:"omitempty,max=15"`
	WeeklyHoursLimit int    `json:"weekly_hours_limit" binding:"required,min=1,max=40"`
	Specialization   string `json:"specialization"     binding:"omitempty,max=500"`
	Password         string `json:"password"           binding:"omitempty,min=6,max=72"`
	IsActive         bool   `json:"is_active"`
	DepartmentID     *uint  `json:"department_id"`
}

// UpdateProfileRequest self-service profile update.
type UpdateProfileRequest struct {
	Name             string `json:"name"               binding:"required,max=100"`
	EmployeeID       string `json:"employee_id"        binding:"required,max=20"`
	Email            string `json:"email"              binding:"required,email,max=100"`
	Phone            string `json:"phone"              binding:"omitempty,max=15"`
	WeeklyHoursLimit int    `json:"weekly_hours_limit" binding:"required,min=1,max=40"`
	Specialization   string `json:"specialization"     binding:"omitempty,max=500"`
	Password         string `json:"password"           binding:"omitempty,min=6,max=72"`
	DepartmentID     *uint  `json:"department_id"`
}

// RejectTeacherRequest optional reason.
type RejectTeacherRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// TeacherResponse teacher without credentials or tokens.
type TeacherResponse struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	EmployeeID       string            `json:"employee_id"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	WeeklyHoursLimit int               `json:"weekly_hours_limit"`
	Specialization   string            `json:"specialization,omitempty"`
	Role             string            `json:"role"`
	IsActive         bool              `json:"is_active"`
	IsEmailVerified  bool              `json:"is_email_verified"`
	IsApproved       bool              `json:"is_approved"`
	DepartmentID     *uint             `json:"department_id,omitempty"`
	Department       *model.Department `json:"department,omitempty"`
	Courses          []model.Course    `json:"courses,omitempty"`
	CreatedAt        string            `json:"created_at"`
}

// NewTeacherResponse converts a model.
func NewTeacherResponse(t *model.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:               t.ID,
		Name:             t.Name,
		EmployeeID:       t.EmployeeID,
		Email:            t.Email,
		Phone:            t.Phone,
		WeeklyHoursLimit: t.WeeklyHoursLimit,
		Specialization:   t.Specialization,
		Role:             t.Role,
		IsActive:         t.IsActive,
		IsEmailVerified:  t.IsEmailVerified,
		IsApproved:       t.IsApproved,
		DepartmentID:     t.DepartmentID,
		Department:       t.Department,
		Courses:          t.Courses,
		CreatedAt:        t.CreatedAt.Format(timeLayout),
	}
}

// NewTeacherResponses converts a slice.
func NewTeacherResponses(list []model.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, NewTeacherResponse(&list[i]))
	}
	return out
}
