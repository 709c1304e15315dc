package model

import "time"

// Teacher maps teachers. Doubles as the login account; lifecycle is
// (IsEmailVerified, IsApproved, IsActive).
type Teacher struct {
	ID               uint   `gorm:"primaryKey"                               json:"id"`
	Name             string `gorm:"type:varchar(100);not null"               json:"name"`
	EmployeeID       string `gorm:"type:varchar(20);not null"                json:"employee_id"`
	Email            string `gorm:"type:varchar(100);not null"               json:"email"`
	Phone            string `gorm:"type:varchar(15)"                         json:"phone,omitempty"`
	WeeklyHoursLimit int    `gorm:"not null;default:25"                      json:"weekly_hours_limit"`
	Specialization   string `gorm:"type:varchar(500)"                        json:"specialization,omitempty"`
	Password         string `gorm:"type:varchar(255);not null"               json:"-"`
	Role             string `gorm:"type:varchar(20);not null;default:TEACHER" json:"role"`
	IsActive         bool   `gorm:"not null;default:false"                   json:"is_active"`
	IsEmailVerified  bool   `gorm:"not null;default:false"                   json:"is_email_verified"`
	IsApproved       bool   `gorm:"not null;default:false"                   json:"is_approved"`

	VerificationToken       *string    `gorm:"type:varchar(64)" json:"-"`
	VerificationTokenExpiry *time.Time `json:"-"`
	ResetToken              *string    `gorm:"type:varchar(64)" json:"-"`
	ResetTokenExpiry        *time.Time `json:"-"`

	DepartmentID *uint `json:"department_id,omitempty"`
	VersionedModel

	Department *Department `gorm:"foreignKey:DepartmentID"       json:"department,omitempty"`
	Courses    []Course    `gorm:"many2many:teacher_courses;"    json:"courses,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }
