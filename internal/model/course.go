package model

// Course maps courses
type Course struct {
	ID            uint       `gorm:"primaryKey"                 json:"id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Code          string     `gorm:"type:varchar(20);not null"  json:"code"`
	CourseType    CourseType `gorm:"type:varchar(10);not null"  json:"course_type"`
	Credits       int        `gorm:"not null"                   json:"credits"`
	HoursPerWeek  int        `gorm:"not null"                   json:"hours_per_week"`
	Semester      Semester   `gorm:"type:varchar(10);not null"  json:"semester"`
	Description   string     `gorm:"type:text"                  json:"description,omitempty"`
	Prerequisites string     `gorm:"type:text"                  json:"prerequisites,omitempty"`
	IsActive      bool       `gorm:"not null"                   json:"is_active"`
	DepartmentID  uint       `gorm:"not null"                   json:"department_id"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Course) TableName() string { return "courses" }
