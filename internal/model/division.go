package model

// Division maps divisions. A cohort of students sharing one timetable.
type Division struct {
	ID             uint   `gorm:"primaryKey"                json:"id"`
	Name           string `gorm:"type:varchar(10);not null" json:"name"`
	Year           int    `gorm:"not null"                  json:"year"` // 1-4
	Branch         string `gorm:"type:varchar(50);not null" json:"branch"`
	TotalStudents  int    `gorm:"not null;default:0"        json:"total_students"`
	IsActive       bool   `gorm:"not null"                  json:"is_active"`
	DepartmentID   uint   `gorm:"not null"                  json:"department_id"`
	AcademicYearID uint   `gorm:"not null"                  json:"academic_year_id"`
	BaseModel

	Department   *Department   `gorm:"foreignKey:DepartmentID"   json:"department,omitempty"`
	AcademicYear *AcademicYear `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
}

func (Division) TableName() string { return "divisions" }
