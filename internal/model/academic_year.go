package model

import "time"

// AcademicYear maps academic_years. At most one row has IsCurrent set.
type AcademicYear struct {
	ID        uint      `gorm:"primaryKey"                json:"id"`
	YearName  string    `gorm:"type:varchar(20);not null" json:"year_name"` // e.g. 2024-25
	StartDate time.Time `gorm:"type:date;not null"        json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"        json:"end_date"`
	IsCurrent bool      `gorm:"not null;default:false"    json:"is_current"`
	BaseModel
}

func (AcademicYear) TableName() string { return "academic_years" }
