package model

// TeacherAvailability maps teacher_availability
type TeacherAvailability struct {
	ID          uint      `gorm:"primaryKey"                json:"id"`
	TeacherID   uint      `gorm:"not null"                  json:"teacher_id"`
	DayOfWeek   DayOfWeek `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime   string    `gorm:"type:time;not null"        json:"start_time"`
	EndTime     string    `gorm:"type:time;not null"        json:"end_time"`
	IsAvailable bool      `gorm:"not null"                  json:"is_available"`
	BaseModel

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"-"`
}

func (TeacherAvailability) TableName() string { return "teacher_availability" }
