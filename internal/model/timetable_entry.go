package model

// TimetableEntry maps timetable_entries. One scheduled class: this division attends this
// course, taught by this teacher, in this room, at this slot, on this day, in this year.
type TimetableEntry struct {
	ID             uint      `gorm:"primaryKey"                json:"id"`
	DivisionID     uint      `gorm:"not null"                  json:"division_id"`
	CourseID       uint      `gorm:"not null"                  json:"course_id"`
	TeacherID      uint      `gorm:"not null"                  json:"teacher_id"`
	RoomID         uint      `gorm:"not null"                  json:"room_id"`
	TimeSlotID     uint      `gorm:"not null"                  json:"time_slot_id"`
	AcademicYearID uint      `gorm:"not null"                  json:"academic_year_id"`
	DayOfWeek      DayOfWeek `gorm:"type:varchar(10);not null" json:"day_of_week"`
	WeekNumber     int       `gorm:"not null;default:1"        json:"week_number"`
	IsRecurring    bool      `gorm:"not null"                  json:"is_recurring"`
	Notes          string    `gorm:"type:text"                 json:"notes,omitempty"`
	BaseModel

	Division     *Division     `gorm:"foreignKey:DivisionID"     json:"division,omitempty"`
	Course       *Course       `gorm:"foreignKey:CourseID"       json:"course,omitempty"`
	Teacher      *Teacher      `gorm:"foreignKey:TeacherID"      json:"teacher,omitempty"`
	Room         *ClassRoom    `gorm:"foreignKey:RoomID"         json:"room,omitempty"`
	TimeSlot     *TimeSlot     `gorm:"foreignKey:TimeSlotID"     json:"time_slot,omitempty"`
	AcademicYear *AcademicYear `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
}

func (TimetableEntry) TableName() string { return "timetable_entries" }
