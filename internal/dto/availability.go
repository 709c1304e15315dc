package dto

// ── teacher availability ──

// AvailabilityRequest create and full-replace update. TeacherID is ignored on the
// self-service routes.
type AvailabilityRequest struct {
	TeacherID   uint   `json:"teacher_id"`
	DayOfWeek   string `json:"day_of_week"  binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime   string `json:"start_time"   binding:"required,clock"`
	EndTime     string `json:"end_time"     binding:"required,clock"`
	IsAvailable *bool  `json:"is_available"`
}

// AvailabilityListQuery optional day filter.
type AvailabilityListQuery struct {
	DayOfWeek string `form:"day_of_week" binding:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
}

// AvailabilityCheckQuery ?day_of_week=&time_slot_id=
type AvailabilityCheckQuery struct {
	DayOfWeek  string `form:"day_of_week"  binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	TimeSlotID uint   `form:"time_slot_id" binding:"required,min=1"`
}
