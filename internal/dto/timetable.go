package dto

import "samaysetu/backend/internal/model"

// ── timetable ──

// ManualTimetableRequest one entry. WeekNumber defaults to 1, IsRecurring to true.
type ManualTimetableRequest struct {
	DivisionID     uint   `json:"division_id"      binding:"required,min=1"`
	CourseID       uint   `json:"course_id"        binding:"required,min=1"`
	TeacherID      uint   `json:"teacher_id"       binding:"required,min=1"`
	RoomID         uint   `json:"room_id"          binding:"required,min=1"`
	TimeSlotID     uint   `json:"time_slot_id"     binding:"required,min=1"`
	AcademicYearID uint   `json:"academic_year_id" binding:"required,min=1"`
	DayOfWeek      string `json:"day_of_week"      binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	WeekNumber     *int   `json:"week_number"      binding:"omitempty,min=1"`
	IsRecurring    *bool  `json:"is_recurring"`
	Notes          string `json:"notes"            binding:"omitempty,max=1000"`
}

// TimetableEntryResponse entry with references resolved.
type TimetableEntryResponse struct {
	ID           uint                  `json:"id"`
	DayOfWeek    model.DayOfWeek       `json:"day_of_week"`
	WeekNumber   int                   `json:"week_number"`
	IsRecurring  bool                  `json:"is_recurring"`
	Notes        string                `json:"notes,omitempty"`
	Division     *model.Division       `json:"division,omitempty"`
	Course       *model.Course         `json:"course,omitempty"`
	Teacher      *TeacherResponse      `json:"teacher,omitempty"`
	Room         *model.ClassRoom      `json:"room,omitempty"`
	TimeSlot     *model.TimeSlot       `json:"time_slot,omitempty"`
	AcademicYear *AcademicYearResponse `json:"academic_year,omitempty"`
}

func NewTimetableEntryResponse(e *model.TimetableEntry) TimetableEntryResponse {
	resp := TimetableEntryResponse{
		ID:          e.ID,
		DayOfWeek:   e.DayOfWeek,
		WeekNumber:  e.WeekNumber,
		IsRecurring: e.IsRecurring,
		Notes:       e.Notes,
		Division:    e.Division,
		Course:      e.Course,
		Room:        e.Room,
		TimeSlot:    e.TimeSlot,
	}
	if e.Teacher != nil {
		t := NewTeacherResponse(e.Teacher)
		resp.Teacher = &t
	}
	if e.AcademicYear != nil {
		y := NewAcademicYearResponse(e.AcademicYear)
		resp.AcademicYear = &y
	}
	return resp
}

func NewTimetableEntryResponses(list []model.TimetableEntry) []TimetableEntryResponse {
	out := make([]TimetableEntryResponse, 0, len(list))
	for i := range list {
		out = append(out, NewTimetableEntryResponse(&list[i]))
	}
	return out
}

// TeacherLoadResponse scheduled minutes against the weekly limit.
type TeacherLoadResponse struct {
	TeacherID        uint `json:"teacher_id"`
	AcademicYearID   uint `json:"academic_year_id"`
	ScheduledMinutes int  `json:"scheduled_minutes"`
	WeeklyHoursLimit int  `json:"weekly_hours_limit"`
	Entries          int  `json:"entries"`
	OverLimit        bool `json:"over_limit"`
}
