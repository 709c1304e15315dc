package handler

import "samaysetu/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	Teacher      *TeacherHandler
	Department   *DepartmentHandler
	AcademicYear *AcademicYearHandler
	Course       *CourseHandler
	ClassRoom    *ClassRoomHandler
	Division     *DivisionHandler
	Student      *StudentHandler
	TimeSlot     *TimeSlotHandler
	Availability *AvailabilityHandler
	Timetable    *TimetableHandler
	Export       *ExportHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Teacher:      NewTeacherHandler(svc.Teacher),
		Department:   NewDepartmentHandler(svc.Department),
		AcademicYear: NewAcademicYearHandler(svc.AcademicYear),
		Course:       NewCourseHandler(svc.Course),
		ClassRoom:    NewClassRoomHandler(svc.ClassRoom),
		Division:     NewDivisionHandler(svc.Division),
		Student:      NewStudentHandler(svc.Student),
		TimeSlot:     NewTimeSlotHandler(svc.TimeSlot),
		Availability: NewAvailabilityHandler(svc.Availability),
		Timetable:    NewTimetableHandler(svc.Timetable),
		Export:       NewExportHandler(svc.Export),
	}
}
