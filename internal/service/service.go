package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"samaysetu/backend/config"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/jwt"
)

// TokenBlacklist revokes tokens by jti. Implemented by pkg/redis.Client.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service aggregates every service.
type Service struct {
	Auth         AuthService
	Teacher      TeacherService
	Department   DepartmentService
	AcademicYear AcademicYearService
	Course       CourseService
	ClassRoom    ClassRoomService
	Division     DivisionService
	Student      StudentService
	TimeSlot     TimeSlotService
	Availability AvailabilityService
	Timetable    TimetableService
	Export       ExportService
}

// NewService wires every service. blacklist may be nil when Redis is unavailable.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	notifier *Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(&cfg.Auth, repo, jwtMgr, blacklist, notifier, logger),
		Teacher:      NewTeacherService(&cfg.Auth, repo, notifier, logger),
		Department:   NewDepartmentService(repo, logger),
		AcademicYear: NewAcademicYearService(repo, logger),
		Course:       NewCourseService(repo, logger),
		ClassRoom:    NewClassRoomService(repo, logger),
		Division:     NewDivisionService(repo, logger),
		Student:      NewStudentService(repo, logger),
		TimeSlot:     NewTimeSlotService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Timetable:    NewTimetableService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
