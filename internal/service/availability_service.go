package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
)

// AvailabilityService a teacher's weekly availability windows. Every write is
// scoped to the calling teacher.
type AvailabilityService interface {
	Create(ctx context.Context, teacherID uint, req *dto.AvailabilityRequest) (*model.TeacherAvailability, error)
	GetByID(ctx context.Context, teacherID, id uint) (*model.TeacherAvailability, error)
	List(ctx context.Context, teacherID uint, day model.DayOfWeek) ([]model.TeacherAvailability, error)
	Update(ctx context.Context, teacherID, id uint, req *dto.AvailabilityRequest) (*model.TeacherAvailability, error)
	Delete(ctx context.Context, teacherID, id uint) error
	// IsTeacherAvailable reports whether an available window on day spans the slot.
	IsTeacherAvailable(ctx context.Context, teacherID uint, day model.DayOfWeek, timeSlotID uint) (bool, error)
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) Create(ctx context.Context, teacherID uint, req *dto.AvailabilityRequest) (*model.TeacherAvailability, error) {
	if err := ensureTeacher(ctx, s.repo, teacherID); err != nil {
		return nil, err
	}

	a := &model.TeacherAvailability{TeacherID: teacherID, IsAvailable: true}
	if err := applyAvailability(a, req); err != nil {
		return nil, err
	}

	if err := s.repo.Availability.Create(ctx, a); err != nil {
		s.logger.Error("failed to create availability", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *availabilityService) GetByID(ctx context.Context, teacherID, id uint) (*model.TeacherAvailability, error) {
	a, err := s.repo.Availability.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrAvailabilityNotFound, "Availability", id)
		}
		s.logger.Error("failed to load availability", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	if a.TeacherID != teacherID {
		return nil, ErrNotOwnAvailability
	}
	return a, nil
}

func (s *availabilityService) List(ctx context.Context, teacherID uint, day model.DayOfWeek) ([]model.TeacherAvailability, error) {
	if day != "" && !day.Valid() {
		return nil, ErrInvalidDayOfWeek
	}
	list, err := s.repo.Availability.ListByTeacher(ctx, teacherID, day)
	if err != nil {
		s.logger.Error("failed to list availability", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *availabilityService) Update(ctx context.Context, teacherID, id uint, req *dto.AvailabilityRequest) (*model.TeacherAvailability, error) {
	a, err := s.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}
	if err := applyAvailability(a, req); err != nil {
		return nil, err
	}
	if err := s.repo.Availability.Update(ctx, a); err != nil {
		s.logger.Error("failed to update availability", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *availabilityService) Delete(ctx context.Context, teacherID, id uint) error {
	if _, err := s.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	if err := s.repo.Availability.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete availability", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *availabilityService) IsTeacherAvailable(ctx context.Context, teacherID uint, day model.DayOfWeek, timeSlotID uint) (bool, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, timeSlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, notFoundWithID(ErrTimeSlotNotFound, "TimeSlot", timeSlotID)
		}
		return false, err
	}
	ok, err := s.repo.Availability.ExistsCovering(ctx, teacherID, day, slot.StartTime, slot.EndTime)
	if err != nil {
		s.logger.Error("failed to check availability",
			zap.Uint("teacher_id", teacherID), zap.Uint("time_slot_id", timeSlotID), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func applyAvailability(a *model.TeacherAvailability, req *dto.AvailabilityRequest) error {
	day := model.DayOfWeek(req.DayOfWeek)
	if !day.Valid() {
		return ErrInvalidDayOfWeek
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return err
	}

	a.DayOfWeek = day
	a.StartTime = model.FormatClock(start)
	a.EndTime = model.FormatClock(end)
	a.IsAvailable = boolOr(req.IsAvailable, a.IsAvailable)
	return nil
}
