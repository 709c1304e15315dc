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

// TimeSlotService time slot CRUD.
type TimeSlotService interface {
	Create(ctx context.Context, req *dto.TimeSlotRequest) (*model.TimeSlot, error)
	GetByID(ctx context.Context, id uint) (*model.TimeSlot, error)
	List(ctx context.Context, activeOnly bool) ([]model.TimeSlot, error)
	Update(ctx context.Context, id uint, req *dto.TimeSlotRequest) (*model.TimeSlot, error)
	Delete(ctx context.Context, id uint) error
}

type timeSlotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewTimeSlotService(repo *repository.Repository, logger *zap.Logger) TimeSlotService {
	return &timeSlotService{repo: repo, logger: logger}
}

func (s *timeSlotService) Create(ctx context.Context, req *dto.TimeSlotRequest) (*model.TimeSlot, error) {
	slot := &model.TimeSlot{IsActive: true}
	if err := applyTimeSlot(slot, req); err != nil {
		return nil, err
	}
	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.logger.Error("failed to create time slot", zap.String("start", req.StartTime), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) GetByID(ctx context.Context, id uint) (*model.TimeSlot, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrTimeSlotNotFound, "TimeSlot", id)
		}
		s.logger.Error("failed to load time slot", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) List(ctx context.Context, activeOnly bool) ([]model.TimeSlot, error) {
	slots, err := s.repo.TimeSlot.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("failed to list time slots", zap.Error(err))
		return nil, err
	}
	return slots, nil
}

func (s *timeSlotService) Update(ctx context.Context, id uint, req *dto.TimeSlotRequest) (*model.TimeSlot, error) {
	slot, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTimeSlot(slot, req); err != nil {
		return nil, err
	}
	if err := s.repo.TimeSlot.Update(ctx, slot); err != nil {
		s.logger.Error("failed to update time slot", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.TimeSlot.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check time slot", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrTimeSlotNotFound, "TimeSlot", id)
	}
	if err := s.repo.TimeSlot.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete time slot", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func applyTimeSlot(slot *model.TimeSlot, req *dto.TimeSlotRequest) error {
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = end - start
	}

	slot.StartTime = model.FormatClock(start)
	slot.EndTime = model.FormatClock(end)
	slot.DurationMinutes = duration
	slot.SlotName = req.SlotName
	slot.IsBreak = req.IsBreak
	slot.IsActive = boolOr(req.IsActive, slot.IsActive)
	return nil
}

// parseWindow parses a start/end pair into minutes; end must be after start.
func parseWindow(startStr, endStr string) (int, int, error) {
	start, err := model.ParseClock(startStr)
	if err != nil {
		return 0, 0, ErrInvalidValue.Withf("Invalid start time: %s", startStr)
	}
	end, err := model.ParseClock(endStr)
	if err != nil {
		return 0, 0, ErrInvalidValue.Withf("Invalid end time: %s", endStr)
	}
	if end <= start {
		return 0, 0, ErrInvalidTimeWindow
	}
	return start, end, nil
}
