package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/database"
)

// AcademicYearService academic year CRUD. At most one year is current; setting a
// second one fails instead of silently clearing the first.
type AcademicYearService interface {
	Create(ctx context.Context, req *dto.AcademicYearRequest) (*dto.AcademicYearResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AcademicYearResponse, error)
	GetCurrent(ctx context.Context) (*dto.AcademicYearResponse, error)
	List(ctx context.Context) ([]dto.AcademicYearResponse, error)
	Update(ctx context.Context, id uint, req *dto.AcademicYearRequest) (*dto.AcademicYearResponse, error)
	Delete(ctx context.Context, id uint) error
}

type academicYearService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAcademicYearService(repo *repository.Repository, logger *zap.Logger) AcademicYearService {
	return &academicYearService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *academicYearService) Create(ctx context.Context, req *dto.AcademicYearRequest) (*dto.AcademicYearResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	year := &model.AcademicYear{
		YearName:  req.YearName,
		StartDate: start,
		EndDate:   end,
		IsCurrent: req.IsCurrent,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if year.IsCurrent {
			current, err := s.current(ctx, tx)
			if err != nil {
				return err
			}
			if current != nil {
				return ErrCurrentYearConflict.Withf(
					"An academic year '%s' is already set as current. Please unset it first before setting a new current year.",
					current.YearName)
			}
		}
		return currentYearRace(tx.AcademicYear.Create(ctx, year), year.YearName)
	})
	if err != nil {
		logUnclassified(s.logger, "failed to create academic year", err, zap.String("year_name", req.YearName))
		return nil, err
	}

	resp := dto.NewAcademicYearResponse(year)
	return &resp, nil
}

// ────────────────────── Read ──────────────────────

func (s *academicYearService) GetByID(ctx context.Context, id uint) (*dto.AcademicYearResponse, error) {
	year, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAcademicYearResponse(year)
	return &resp, nil
}

func (s *academicYearService) GetCurrent(ctx context.Context) (*dto.AcademicYearResponse, error) {
	year, err := s.current(ctx, s.repo)
	if err != nil {
		s.logger.Error("failed to load current academic year", zap.Error(err))
		return nil, err
	}
	if year == nil {
		return nil, ErrAcademicYearNotFound
	}
	resp := dto.NewAcademicYearResponse(year)
	return &resp, nil
}

func (s *academicYearService) List(ctx context.Context) ([]dto.AcademicYearResponse, error) {
	years, err := s.repo.AcademicYear.List(ctx)
	if err != nil {
		s.logger.Error("failed to list academic years", zap.Error(err))
		return nil, err
	}
	return dto.NewAcademicYearResponses(years), nil
}

// ────────────────────── Update ──────────────────────

func (s *academicYearService) Update(ctx context.Context, id uint, req *dto.AcademicYearRequest) (*dto.AcademicYearResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var year *model.AcademicYear
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		existing, err := tx.AcademicYear.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundWithID(ErrAcademicYearNotFound, "AcademicYear", id)
			}
			return err
		}

		if req.IsCurrent && !existing.IsCurrent {
			current, err := s.current(ctx, tx)
			if err != nil {
				return err
			}
			if current != nil && current.ID != id {
				return ErrCurrentYearConflict.Withf(
					"Academic year '%s' is already set as current. Please unset it first before setting '%s' as current.",
					current.YearName, req.YearName)
			}
		}

		existing.YearName = req.YearName
		existing.StartDate = start
		existing.EndDate = end
		existing.IsCurrent = req.IsCurrent
		year = existing
		return currentYearRace(tx.AcademicYear.Update(ctx, existing), existing.YearName)
	})
	if err != nil {
		logUnclassified(s.logger, "failed to update academic year", err, zap.Uint("id", id))
		return nil, err
	}

	resp := dto.NewAcademicYearResponse(year)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *academicYearService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.AcademicYear.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check academic year", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrAcademicYearNotFound, "AcademicYear", id)
	}
	if err := s.repo.AcademicYear.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete academic year", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *academicYearService) get(ctx context.Context, id uint) (*model.AcademicYear, error) {
	year, err := s.repo.AcademicYear.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrAcademicYearNotFound, "AcademicYear", id)
		}
		s.logger.Error("failed to load academic year", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return year, nil
}

// current returns the current year, or nil when none is flagged.
func (s *academicYearService) current(ctx context.Context, repo *repository.Repository) (*model.AcademicYear, error) {
	year, err := repo.AcademicYear.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return year, nil
}

// currentYearRace maps a concurrent write that also flagged a year current.
func currentYearRace(err error, yearName string) error {
	var dup *database.DuplicateKeyError
	if errors.As(err, &dup) && dup.Constraint == repository.ConstraintCurrentYear {
		return ErrCurrentYearConflict.Withf(
			"Another academic year is already set as current. Please unset it first before setting '%s' as current.",
			yearName)
	}
	return err
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dto.DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidValue.Withf("Invalid start date: %s", startStr)
	}
	end, err := time.Parse(dto.DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidValue.Withf("Invalid end date: %s", endStr)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}
