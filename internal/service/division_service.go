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

// DivisionService division CRUD.
type DivisionService interface {
	Create(ctx context.Context, req *dto.DivisionRequest) (*model.Division, error)
	GetByID(ctx context.Context, id uint) (*model.Division, error)
	List(ctx context.Context) ([]model.Division, error)
	Update(ctx context.Context, id uint, req *dto.DivisionRequest) (*model.Division, error)
	Delete(ctx context.Context, id uint) error
}

type divisionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewDivisionService(repo *repository.Repository, logger *zap.Logger) DivisionService {
	return &divisionService{repo: repo, logger: logger}
}

func (s *divisionService) Create(ctx context.Context, req *dto.DivisionRequest) (*model.Division, error) {
	division := &model.Division{IsActive: true}
	if err := s.apply(ctx, division, req); err != nil {
		return nil, err
	}
	if err := s.repo.Division.Create(ctx, division); err != nil {
		s.logger.Error("failed to create division", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, division.ID)
}

func (s *divisionService) GetByID(ctx context.Context, id uint) (*model.Division, error) {
	division, err := s.repo.Division.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrDivisionNotFound, "Division", id)
		}
		s.logger.Error("failed to load division", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return division, nil
}

func (s *divisionService) List(ctx context.Context) ([]model.Division, error) {
	divisions, err := s.repo.Division.List(ctx)
	if err != nil {
		s.logger.Error("failed to list divisions", zap.Error(err))
		return nil, err
	}
	return divisions, nil
}

func (s *divisionService) Update(ctx context.Context, id uint, req *dto.DivisionRequest) (*model.Division, error) {
	division, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, division, req); err != nil {
		return nil, err
	}
	if err := s.repo.Division.Update(ctx, division); err != nil {
		s.logger.Error("failed to update division", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *divisionService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Division.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check division", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrDivisionNotFound, "Division", id)
	}
	if err := s.repo.Division.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete division", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *divisionService) apply(ctx context.Context, division *model.Division, req *dto.DivisionRequest) error {
	if err := ensureDepartment(ctx, s.repo, req.DepartmentID); err != nil {
		return err
	}
	if err := ensureAcademicYear(ctx, s.repo, req.AcademicYearID); err != nil {
		return err
	}

	division.Name = req.Name
	division.Year = req.Year
	division.Branch = req.Branch
	division.TotalStudents = req.TotalStudents
	division.IsActive = boolOr(req.IsActive, division.IsActive)
	division.DepartmentID = req.DepartmentID
	division.AcademicYearID = req.AcademicYearID
	division.Department = nil
	division.AcademicYear = nil
	return nil
}
