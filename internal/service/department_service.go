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

// DepartmentService department CRUD.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*model.Department, error)
	GetByID(ctx context.Context, id uint) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, id uint, req *dto.DepartmentRequest) (*model.Department, error)
	Delete(ctx context.Context, id uint) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*model.Department, error) {
	dept := &model.Department{
		Name:             req.Name,
		Code:             req.Code,
		HeadOfDepartment: req.HeadOfDepartment,
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("failed to create department", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id uint) (*model.Department, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrDepartmentNotFound, "Department", id)
		}
		s.logger.Error("failed to load department", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) List(ctx context.Context) ([]model.Department, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, err
	}
	return depts, nil
}

func (s *departmentService) Update(ctx context.Context, id uint, req *dto.DepartmentRequest) (*model.Department, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dept.Name = req.Name
	dept.Code = req.Code
	dept.HeadOfDepartment = req.HeadOfDepartment

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("failed to update department", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

// Delete cascades to courses and divisions through the foreign keys.
func (s *departmentService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Department.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check department", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrDepartmentNotFound, "Department", id)
	}
	if err := s.repo.Department.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete department", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
