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

// CourseService course CRUD.
type CourseService interface {
	Create(ctx context.Context, req *dto.CourseRequest) (*model.Course, error)
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context, departmentID uint) ([]model.Course, error)
	Update(ctx context.Context, id uint, req *dto.CourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest) (*model.Course, error) {
	course := &model.Course{IsActive: true}
	if err := s.apply(ctx, course, req); err != nil {
		return nil, err
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("failed to create course", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, course.ID)
}

func (s *courseService) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrCourseNotFound, "Course", id)
		}
		s.logger.Error("failed to load course", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context, departmentID uint) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx, departmentID)
	if err != nil {
		s.logger.Error("failed to list courses", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, err
	}
	return courses, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *dto.CourseRequest) (*model.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, course, req); err != nil {
		return nil, err
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("failed to update course", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Course.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check course", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrCourseNotFound, "Course", id)
	}
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete course", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *courseService) apply(ctx context.Context, course *model.Course, req *dto.CourseRequest) error {
	courseType := model.CourseType(req.CourseType)
	if !courseType.Valid() {
		return ErrInvalidValue.Withf("Invalid course type: %s", req.CourseType)
	}
	semester := model.Semester(req.Semester)
	if !semester.Valid() {
		return ErrInvalidValue.Withf("Invalid semester: %s", req.Semester)
	}
	if err := ensureDepartment(ctx, s.repo, req.DepartmentID); err != nil {
		return err
	}

	course.Name = req.Name
	course.Code = req.Code
	course.CourseType = courseType
	course.Credits = req.Credits
	course.HoursPerWeek = req.HoursPerWeek
	course.Semester = semester
	course.Description = req.Description
	course.Prerequisites = req.Prerequisites
	course.IsActive = boolOr(req.IsActive, course.IsActive)
	course.DepartmentID = req.DepartmentID
	course.Department = nil
	return nil
}
