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

// StudentService student CRUD.
type StudentService interface {
	Create(ctx context.Context, req *dto.StudentRequest) (*model.Student, error)
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	List(ctx context.Context, divisionID uint) ([]model.Student, error)
	Update(ctx context.Context, id uint, req *dto.StudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.StudentRequest) (*model.Student, error) {
	student := &model.Student{IsActive: true}
	if err := s.apply(ctx, student, req); err != nil {
		return nil, err
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("failed to create student", zap.String("roll_number", req.RollNumber), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrStudentNotFound, "Student", id)
		}
		s.logger.Error("failed to load student", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context, divisionID uint) ([]model.Student, error) {
	students, err := s.repo.Student.List(ctx, divisionID)
	if err != nil {
		s.logger.Error("failed to list students", zap.Uint("division_id", divisionID), zap.Error(err))
		return nil, err
	}
	return students, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *dto.StudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, student, req); err != nil {
		return nil, err
	}
	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("failed to update student", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Student.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check student", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrStudentNotFound, "Student", id)
	}
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete student", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) apply(ctx context.Context, student *model.Student, req *dto.StudentRequest) error {
	if req.DivisionID != nil {
		if err := ensureDivision(ctx, s.repo, *req.DivisionID); err != nil {
			return err
		}
	}

	student.Name = req.Name
	student.RollNumber = req.RollNumber
	student.Email = req.Email
	student.Phone = req.Phone
	student.AdmissionYear = req.AdmissionYear
	student.IsActive = boolOr(req.IsActive, student.IsActive)
	student.DivisionID = req.DivisionID
	student.Division = nil
	return nil
}
