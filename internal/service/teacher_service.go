package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/config"
	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
)

const defaultRejectReason = "Application rejected by administrator"

// TeacherService admin teacher management, self-service profile and approval.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id uint) error

	GetProfile(ctx context.Context, teacherID uint) (*dto.TeacherResponse, error)
	UpdateProfile(ctx context.Context, teacherID uint, req *dto.UpdateProfileRequest) (*dto.TeacherResponse, error)

	ListPending(ctx context.Context) ([]dto.TeacherResponse, error)
	Approve(ctx context.Context, id uint) (*dto.TeacherResponse, error)
	Reject(ctx context.Context, id uint, reason string) (*dto.TeacherResponse, error)

	AssignCourse(ctx context.Context, courseID, teacherID uint) error
	UnassignCourse(ctx context.Context, courseID, teacherID uint) error
}

type teacherService struct {
	cfg      *config.AuthConfig
	repo     *repository.Repository
	notifier *Notifier
	logger   *zap.Logger
}

// NewTeacherService creates a TeacherService.
func NewTeacherService(cfg *config.AuthConfig, repo *repository.Repository, notifier *Notifier, logger *zap.Logger) TeacherService {
	return &teacherService{cfg: cfg, repo: repo, notifier: notifier, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	if err := s.checkUnique(ctx, req.Email, req.EmployeeID); err != nil {
		return nil, err
	}
	if req.DepartmentID != nil {
		if err := ensureDepartment(ctx, s.repo, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	hash, err := hashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleTeacher
	}
	hours := req.WeeklyHoursLimit
	if hours == 0 {
		hours = 25
	}

	teacher := &model.Teacher{
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		Email:            strings.TrimSpace(req.Email),
		Phone:            req.Phone,
		WeeklyHoursLimit: hours,
		Specialization:   req.Specialization,
		Password:         hash,
		Role:             role,
		IsActive:         true,
		IsEmailVerified:  true,
		IsApproved:       true,
		DepartmentID:     req.DepartmentID,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("failed to create teacher", zap.String("email", teacher.Email), zap.Error(err))
		return nil, err
	}

	return s.load(ctx, teacher.ID)
}

// ────────────────────── Read ──────────────────────

func (s *teacherService) GetByID(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	return s.load(ctx, id)
}

func (s *teacherService) GetProfile(ctx context.Context, teacherID uint) (*dto.TeacherResponse, error) {
	return s.load(ctx, teacherID)
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("failed to list teachers", zap.Error(err))
		return nil, err
	}
	return dto.NewTeacherResponses(teachers), nil
}

func (s *teacherService) ListPending(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.ListPendingApproval(ctx)
	if err != nil {
		s.logger.Error("failed to list pending teachers", zap.Error(err))
		return nil, err
	}
	return dto.NewTeacherResponses(teachers), nil
}

// ────────────────────── Update ──────────────────────

func (s *teacherService) Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyProfile(ctx, teacher, profileFields{
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		Email:            req.Email,
		Phone:            req.Phone,
		WeeklyHoursLimit: req.WeeklyHoursLimit,
		Specialization:   req.Specialization,
		Password:         req.Password,
		DepartmentID:     req.DepartmentID,
	}); err != nil {
		return nil, err
	}
	teacher.IsActive = req.IsActive

	if err := s.save(ctx, teacher); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

func (s *teacherService) UpdateProfile(ctx context.Context, teacherID uint, req *dto.UpdateProfileRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.get(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := s.applyProfile(ctx, teacher, profileFields(*req)); err != nil {
		return nil, err
	}

	if err := s.save(ctx, teacher); err != nil {
		return nil, err
	}
	return s.load(ctx, teacherID)
}

// profileFields the columns shared by admin and self-service updates.
type profileFields struct {
	Name             string
	EmployeeID       string
	Email            string
	Phone            string
	WeeklyHoursLimit int
	Specialization   string
	Password         string
	DepartmentID     *uint
}

func (s *teacherService) applyProfile(ctx context.Context, teacher *model.Teacher, f profileFields) error {
	email := strings.TrimSpace(f.Email)
	if email != teacher.Email {
		taken, err := s.repo.Teacher.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailRegistered
		}
	}
	if f.EmployeeID != teacher.EmployeeID {
		taken, err := s.repo.Teacher.ExistsByEmployeeID(ctx, f.EmployeeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmployeeIDExists
		}
	}
	if f.DepartmentID != nil {
		if err := ensureDepartment(ctx, s.repo, *f.DepartmentID); err != nil {
			return err
		}
	}

	teacher.Name = f.Name
	teacher.EmployeeID = f.EmployeeID
	teacher.Email = email
	teacher.Phone = f.Phone
	teacher.WeeklyHoursLimit = f.WeeklyHoursLimit
	teacher.Specialization = f.Specialization
	teacher.DepartmentID = f.DepartmentID
	teacher.Department = nil

	if f.Password != "" {
		hash, err := hashPassword(f.Password, s.cfg.BcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", zap.Error(err))
			return err
		}
		teacher.Password = hash
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Teacher.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check teacher", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrTeacherNotFound, "Teacher", id)
	}

	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete teacher", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Approval ──────────────────────

func (s *teacherService) Approve(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	teacher, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !teacher.IsEmailVerified {
		return nil, ErrApproveUnverifiedTeacher
	}

	teacher.IsApproved = true
	teacher.IsActive = true
	if err := s.save(ctx, teacher); err != nil {
		return nil, err
	}

	s.notifier.Approval(teacher.Email, teacher.Name)
	s.logger.Info("teacher approved", zap.Uint("teacher_id", id))

	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Reject(ctx context.Context, id uint, reason string) (*dto.TeacherResponse, error) {
	teacher, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	teacher.IsApproved = false
	teacher.IsActive = false
	if err := s.save(ctx, teacher); err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		reason = defaultRejectReason
	}
	s.notifier.Rejection(teacher.Email, teacher.Name, reason)
	s.logger.Info("teacher rejected", zap.Uint("teacher_id", id), zap.String("reason", reason))

	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

// ────────────────────── Course assignment ──────────────────────

func (s *teacherService) AssignCourse(ctx context.Context, courseID, teacherID uint) error {
	if err := ensureCourse(ctx, s.repo, courseID); err != nil {
		return err
	}
	if err := ensureTeacher(ctx, s.repo, teacherID); err != nil {
		return err
	}
	if err := s.repo.Teacher.AddCourse(ctx, teacherID, courseID); err != nil {
		s.logger.Error("failed to assign course",
			zap.Uint("course_id", courseID), zap.Uint("teacher_id", teacherID), zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) UnassignCourse(ctx context.Context, courseID, teacherID uint) error {
	if err := ensureCourse(ctx, s.repo, courseID); err != nil {
		return err
	}
	if err := ensureTeacher(ctx, s.repo, teacherID); err != nil {
		return err
	}
	if err := s.repo.Teacher.RemoveCourse(ctx, teacherID, courseID); err != nil {
		s.logger.Error("failed to unassign course",
			zap.Uint("course_id", courseID), zap.Uint("teacher_id", teacherID), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *teacherService) checkUnique(ctx context.Context, email, employeeID string) error {
	taken, err := s.repo.Teacher.ExistsByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailRegistered
	}
	taken, err = s.repo.Teacher.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmployeeIDExists
	}
	return nil
}

func (s *teacherService) get(ctx context.Context, id uint) (*model.Teacher, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrTeacherNotFound, "Teacher", id)
		}
		s.logger.Error("failed to load teacher", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) load(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	teacher, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) save(ctx context.Context, teacher *model.Teacher) error {
	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("failed to update teacher", zap.Uint("id", teacher.ID), zap.Error(err))
		return err
	}
	return nil
}
