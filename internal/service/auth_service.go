package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"samaysetu/backend/config"
	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/jwt"
)

// Principal is the authentication view of a teacher account.
type Principal struct {
	TeacherID    uint
	Email        string
	PasswordHash string
	Role         string
	Authorities  []string
}

// HasAuthority reports whether the principal holds authority, e.g. "ROLE_ADMIN".
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// AuthService account lifecycle: registration, verification, password reset, login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	// LoadPrincipal fails, in this order, for an unknown email, an unverified email,
	// an unapproved account and an inactive account.
	LoadPrincipal(ctx context.Context, email string) (*Principal, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, teacherID uint) (*dto.TeacherResponse, error)
}

type authService struct {
	cfg       *config.AuthConfig
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	notifier  *Notifier
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.AuthConfig,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	notifier *Notifier,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !strings.HasSuffix(strings.ToLower(email), strings.ToLower(s.cfg.InstitutionDomain)) {
		return nil, ErrInstitutionEmail.Withf("Only college email (%s) is allowed", s.cfg.InstitutionDomain)
	}

	taken, err := s.repo.Teacher.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEmailRegistered
	}

	taken, err = s.repo.Teacher.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee id", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEmployeeIDExists
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

	token := uuid.NewString()
	expiry := s.now().Add(s.verificationTTL())

	teacher := &model.Teacher{
		Name:                    req.Name,
		EmployeeID:              req.EmployeeID,
		Email:                   email,
		Phone:                   req.Phone,
		Specialization:          req.Specialization,
		Password:                hash,
		Role:                    model.RoleTeacher,
		WeeklyHoursLimit:        25,
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
		DepartmentID:            req.DepartmentID,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("failed to create teacher", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.notifier.Verification(teacher.Email, token)

	s.logger.Info("teacher registered", zap.Uint("teacher_id", teacher.ID), zap.String("email", teacher.Email))

	return &dto.RegisterResponse{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email}, nil
}

// ────────────────────── VerifyEmail ──────────────────────

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	teacher, err := s.repo.Teacher.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidVerificationToken
		}
		s.logger.Error("failed to look up verification token", zap.Error(err))
		return err
	}

	if expired(teacher.VerificationTokenExpiry, s.now()) {
		return ErrVerificationTokenExpired
	}

	teacher.IsEmailVerified = true
	teacher.VerificationToken = nil
	teacher.VerificationTokenExpiry = nil

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("failed to verify email", zap.Uint("teacher_id", teacher.ID), zap.Error(err))
		return err
	}

	s.notifier.Welcome(teacher.Email, teacher.Name)
	return nil
}

// ────────────────────── Password reset ──────────────────────

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	teacher, err := s.repo.Teacher.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmailNotFound
		}
		s.logger.Error("failed to look up email", zap.Error(err))
		return err
	}

	token := uuid.NewString()
	expiry := s.now().Add(s.resetTTL())
	teacher.ResetToken = &token
	teacher.ResetTokenExpiry = &expiry

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("failed to store reset token", zap.Uint("teacher_id", teacher.ID), zap.Error(err))
		return err
	}

	if err := s.notifier.PasswordReset(ctx, teacher.Email, token); err != nil {
		s.logger.Error("failed to send password reset email", zap.String("email", teacher.Email), zap.Error(err))
		return ErrResetMailFailed.Wrap(err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	teacher, err := s.repo.Teacher.GetByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		s.logger.Error("failed to look up reset token", zap.Error(err))
		return err
	}

	if expired(teacher.ResetTokenExpiry, s.now()) {
		return ErrResetTokenExpired
	}

	hash, err := hashPassword(req.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return err
	}

	teacher.Password = hash
	teacher.ResetToken = nil
	teacher.ResetTokenExpiry = nil

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("failed to reset password", zap.Uint("teacher_id", teacher.ID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) LoadPrincipal(ctx context.Context, email string) (*Principal, error) {
	teacher, err := s.loadAccount(ctx, email)
	if err != nil {
		return nil, err
	}
	return toPrincipal(teacher), nil
}

func (s *authService) loadAccount(ctx context.Context, email string) (*model.Teacher, error) {
	teacher, err := s.repo.Teacher.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load account", zap.Error(err))
		return nil, err
	}

	switch {
	case !teacher.IsEmailVerified:
		return nil, ErrEmailNotVerified
	case !teacher.IsApproved:
		return nil, ErrPendingApproval
	case !teacher.IsActive:
		return nil, ErrAccountInactive
	}
	return teacher, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	teacher, err := s.loadAccount(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	principal := toPrincipal(teacher)
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := s.jwtMgr.Generate(principal.Email, principal.TeacherID, principal.Role)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Uint("teacher_id", teacher.ID), zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(s.jwtMgr.TTL().Seconds()),
		Role:      teacher.Role,
		Teacher:   dto.NewTeacherResponse(teacher),
	}, nil
}

// Logout revokes the token until it would have expired. Without a blacklist it is a no-op.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, expiresAt.Sub(s.now())); err != nil {
		s.logger.Error("failed to blacklist token", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, teacherID uint) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("failed to load teacher", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	resp := dto.NewTeacherResponse(teacher)
	return &resp, nil
}

// ── helpers ──

func (s *authService) verificationTTL() time.Duration {
	if s.cfg.VerificationTokenTTL > 0 {
		return s.cfg.VerificationTokenTTL
	}
	return 24 * time.Hour
}

func (s *authService) resetTTL() time.Duration {
	if s.cfg.ResetTokenTTL > 0 {
		return s.cfg.ResetTokenTTL
	}
	return time.Hour
}

func toPrincipal(t *model.Teacher) *Principal {
	return &Principal{
		TeacherID:    t.ID,
		Email:        t.Email,
		PasswordHash: t.Password,
		Role:         t.Role,
		Authorities:  []string{"ROLE_" + t.Role},
	}
}

func expired(expiry *time.Time, now time.Time) bool {
	return expiry == nil || expiry.Before(now)
}

func hashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
