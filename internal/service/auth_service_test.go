package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"samaysetu/backend/config"
	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/jwt"
)

var testNow = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

type fakeBlacklist struct {
	jti string
	ttl time.Duration
}

func (f *fakeBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	f.jti, f.ttl = jti, ttl
	return nil
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:         "test-secret-key-for-unit-testing-2024",
		TokenTTL:          10 * time.Hour,
		BcryptCost:        bcrypt.MinCost,
		InstitutionDomain: "@mitaoe.ac.in",
	}
}

func setupTestAuthService() (*authService, *mockRepos, *recordingSender, *fakeBlacklist) {
	cfg := testAuthConfig()
	repo, mocks := newMockRepos()
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "http://localhost:3000", zap.NewNop())
	blacklist := &fakeBlacklist{}

	svc := NewAuthService(cfg, repo, jwt.NewManager(cfg), blacklist, notifier, zap.NewNop()).(*authService)
	svc.now = func() time.Time { return testNow }
	return svc, mocks, sender, blacklist
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:       "Asha Patil",
		EmployeeID: "EMP001",
		Email:      "asha@mitaoe.ac.in",
		Password:   "secret123",
	}
}

// seedTeacher stores an account with the given lifecycle flags.
func seedTeacher(t *testing.T, m *mockRepos, email string, verified, approved, active bool) *model.Teacher {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	teacher := &model.Teacher{
		Name:             "Asha Patil",
		EmployeeID:       "EMP-" + email,
		Email:            email,
		Password:         string(hash),
		Role:             model.RoleTeacher,
		WeeklyHoursLimit: 25,
		IsEmailVerified:  verified,
		IsApproved:       approved,
		IsActive:         active,
	}
	_ = m.teacher.Create(context.Background(), teacher)
	return teacher
}

// ── Register ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks, sender, _ := setupTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	stored, _ := mocks.teacher.GetByID(context.Background(), resp.ID)
	if stored.IsEmailVerified || stored.IsApproved || stored.IsActive {
		t.Errorf("new account flags = (%v,%v,%v), want all false",
			stored.IsEmailVerified, stored.IsApproved, stored.IsActive)
	}
	if stored.Role != model.RoleTeacher {
		t.Errorf("role = %s, want TEACHER", stored.Role)
	}
	if stored.VerificationToken == nil || *stored.VerificationToken == "" {
		t.Fatal("verification token not stored")
	}
	if want := testNow.Add(24 * time.Hour); !stored.VerificationTokenExpiry.Equal(want) {
		t.Errorf("token expiry = %v, want %v", stored.VerificationTokenExpiry, want)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")) != nil {
		t.Error("password not hashed with the supplied secret")
	}

	svc.notifier.Wait()
	msgs := sender.messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0].Body, *stored.VerificationToken) {
		t.Errorf("expected one verification mail carrying the token, got %+v", msgs)
	}
}

func TestAuthService_Register_ForeignDomain(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	req := registerRequest()
	req.Email = "asha@gmail.com"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrInstitutionEmail) {
		t.Fatalf("expected ErrInstitutionEmail, got %v", err)
	}
	if err.Error() != "Only college email (@mitaoe.ac.in) is allowed" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	seedTeacher(t, mocks, "asha@mitaoe.ac.in", false, false, false)

	_, err := svc.Register(context.Background(), registerRequest())
	if !errors.Is(err, ErrEmailRegistered) {
		t.Errorf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmployeeID(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	existing := seedTeacher(t, mocks, "other@mitaoe.ac.in", false, false, false)

	req := registerRequest()
	req.EmployeeID = existing.EmployeeID
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmployeeIDExists) {
		t.Errorf("expected ErrEmployeeIDExists, got %v", err)
	}
}

func TestAuthService_Register_UnknownDepartment(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	req := registerRequest()
	deptID := uint(42)
	req.DepartmentID = &deptID

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

// ── VerifyEmail ──

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	svc, mocks, sender, _ := setupTestAuthService()
	resp, _ := svc.Register(context.Background(), registerRequest())
	stored, _ := mocks.teacher.GetByID(context.Background(), resp.ID)
	svc.notifier.Wait()

	if err := svc.VerifyEmail(context.Background(), *stored.VerificationToken); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}

	after, _ := mocks.teacher.GetByID(context.Background(), resp.ID)
	if !after.IsEmailVerified {
		t.Error("email should be verified")
	}
	if after.IsApproved || after.IsActive {
		t.Error("approval flags must be unchanged by verification")
	}
	if after.VerificationToken != nil || after.VerificationTokenExpiry != nil {
		t.Error("verification token should be cleared")
	}

	svc.notifier.Wait()
	if msgs := sender.messages(); len(msgs) != 2 || msgs[1].Subject != "Welcome to SamaySetu!" {
		t.Errorf("expected verification then welcome mail, got %+v", msgs)
	}
}

func TestAuthService_VerifyEmail_Expired(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	resp, _ := svc.Register(context.Background(), registerRequest())
	stored, _ := mocks.teacher.GetByID(context.Background(), resp.ID)

	svc.now = func() time.Time { return testNow.Add(25 * time.Hour) }
	err := svc.VerifyEmail(context.Background(), *stored.VerificationToken)
	if !errors.Is(err, ErrVerificationTokenExpired) {
		t.Fatalf("expected ErrVerificationTokenExpired, got %v", err)
	}

	after, _ := mocks.teacher.GetByID(context.Background(), resp.ID)
	if after.IsEmailVerified {
		t.Error("expired token must not verify the email")
	}
}

func TestAuthService_VerifyEmail_UnknownToken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	err := svc.VerifyEmail(context.Background(), "no-such-token")
	if !errors.Is(err, ErrInvalidVerificationToken) {
		t.Errorf("expected ErrInvalidVerificationToken, got %v", err)
	}
}

// ── Password reset ──

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	svc, mocks, sender, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	if err := svc.ForgotPassword(context.Background(), teacher.Email); err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}

	stored, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)
	if stored.ResetToken == nil {
		t.Fatal("reset token not stored")
	}
	if want := testNow.Add(time.Hour); !stored.ResetTokenExpiry.Equal(want) {
		t.Errorf("reset expiry = %v, want %v", stored.ResetTokenExpiry, want)
	}
	msgs := sender.messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0].Body, "/auth/reset-password?token="+*stored.ResetToken) {
		t.Errorf("reset mail should be sent synchronously with the link, got %+v", msgs)
	}
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	err := svc.ForgotPassword(context.Background(), "ghost@mitaoe.ac.in")
	if !errors.Is(err, ErrEmailNotFound) {
		t.Errorf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestAuthService_ForgotPassword_MailFailure(t *testing.T) {
	svc, mocks, sender, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)
	sender.err = errors.New("smtp down")

	err := svc.ForgotPassword(context.Background(), teacher.Email)
	if !errors.Is(err, ErrResetMailFailed) {
		t.Errorf("expected ErrResetMailFailed, got %v", err)
	}
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)
	_ = svc.ForgotPassword(context.Background(), teacher.Email)
	stored, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)
	oldHash := stored.Password

	svc.now = func() time.Time { return testNow.Add(30 * time.Minute) }
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       *stored.ResetToken,
		NewPassword: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	after, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)
	if after.Password == oldHash {
		t.Error("password hash should change")
	}
	if bcrypt.CompareHashAndPassword([]byte(after.Password), []byte("brand-new-pass")) != nil {
		t.Error("new password does not match stored hash")
	}
	if after.ResetToken != nil || after.ResetTokenExpiry != nil {
		t.Error("reset token should be cleared")
	}
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)
	_ = svc.ForgotPassword(context.Background(), teacher.Email)
	stored, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)

	svc.now = func() time.Time { return testNow.Add(61 * time.Minute) }
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       *stored.ResetToken,
		NewPassword: "brand-new-pass",
	})
	if !errors.Is(err, ErrResetTokenExpired) {
		t.Errorf("expected ErrResetTokenExpired, got %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Token: "nope", NewPassword: "whatever1"})
	if !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("expected ErrInvalidResetToken, got %v", err)
	}
}

// ── LoadPrincipal / Login ──

func TestAuthService_LoadPrincipal_FailureOrder(t *testing.T) {
	tests := []struct {
		name                       string
		verified, approved, active bool
		want                       error
	}{
		{"unverified", false, true, true, ErrEmailNotVerified},
		{"unapproved", true, false, true, ErrPendingApproval},
		{"inactive", true, true, false, ErrAccountInactive},
		{"unverified and unapproved", false, false, false, ErrEmailNotVerified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks, _, _ := setupTestAuthService()
			seedTeacher(t, mocks, "asha@mitaoe.ac.in", tt.verified, tt.approved, tt.active)

			_, err := svc.LoadPrincipal(context.Background(), "asha@mitaoe.ac.in")
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAuthService_LoadPrincipal_UnknownEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.LoadPrincipal(context.Background(), "ghost@mitaoe.ac.in")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_LoadPrincipal_Authorities(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	p, err := svc.LoadPrincipal(context.Background(), "asha@mitaoe.ac.in")
	if err != nil {
		t.Fatalf("LoadPrincipal failed: %v", err)
	}
	if !p.HasAuthority("ROLE_TEACHER") || p.HasAuthority("ROLE_ADMIN") {
		t.Errorf("authorities = %v", p.Authorities)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: teacher.Email, Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" || resp.TokenType != "Bearer" {
		t.Errorf("unexpected token response: %+v", resp)
	}
	if resp.ExpiresIn != int((10 * time.Hour).Seconds()) {
		t.Errorf("ExpiresIn = %d", resp.ExpiresIn)
	}
	if !svc.jwtMgr.ValidateToken(resp.Token, teacher.Email) {
		t.Error("issued token should validate for the teacher's email")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: teacher.Email, Password: "wrong"})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
}

// ── Logout / Me ──

func TestAuthService_Logout_BlacklistsRemainingLifetime(t *testing.T) {
	svc, _, _, blacklist := setupTestAuthService()

	if err := svc.Logout(context.Background(), "jti-1", testNow.Add(2*time.Hour)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if blacklist.jti != "jti-1" || blacklist.ttl != 2*time.Hour {
		t.Errorf("blacklisted %q for %v", blacklist.jti, blacklist.ttl)
	}
}

func TestAuthService_Logout_NoBlacklist(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	svc.blacklist = nil

	if err := svc.Logout(context.Background(), "jti-1", testNow.Add(time.Hour)); err != nil {
		t.Errorf("Logout without blacklist should be a no-op, got %v", err)
	}
}

func TestAuthService_Me_NotFound(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Me(context.Background(), 99)
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("expected ErrTeacherNotFound, got %v", err)
	}
}
