package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
)

func setupTestTeacherService() (TeacherService, *mockRepos, *recordingSender, *Notifier) {
	repo, mocks := newMockRepos()
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "http://localhost:3000", zap.NewNop())
	svc := NewTeacherService(testAuthConfig(), repo, notifier, zap.NewNop())
	return svc, mocks, sender, notifier
}

func TestTeacherService_Create_AdminAccountIsActive(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()

	resp, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		Name:       "Ravi Kulkarni",
		EmployeeID: "EMP100",
		Email:      "ravi@mitaoe.ac.in",
		Password:   "secret123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !resp.IsEmailVerified || !resp.IsApproved || !resp.IsActive {
		t.Errorf("admin-created teacher should be verified, approved and active: %+v", resp)
	}
	if resp.WeeklyHoursLimit != 25 || resp.Role != model.RoleTeacher {
		t.Errorf("defaults not applied: hours=%d role=%s", resp.WeeklyHoursLimit, resp.Role)
	}

	stored, _ := mocks.teacher.GetByID(context.Background(), resp.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")) != nil {
		t.Error("password should be stored hashed")
	}
}

func TestTeacherService_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	_, err := svc.Update(context.Background(), teacher.ID, &dto.UpdateTeacherRequest{
		Name:             "Asha P.",
		EmployeeID:       teacher.EmployeeID,
		Email:            teacher.Email,
		WeeklyHoursLimit: 20,
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)
	if stored.Password != teacher.Password {
		t.Error("password hash should be unchanged when no password is given")
	}
	if stored.Name != "Asha P." || stored.WeeklyHoursLimit != 20 {
		t.Errorf("fields not copied: %+v", stored)
	}
}

func TestTeacherService_Update_UnknownDepartment(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)
	dept := uint(7)

	_, err := svc.Update(context.Background(), teacher.ID, &dto.UpdateTeacherRequest{
		Name:             teacher.Name,
		EmployeeID:       teacher.EmployeeID,
		Email:            teacher.Email,
		WeeklyHoursLimit: 25,
		DepartmentID:     &dept,
	})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestTeacherService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := setupTestTeacherService()

	err := svc.Delete(context.Background(), 12)
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
	if err.Error() != "Teacher not found with id: 12" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestTeacherService_ListPending(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()
	seedTeacher(t, mocks, "pending@mitaoe.ac.in", true, false, false)
	seedTeacher(t, mocks, "unverified@mitaoe.ac.in", false, false, false)
	seedTeacher(t, mocks, "active@mitaoe.ac.in", true, true, true)

	list, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(list) != 1 || list[0].Email != "pending@mitaoe.ac.in" {
		t.Errorf("unexpected pending list: %+v", list)
	}
}

// ── approval ──

func TestTeacherService_Approve_Unverified(t *testing.T) {
	svc, mocks, sender, notifier := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", false, false, false)

	_, err := svc.Approve(context.Background(), teacher.ID)
	if !errors.Is(err, ErrApproveUnverifiedTeacher) {
		t.Fatalf("expected ErrApproveUnverifiedTeacher, got %v", err)
	}

	stored, _ := mocks.teacher.GetByID(context.Background(), teacher.ID)
	if stored.IsApproved || stored.IsActive {
		t.Error("failed approval must not change flags")
	}
	notifier.Wait()
	if len(sender.messages()) != 0 {
		t.Error("no mail expected on failed approval")
	}
}

func TestTeacherService_Approve_Success(t *testing.T) {
	svc, mocks, sender, notifier := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, false, false)

	resp, err := svc.Approve(context.Background(), teacher.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if !resp.IsApproved || !resp.IsActive {
		t.Errorf("approve should set approved and active: %+v", resp)
	}

	notifier.Wait()
	msgs := sender.messages()
	if len(msgs) != 1 || msgs[0].Subject != "SamaySetu - Account Approved" {
		t.Errorf("expected approval mail, got %+v", msgs)
	}
}

func TestTeacherService_Reject_DefaultReason(t *testing.T) {
	svc, mocks, sender, notifier := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	resp, err := svc.Reject(context.Background(), teacher.ID, "  ")
	if err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if resp.IsApproved || resp.IsActive {
		t.Errorf("reject should clear approved and active: %+v", resp)
	}
	if !resp.IsEmailVerified {
		t.Error("reject must leave email verification unchanged")
	}

	notifier.Wait()
	msgs := sender.messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0].Body, "Reason: Application rejected by administrator") {
		t.Errorf("expected rejection mail with default reason, got %+v", msgs)
	}
}

// ── course assignment ──

func TestTeacherService_AssignCourse(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)
	course := &model.Course{Name: "Operating Systems", Code: "CS301"}
	_ = mocks.course.Create(context.Background(), course)

	if err := svc.AssignCourse(context.Background(), course.ID, teacher.ID); err != nil {
		t.Fatalf("AssignCourse failed: %v", err)
	}
	if !mocks.teacher.courses[teacher.ID][course.ID] {
		t.Error("course should be linked to teacher")
	}

	if err := svc.UnassignCourse(context.Background(), course.ID, teacher.ID); err != nil {
		t.Fatalf("UnassignCourse failed: %v", err)
	}
	if mocks.teacher.courses[teacher.ID][course.ID] {
		t.Error("course should be unlinked")
	}
}

func TestTeacherService_AssignCourse_UnknownCourse(t *testing.T) {
	svc, mocks, _, _ := setupTestTeacherService()
	teacher := seedTeacher(t, mocks, "asha@mitaoe.ac.in", true, true, true)

	err := svc.AssignCourse(context.Background(), 404, teacher.ID)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}
