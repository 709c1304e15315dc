package service

import (
	pkgerrors "samaysetu/backend/pkg/errors"
)

// ── not found ──

var (
	ErrDepartmentNotFound     = pkgerrors.New(pkgerrors.KindNotFound, 40410, "Department not found")
	ErrAcademicYearNotFound   = pkgerrors.New(pkgerrors.KindNotFound, 40411, "Academic year not found")
	ErrTeacherNotFound        = pkgerrors.New(pkgerrors.KindNotFound, 40412, "Teacher not found")
	ErrCourseNotFound         = pkgerrors.New(pkgerrors.KindNotFound, 40413, "Course not found")
	ErrRoomNotFound           = pkgerrors.New(pkgerrors.KindNotFound, 40414, "Room not found")
	ErrDivisionNotFound       = pkgerrors.New(pkgerrors.KindNotFound, 40415, "Division not found")
	ErrStudentNotFound        = pkgerrors.New(pkgerrors.KindNotFound, 40416, "Student not found")
	ErrTimeSlotNotFound       = pkgerrors.New(pkgerrors.KindNotFound, 40417, "TimeSlot not found")
	ErrAvailabilityNotFound   = pkgerrors.New(pkgerrors.KindNotFound, 40418, "Availability not found")
	ErrTimetableEntryNotFound = pkgerrors.New(pkgerrors.KindNotFound, 40419, "Timetable entry not found")
	ErrEmailNotFound          = pkgerrors.New(pkgerrors.KindNotFound, 40420, "Email not found")
)

// ── conflicts ──

var (
	ErrTeacherConflict  = pkgerrors.New(pkgerrors.KindConflict, 40910, "Teacher already assigned at this time in this academic year")
	ErrRoomConflict     = pkgerrors.New(pkgerrors.KindConflict, 40911, "Room already occupied at this time in this academic year")
	ErrDivisionConflict = pkgerrors.New(pkgerrors.KindConflict, 40912, "Division already has a lecture at this time in this academic year")

	ErrCurrentYearConflict = pkgerrors.New(pkgerrors.KindConflict, 40913, "Another academic year is already set as current")

	ErrEmailRegistered          = pkgerrors.New(pkgerrors.KindConflict, 40914, "Email already registered")
	ErrEmployeeIDExists         = pkgerrors.New(pkgerrors.KindConflict, 40915, "Employee ID already exists")
	ErrApproveUnverifiedTeacher = pkgerrors.New(pkgerrors.KindConflict, 40916, "Cannot approve teacher - email not verified")
)

// ── validation ──

var (
	ErrInstitutionEmail         = pkgerrors.New(pkgerrors.KindValidation, 40010, "Only college email is allowed")
	ErrInvalidVerificationToken = pkgerrors.New(pkgerrors.KindValidation, 40011, "Invalid verification token")
	ErrVerificationTokenExpired = pkgerrors.New(pkgerrors.KindValidation, 40012, "Verification token has expired")
	ErrInvalidResetToken        = pkgerrors.New(pkgerrors.KindValidation, 40013, "Invalid password reset token")
	ErrResetTokenExpired        = pkgerrors.New(pkgerrors.KindValidation, 40014, "Password reset token has expired")
	ErrInvalidTimeWindow        = pkgerrors.New(pkgerrors.KindValidation, 40015, "End time must be after start time")
	ErrInvalidDateRange         = pkgerrors.New(pkgerrors.KindValidation, 40016, "End date must be after start date")
	ErrInvalidDayOfWeek         = pkgerrors.New(pkgerrors.KindValidation, 40017, "Invalid day of week")
	ErrInvalidValue             = pkgerrors.New(pkgerrors.KindValidation, 40018, "Invalid value")
)

// ── authentication ──

var (
	ErrUserNotFound     = pkgerrors.New(pkgerrors.KindUnauthorized, 40110, "The user is not found")
	ErrEmailNotVerified = pkgerrors.New(pkgerrors.KindUnauthorized, 40111, "Email not verified. Please check your email for verification link.")
	ErrPendingApproval  = pkgerrors.New(pkgerrors.KindUnauthorized, 40112, "Your account is pending admin approval. Please wait for approval.")
	ErrAccountInactive  = pkgerrors.New(pkgerrors.KindUnauthorized, 40113, "Account is not active. Please contact administrator.")
	ErrBadCredentials   = pkgerrors.New(pkgerrors.KindUnauthorized, 40114, "Email or password is incorrect")
)

var ErrNotOwnAvailability = pkgerrors.New(pkgerrors.KindForbidden, 40310, "You can only manage your own availability")

// ── internal ──

var (
	ErrResetMailFailed = pkgerrors.New(pkgerrors.KindInternal, 50010, "Failed to send password reset email")
	ErrExportFailed    = pkgerrors.New(pkgerrors.KindInternal, 50011, "Failed to generate export file")
)

// notFoundWithID formats "<Entity> not found with id: N" from a not-found sentinel.
func notFoundWithID(sentinel *pkgerrors.Error, entity string, id uint) error {
	return sentinel.Withf("%s not found with id: %d", entity, id)
}
