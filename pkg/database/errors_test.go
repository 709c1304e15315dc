package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "samaysetu/backend/pkg/errors"
)

func TestTranslateError_DuplicateFromDetail(t *testing.T) {
	err := TranslateError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uk_teachers_email",
		Detail:         "Key (email)=(asha@mitaoe.ac.in) already exists.",
	})

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %T", err)
	}
	if dup.Field != "email" || dup.Value != "asha@mitaoe.ac.in" {
		t.Errorf("unexpected field/value %q/%q", dup.Field, dup.Value)
	}
	if err.Error() != "A record with email 'asha@mitaoe.ac.in' already exists." {
		t.Errorf("unexpected message %q", err.Error())
	}
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("expected conflict kind, got %v", apperrors.KindOf(err))
	}
	if !errors.Is(err, ErrDuplicateKey) {
		t.Error("expected errors.Is(err, ErrDuplicateKey)")
	}
}

func TestTranslateError_DuplicateFromConstraint(t *testing.T) {
	err := TranslateError(&pgconn.PgError{Code: "23505", ConstraintName: "uk_academic_years_year_name"})

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %T", err)
	}
	if dup.Field != "year name" {
		t.Errorf("expected field 'year name', got %q", dup.Field)
	}
}

func TestTranslateError_DuplicateCompoundIndex(t *testing.T) {
	err := TranslateError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uk_timetable_teacher_slot",
		Detail:         "Key (day_of_week, time_slot_id, academic_year_id, teacher_id)=(MONDAY, 3, 1, 7) already exists.",
	})

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %T", err)
	}
	if dup.Constraint != "uk_timetable_teacher_slot" {
		t.Errorf("unexpected constraint %q", dup.Constraint)
	}
	if dup.Field != "teacher id" {
		t.Errorf("expected field 'teacher id', got %q", dup.Field)
	}
}

func TestTranslateError_DuplicateFallback(t *testing.T) {
	err := TranslateError(&pgconn.PgError{Code: "23505", ConstraintName: "some_index"})
	if err.Error() != "A record with this value already exists." {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestTranslateError_NotNull(t *testing.T) {
	err := TranslateError(&pgconn.PgError{Code: "23502", ColumnName: "room_number"})

	appErr, ok := apperrors.As(err)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if appErr.Kind != apperrors.KindValidation {
		t.Errorf("expected validation kind, got %v", appErr.Kind)
	}
	if appErr.Message != "room number is required." {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestTranslateError_ForeignKey(t *testing.T) {
	err := TranslateError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}))
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected not-found kind, got %v", apperrors.KindOf(err))
	}
}

func TestTranslateError_Passthrough(t *testing.T) {
	if TranslateError(nil) != nil {
		t.Error("nil should stay nil")
	}
	plain := errors.New("boom")
	if TranslateError(plain) != plain {
		t.Error("non-driver errors should pass through")
	}
}
