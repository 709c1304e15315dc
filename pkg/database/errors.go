package database

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "samaysetu/backend/pkg/errors"
)

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

var (
	ErrDuplicateKey      = apperrors.New(apperrors.KindConflict, 40901, "Duplicate value")
	ErrMissingColumn     = apperrors.New(apperrors.KindValidation, 40001, "Required value missing")
	ErrReferenceNotFound = apperrors.New(apperrors.KindNotFound, 40401, "Referenced record not found")
	ErrCheckViolation    = apperrors.New(apperrors.KindValidation, 40002, "Value out of range")
)

// DuplicateKeyError a unique constraint rejected a write.
type DuplicateKeyError struct {
	Constraint string
	Field      string
	Value      string
	Err        error
}

func (e *DuplicateKeyError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("A record with %s already exists.", e.Field)
	}
	return fmt.Sprintf("A record with %s '%s' already exists.", e.Field, e.Value)
}

// Unwrap exposes the classified conflict and the driver error.
func (e *DuplicateKeyError) Unwrap() []error {
	return []error{ErrDuplicateKey.WithMessage(e.Error()), e.Err}
}

// Key (email)=(asha@mitaoe.ac.in) already exists.
var detailPattern = regexp.MustCompile(`Key \(([^)]+)\)=\((.*)\)`)

// tables in the order they appear in constraint names, longest first
var tables = []string{
	"teacher_availability", "timetable_entries", "academic_years", "teacher_courses",
	"departments", "classrooms", "time_slots", "divisions", "students", "teachers", "courses",
}

// TranslateError maps driver errors to application errors; other errors pass through.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		field, value := duplicateField(pgErr)
		return &DuplicateKeyError{
			Constraint: pgErr.ConstraintName,
			Field:      field,
			Value:      value,
			Err:        err,
		}
	case codeNotNullViolation:
		column := pgErr.ColumnName
		if column == "" {
			column = "value"
		}
		return ErrMissingColumn.Withf("%s is required.", humanize(column)).Wrap(err)
	case codeForeignKeyViolation:
		return ErrReferenceNotFound.Wrap(err)
	case codeCheckViolation:
		return ErrCheckViolation.Withf("Value violates %s", pgErr.ConstraintName).Wrap(err)
	default:
		return err
	}
}

// duplicateField infers the offending column, from the detail first and then from
// the constraint name, falling back to "this value".
func duplicateField(pgErr *pgconn.PgError) (string, string) {
	if m := detailPattern.FindStringSubmatch(pgErr.Detail); m != nil {
		cols := strings.Split(m[1], ",")
		if len(cols) == 1 {
			return humanize(strings.TrimSpace(cols[0])), m[2]
		}
		return humanize(strings.TrimSpace(cols[len(cols)-1])), ""
	}

	name := strings.TrimPrefix(pgErr.ConstraintName, "uk_")
	if name != pgErr.ConstraintName {
		for _, t := range tables {
			if strings.HasPrefix(name, t+"_") {
				return humanize(strings.TrimPrefix(name, t+"_")), ""
			}
		}
	}
	return "this value", ""
}

func humanize(column string) string {
	return strings.ReplaceAll(column, "_", " ")
}
