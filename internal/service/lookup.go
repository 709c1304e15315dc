package service

import (
	"context"

	"go.uber.org/zap"

	"samaysetu/backend/internal/repository"
	pkgerrors "samaysetu/backend/pkg/errors"
)

// ensure returns notFound unless check reports the id present.
func ensure(ctx context.Context, check func(context.Context, uint) (bool, error), id uint, notFound error) error {
	ok, err := check(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

func ensureDepartment(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.Department.Exists, id, ErrDepartmentNotFound)
}

func ensureAcademicYear(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.AcademicYear.Exists, id, ErrAcademicYearNotFound)
}

func ensureTeacher(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.Teacher.Exists, id, ErrTeacherNotFound)
}

func ensureCourse(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.Course.Exists, id, ErrCourseNotFound)
}

func ensureRoom(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.ClassRoom.Exists, id, ErrRoomNotFound)
}

func ensureDivision(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.Division.Exists, id, ErrDivisionNotFound)
}

func ensureTimeSlot(ctx context.Context, repo *repository.Repository, id uint) error {
	return ensure(ctx, repo.TimeSlot.Exists, id, ErrTimeSlotNotFound)
}

// boolOr dereferences p, falling back to def when nil.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// logUnclassified logs err unless it is a classified business error.
func logUnclassified(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	if pkgerrors.KindOf(err) != pkgerrors.KindInternal {
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}
