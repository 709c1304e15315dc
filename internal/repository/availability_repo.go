package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// AvailabilityRepository teacher availability data access.
type AvailabilityRepository interface {
	Create(ctx context.Context, a *model.TeacherAvailability) error
	GetByID(ctx context.Context, id uint) (*model.TeacherAvailability, error)
	// ListByTeacher filters by day when day is non-empty.
	ListByTeacher(ctx context.Context, teacherID uint, day model.DayOfWeek) ([]model.TeacherAvailability, error)
	Update(ctx context.Context, a *model.TeacherAvailability) error
	Delete(ctx context.Context, id uint) error
	// ExistsCovering reports whether an available window on day spans [start, end].
	ExistsCovering(ctx context.Context, teacherID uint, day model.DayOfWeek, start, end string) (bool, error)
}

type availabilityRepo struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(ctx context.Context, a *model.TeacherAvailability) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
	return database.TranslateError(err)
}

func (r *availabilityRepo) GetByID(ctx context.Context, id uint) (*model.TeacherAvailability, error) {
	var a model.TeacherAvailability
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *availabilityRepo) ListByTeacher(ctx context.Context, teacherID uint, day model.DayOfWeek) ([]model.TeacherAvailability, error) {
	var list []model.TeacherAvailability
	db := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID)
	if day != "" {
		db = db.Where("day_of_week = ?", day)
	}
	err := db.Order("start_time ASC").Find(&list).Error
	return list, err
}

func (r *availabilityRepo) Update(ctx context.Context, a *model.TeacherAvailability) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
	return database.TranslateError(err)
}

func (r *availabilityRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TeacherAvailability{}, id).Error
}

func (r *availabilityRepo) ExistsCovering(ctx context.Context, teacherID uint, day model.DayOfWeek, start, end string) (bool, error) {
	return exists(ctx, r.db, &model.TeacherAvailability{},
		"teacher_id = ? AND day_of_week = ? AND is_available = ? AND start_time <= ? AND end_time >= ?",
		teacherID, day, true, start, end)
}
