package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// CourseRepository course data access.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	// List filters by department when departmentID is non-zero.
	List(ctx context.Context, departmentID uint) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(course).Error
	return database.TranslateError(err)
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, departmentID uint) ([]model.Course, error) {
	var courses []model.Course
	db := r.db.WithContext(ctx).Preload("Department")
	if departmentID != 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	err := db.Order("code ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(course).Error
	return database.TranslateError(err)
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

func (r *courseRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.Course{}, "id = ?", id)
}
