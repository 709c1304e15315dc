package repository

import (
	"context"

	"gorm.io/gorm"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// ConstraintCurrentYear partial unique index allowing a single current year.
const ConstraintCurrentYear = "uk_academic_years_current"

// AcademicYearRepository academic year data access.
type AcademicYearRepository interface {
	Create(ctx context.Context, year *model.AcademicYear) error
	GetByID(ctx context.Context, id uint) (*model.AcademicYear, error)
	// GetCurrent returns gorm.ErrRecordNotFound when no year is current.
	GetCurrent(ctx context.Context) (*model.AcademicYear, error)
	List(ctx context.Context) ([]model.AcademicYear, error)
	Update(ctx context.Context, year *model.AcademicYear) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type academicYearRepo struct {
	db *gorm.DB
}

func NewAcademicYearRepo(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepo{db: db}
}

func (r *academicYearRepo) Create(ctx context.Context, year *model.AcademicYear) error {
	return database.TranslateError(r.db.WithContext(ctx).Create(year).Error)
}

func (r *academicYearRepo) GetByID(ctx context.Context, id uint) (*model.AcademicYear, error) {
	var year model.AcademicYear
	if err := r.db.WithContext(ctx).First(&year, id).Error; err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepo) GetCurrent(ctx context.Context) (*model.AcademicYear, error) {
	var year model.AcademicYear
	err := r.db.WithContext(ctx).
		Where("is_current = ?", true).
		Order("id ASC").
		First(&year).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepo) List(ctx context.Context) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&years).Error
	return years, err
}

func (r *academicYearRepo) Update(ctx context.Context, year *model.AcademicYear) error {
	return database.TranslateError(r.db.WithContext(ctx).Save(year).Error)
}

func (r *academicYearRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AcademicYear{}, id).Error
}

func (r *academicYearRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.AcademicYear{}, "id = ?", id)
}
