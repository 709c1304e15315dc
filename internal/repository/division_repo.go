package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// DivisionRepository division data access.
type DivisionRepository interface {
	Create(ctx context.Context, division *model.Division) error
	GetByID(ctx context.Context, id uint) (*model.Division, error)
	List(ctx context.Context) ([]model.Division, error)
	Update(ctx context.Context, division *model.Division) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type divisionRepo struct {
	db *gorm.DB
}

func NewDivisionRepo(db *gorm.DB) DivisionRepository {
	return &divisionRepo{db: db}
}

func (r *divisionRepo) Create(ctx context.Context, division *model.Division) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(division).Error
	return database.TranslateError(err)
}

func (r *divisionRepo) GetByID(ctx context.Context, id uint) (*model.Division, error) {
	var division model.Division
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("AcademicYear").
		First(&division, id).Error
	if err != nil {
		return nil, err
	}
	return &division, nil
}

func (r *divisionRepo) List(ctx context.Context) ([]model.Division, error) {
	var divisions []model.Division
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("AcademicYear").
		Order("year ASC, name ASC").
		Find(&divisions).Error
	return divisions, err
}

func (r *divisionRepo) Update(ctx context.Context, division *model.Division) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(division).Error
	return database.TranslateError(err)
}

func (r *divisionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Division{}, id).Error
}

func (r *divisionRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.Division{}, "id = ?", id)
}
