package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// StudentRepository student data access.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	// List filters by division when divisionID is non-zero.
	List(ctx context.Context, divisionID uint) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(student).Error
	return database.TranslateError(err)
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Division").
		First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, divisionID uint) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx)
	if divisionID != 0 {
		db = db.Where("division_id = ?", divisionID)
	}
	err := db.Order("roll_number ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(student).Error
	return database.TranslateError(err)
}

func (r *studentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *studentRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.Student{}, "id = ?", id)
}
