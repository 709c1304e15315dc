package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// ClassRoomRepository classroom data access.
type ClassRoomRepository interface {
	Create(ctx context.Context, room *model.ClassRoom) error
	GetByID(ctx context.Context, id uint) (*model.ClassRoom, error)
	List(ctx context.Context) ([]model.ClassRoom, error)
	Update(ctx context.Context, room *model.ClassRoom) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type classRoomRepo struct {
	db *gorm.DB
}

func NewClassRoomRepo(db *gorm.DB) ClassRoomRepository {
	return &classRoomRepo{db: db}
}

func (r *classRoomRepo) Create(ctx context.Context, room *model.ClassRoom) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(room).Error
	return database.TranslateError(err)
}

func (r *classRoomRepo) GetByID(ctx context.Context, id uint) (*model.ClassRoom, error) {
	var room model.ClassRoom
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *classRoomRepo) List(ctx context.Context) ([]model.ClassRoom, error) {
	var rooms []model.ClassRoom
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *classRoomRepo) Update(ctx context.Context, room *model.ClassRoom) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(room).Error
	return database.TranslateError(err)
}

func (r *classRoomRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ClassRoom{}, id).Error
}

func (r *classRoomRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.ClassRoom{}, "id = ?", id)
}
