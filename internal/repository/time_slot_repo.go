package repository

import (
	"context"

	"gorm.io/gorm"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// TimeSlotRepository time slot data access.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	GetByID(ctx context.Context, id uint) (*model.TimeSlot, error)
	List(ctx context.Context, activeOnly bool) ([]model.TimeSlot, error)
	Update(ctx context.Context, slot *model.TimeSlot) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type timeSlotRepo struct {
	db *gorm.DB
}

func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) Create(ctx context.Context, slot *model.TimeSlot) error {
	return database.TranslateError(r.db.WithContext(ctx).Create(slot).Error)
}

func (r *timeSlotRepo) GetByID(ctx context.Context, id uint) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) List(ctx context.Context, activeOnly bool) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	db := r.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("start_time ASC").Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) Update(ctx context.Context, slot *model.TimeSlot) error {
	return database.TranslateError(r.db.WithContext(ctx).Save(slot).Error)
}

func (r *timeSlotRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TimeSlot{}, id).Error
}

func (r *timeSlotRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.TimeSlot{}, "id = ?", id)
}
