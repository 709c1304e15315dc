package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
)

// Compound unique indexes on timetable_entries, one per conflict dimension.
const (
	ConstraintTeacherSlot  = "uk_timetable_teacher_slot"
	ConstraintRoomSlot     = "uk_timetable_room_slot"
	ConstraintDivisionSlot = "uk_timetable_division_slot"
)

// SlotKey identifies a bookable cell: day, slot and academic year.
type SlotKey struct {
	DayOfWeek      model.DayOfWeek
	TimeSlotID     uint
	AcademicYearID uint
}

// TimetableRepository timetable entry data access.
type TimetableRepository interface {
	Create(ctx context.Context, entry *model.TimetableEntry) error
	// GetByID loads the entry with every reference preloaded.
	GetByID(ctx context.Context, id uint) (*model.TimetableEntry, error)
	ExistsTeacherBooking(ctx context.Context, key SlotKey, teacherID uint) (bool, error)
	ExistsRoomBooking(ctx context.Context, key SlotKey, roomID uint) (bool, error)
	ExistsDivisionBooking(ctx context.Context, key SlotKey, divisionID uint) (bool, error)
	ListByDivision(ctx context.Context, divisionID, academicYearID uint) ([]model.TimetableEntry, error)
	ListByTeacher(ctx context.Context, teacherID, academicYearID uint) ([]model.TimetableEntry, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type timetableRepo struct {
	db *gorm.DB
}

func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) Create(ctx context.Context, entry *model.TimetableEntry) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
	return database.TranslateError(err)
}

func (r *timetableRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Division").
		Preload("Course").
		Preload("Teacher").
		Preload("Room").
		Preload("TimeSlot").
		Preload("AcademicYear")
}

func (r *timetableRepo) GetByID(ctx context.Context, id uint) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	if err := r.preloaded(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepo) existsAt(ctx context.Context, key SlotKey, column string, id uint) (bool, error) {
	return exists(ctx, r.db, &model.TimetableEntry{},
		"day_of_week = ? AND time_slot_id = ? AND academic_year_id = ? AND "+column+" = ?",
		key.DayOfWeek, key.TimeSlotID, key.AcademicYearID, id)
}

func (r *timetableRepo) ExistsTeacherBooking(ctx context.Context, key SlotKey, teacherID uint) (bool, error) {
	return r.existsAt(ctx, key, "teacher_id", teacherID)
}

func (r *timetableRepo) ExistsRoomBooking(ctx context.Context, key SlotKey, roomID uint) (bool, error) {
	return r.existsAt(ctx, key, "room_id", roomID)
}

func (r *timetableRepo) ExistsDivisionBooking(ctx context.Context, key SlotKey, divisionID uint) (bool, error) {
	return r.existsAt(ctx, key, "division_id", divisionID)
}

func (r *timetableRepo) ListByDivision(ctx context.Context, divisionID, academicYearID uint) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.preloaded(ctx).
		Where("division_id = ? AND academic_year_id = ?", divisionID, academicYearID).
		Find(&entries).Error
	return entries, err
}

func (r *timetableRepo) ListByTeacher(ctx context.Context, teacherID, academicYearID uint) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.preloaded(ctx).
		Where("teacher_id = ? AND academic_year_id = ?", teacherID, academicYearID).
		Find(&entries).Error
	return entries, err
}

func (r *timetableRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TimetableEntry{}, id).Error
}

func (r *timetableRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.TimetableEntry{}, "id = ?", id)
}
