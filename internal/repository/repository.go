package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every data-access interface.
type Repository struct {
	Department   DepartmentRepository
	AcademicYear AcademicYearRepository
	Teacher      TeacherRepository
	Course       CourseRepository
	ClassRoom    ClassRoomRepository
	Division     DivisionRepository
	Student      StudentRepository
	TimeSlot     TimeSlotRepository
	Availability AvailabilityRepository
	Timetable    TimetableRepository

	db *gorm.DB
}

// NewRepository builds the aggregate over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department:   NewDepartmentRepo(db),
		AcademicYear: NewAcademicYearRepo(db),
		Teacher:      NewTeacherRepo(db),
		Course:       NewCourseRepo(db),
		ClassRoom:    NewClassRoomRepo(db),
		Division:     NewDivisionRepo(db),
		Student:      NewStudentRepo(db),
		TimeSlot:     NewTimeSlotRepo(db),
		Availability: NewAvailabilityRepo(db),
		Timetable:    NewTimetableRepo(db),
		db:           db,
	}
}

// Transaction runs fn against a Repository bound to one database transaction.
// A Repository assembled without a database (unit tests) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// exists reports whether any row of m matches the condition.
func exists(ctx context.Context, db *gorm.DB, m interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(m).
		Where(query, args...).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
