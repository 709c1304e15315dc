package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/database"
	pkgerrors "samaysetu/backend/pkg/errors"
)

// TeacherRepository teacher data access, including the lookups the account
// lifecycle needs.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id uint) (*model.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	GetByVerificationToken(ctx context.Context, token string) (*model.Teacher, error)
	GetByResetToken(ctx context.Context, token string) (*model.Teacher, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Teacher, error)
	// ListPendingApproval returns teachers with a verified email awaiting approval.
	ListPendingApproval(ctx context.Context) ([]model.Teacher, error)
	// Update writes every column with an optimistic version check.
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id uint) error

	AddCourse(ctx context.Context, teacherID, courseID uint) error
	RemoveCourse(ctx context.Context, teacherID, courseID uint) error
}

type teacherRepo struct {
	db *gorm.DB
}

func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(teacher).Error
	return database.TranslateError(err)
}

func (r *teacherRepo) GetByID(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Courses").
		First(&teacher, id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *teacherRepo) GetByVerificationToken(ctx context.Context, token string) (*model.Teacher, error) {
	return r.getBy(ctx, "verification_token = ?", token)
}

func (r *teacherRepo) GetByResetToken(ctx context.Context, token string) (*model.Teacher, error) {
	return r.getBy(ctx, "reset_token = ?", token)
}

func (r *teacherRepo) getBy(ctx context.Context, query string, arg interface{}) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where(query, arg).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, &model.Teacher{}, "email = ?", email)
}

func (r *teacherRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return exists(ctx, r.db, &model.Teacher{}, "employee_id = ?", employeeID)
}

func (r *teacherRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &model.Teacher{}, "id = ?", id)
}

func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) ListPendingApproval(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("is_email_verified = ? AND is_approved = ?", true, false).
		Order("created_at ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	oldVersion := teacher.Version
	teacher.Version = oldVersion + 1

	result := r.db.WithContext(ctx).
		Model(teacher).
		Where("version = ?", oldVersion).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(teacher)
	if result.Error != nil {
		teacher.Version = oldVersion
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		teacher.Version = oldVersion
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *teacherRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, id).Error
}

// ── course assignment ──

func (r *teacherRepo) AddCourse(ctx context.Context, teacherID, courseID uint) error {
	err := r.db.WithContext(ctx).
		Exec("INSERT INTO teacher_courses (teacher_id, course_id) VALUES (?, ?) ON CONFLICT DO NOTHING", teacherID, courseID).
		Error
	return database.TranslateError(err)
}

func (r *teacherRepo) RemoveCourse(ctx context.Context, teacherID, courseID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM teacher_courses WHERE teacher_id = ? AND course_id = ?", teacherID, courseID).
		Error
}
