package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/database"
)

// TimetableService manual scheduling and timetable reads.
type TimetableService interface {
	// CreateManual books one entry. References are checked first, then the teacher,
	// room and division dimensions in that order; the first clash wins.
	CreateManual(ctx context.Context, req *dto.ManualTimetableRequest) (*dto.TimetableEntryResponse, error)
	ListByDivision(ctx context.Context, divisionID, academicYearID uint) ([]dto.TimetableEntryResponse, error)
	ListByTeacher(ctx context.Context, teacherID, academicYearID uint) ([]dto.TimetableEntryResponse, error)
	Delete(ctx context.Context, id uint) error
	// TeacherLoad sums the slot minutes booked for a teacher. Informational only.
	TeacherLoad(ctx context.Context, teacherID, academicYearID uint) (*dto.TeacherLoadResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

// ────────────────────── CreateManual ──────────────────────

func (s *timetableService) CreateManual(ctx context.Context, req *dto.ManualTimetableRequest) (*dto.TimetableEntryResponse, error) {
	day := model.DayOfWeek(req.DayOfWeek)
	if !day.Valid() {
		return nil, ErrInvalidDayOfWeek
	}

	weekNumber := 1
	if req.WeekNumber != nil {
		weekNumber = *req.WeekNumber
	}

	entry := &model.TimetableEntry{
		DivisionID:     req.DivisionID,
		CourseID:       req.CourseID,
		TeacherID:      req.TeacherID,
		RoomID:         req.RoomID,
		TimeSlotID:     req.TimeSlotID,
		AcademicYearID: req.AcademicYearID,
		DayOfWeek:      day,
		WeekNumber:     weekNumber,
		IsRecurring:    boolOr(req.IsRecurring, true),
		Notes:          req.Notes,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := checkReferences(ctx, tx, entry); err != nil {
			return err
		}
		if err := checkConflicts(ctx, tx, entry); err != nil {
			return err
		}
		return conflictFromConstraint(tx.Timetable.Create(ctx, entry))
	})
	if err != nil {
		logUnclassified(s.logger, "failed to create timetable entry", err,
			zap.Uint("division_id", req.DivisionID), zap.Uint("teacher_id", req.TeacherID))
		return nil, err
	}

	s.logger.Info("timetable entry created",
		zap.Uint("id", entry.ID),
		zap.String("day", string(entry.DayOfWeek)),
		zap.Uint("time_slot_id", entry.TimeSlotID),
	)

	saved, err := s.repo.Timetable.GetByID(ctx, entry.ID)
	if err != nil {
		s.logger.Error("failed to reload timetable entry", zap.Uint("id", entry.ID), zap.Error(err))
		return nil, err
	}
	resp := dto.NewTimetableEntryResponse(saved)
	return &resp, nil
}

func checkReferences(ctx context.Context, repo *repository.Repository, e *model.TimetableEntry) error {
	checks := []func() error{
		func() error { return ensureTeacher(ctx, repo, e.TeacherID) },
		func() error { return ensureTimeSlot(ctx, repo, e.TimeSlotID) },
		func() error { return ensureRoom(ctx, repo, e.RoomID) },
		func() error { return ensureDivision(ctx, repo, e.DivisionID) },
		func() error { return ensureCourse(ctx, repo, e.CourseID) },
		func() error { return ensureAcademicYear(ctx, repo, e.AcademicYearID) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func checkConflicts(ctx context.Context, repo *repository.Repository, e *model.TimetableEntry) error {
	key := repository.SlotKey{
		DayOfWeek:      e.DayOfWeek,
		TimeSlotID:     e.TimeSlotID,
		AcademicYearID: e.AcademicYearID,
	}

	busy, err := repo.Timetable.ExistsTeacherBooking(ctx, key, e.TeacherID)
	if err != nil {
		return err
	}
	if busy {
		return ErrTeacherConflict
	}

	busy, err = repo.Timetable.ExistsRoomBooking(ctx, key, e.RoomID)
	if err != nil {
		return err
	}
	if busy {
		return ErrRoomConflict
	}

	busy, err = repo.Timetable.ExistsDivisionBooking(ctx, key, e.DivisionID)
	if err != nil {
		return err
	}
	if busy {
		return ErrDivisionConflict
	}
	return nil
}

// conflictFromConstraint maps a unique-index violation from a concurrent booking
// onto the matching conflict.
func conflictFromConstraint(err error) error {
	var dup *database.DuplicateKeyError
	if !errors.As(err, &dup) {
		return err
	}
	switch dup.Constraint {
	case repository.ConstraintTeacherSlot:
		return ErrTeacherConflict
	case repository.ConstraintRoomSlot:
		return ErrRoomConflict
	case repository.ConstraintDivisionSlot:
		return ErrDivisionConflict
	}
	return err
}

// ────────────────────── Read ──────────────────────

func (s *timetableService) ListByDivision(ctx context.Context, divisionID, academicYearID uint) ([]dto.TimetableEntryResponse, error) {
	entries, err := s.repo.Timetable.ListByDivision(ctx, divisionID, academicYearID)
	if err != nil {
		s.logger.Error("failed to list division timetable", zap.Uint("division_id", divisionID), zap.Error(err))
		return nil, err
	}
	sortEntries(entries)
	return dto.NewTimetableEntryResponses(entries), nil
}

func (s *timetableService) ListByTeacher(ctx context.Context, teacherID, academicYearID uint) ([]dto.TimetableEntryResponse, error) {
	entries, err := s.repo.Timetable.ListByTeacher(ctx, teacherID, academicYearID)
	if err != nil {
		s.logger.Error("failed to list teacher timetable", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	sortEntries(entries)
	return dto.NewTimetableEntryResponses(entries), nil
}

// ────────────────────── Delete ──────────────────────

func (s *timetableService) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Timetable.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check timetable entry", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return notFoundWithID(ErrTimetableEntryNotFound, "Timetable entry", id)
	}
	if err := s.repo.Timetable.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete timetable entry", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── TeacherLoad ──────────────────────

func (s *timetableService) TeacherLoad(ctx context.Context, teacherID, academicYearID uint) (*dto.TeacherLoadResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrTeacherNotFound, "Teacher", teacherID)
		}
		s.logger.Error("failed to load teacher", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}

	entries, err := s.repo.Timetable.ListByTeacher(ctx, teacherID, academicYearID)
	if err != nil {
		s.logger.Error("failed to list teacher timetable", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}

	minutes := 0
	for _, e := range entries {
		if e.TimeSlot != nil {
			minutes += e.TimeSlot.DurationMinutes
		}
	}

	return &dto.TeacherLoadResponse{
		TeacherID:        teacherID,
		AcademicYearID:   academicYearID,
		ScheduledMinutes: minutes,
		WeeklyHoursLimit: teacher.WeeklyHoursLimit,
		Entries:          len(entries),
		OverLimit:        minutes > teacher.WeeklyHoursLimit*60,
	}, nil
}

// ── helpers ──

// sortEntries orders by day (Monday first) then slot start time.
func sortEntries(entries []model.TimetableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].DayOfWeek.Index(), entries[j].DayOfWeek.Index()
		if di != dj {
			return di < dj
		}
		si, sj := slotStart(&entries[i]), slotStart(&entries[j])
		if si != sj {
			return si < sj
		}
		return entries[i].ID < entries[j].ID
	})
}

func slotStart(e *model.TimetableEntry) int {
	if e.TimeSlot == nil {
		return 0
	}
	m, err := model.ParseClock(e.TimeSlot.StartTime)
	if err != nil {
		return 0
	}
	return m
}
