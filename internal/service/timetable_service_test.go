package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/database"
)

// timetableFixture ids of the seeded references.
type timetableFixture struct {
	year      uint
	slot      uint
	course    uint
	divisions map[int]uint // label → id
	teachers  map[int]uint
	rooms     map[int]uint
}

func setupTestTimetableService(t *testing.T) (TimetableService, *mockRepos, timetableFixture) {
	t.Helper()
	repo, mocks := newMockRepos()
	ctx := context.Background()

	fx := timetableFixture{
		divisions: make(map[int]uint),
		teachers:  make(map[int]uint),
		rooms:     make(map[int]uint),
	}

	year := &model.AcademicYear{YearName: "2024-25", IsCurrent: true}
	_ = mocks.year.Create(ctx, year)
	fx.year = year.ID

	slot := &model.TimeSlot{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60, IsActive: true}
	_ = mocks.slot.Create(ctx, slot)
	fx.slot = slot.ID

	course := &model.Course{Name: "Data Structures", Code: "CS201"}
	_ = mocks.course.Create(ctx, course)
	fx.course = course.ID

	for _, label := range []int{1, 5} {
		d := &model.Division{Name: "D", Year: 2, Branch: "Computer"}
		_ = mocks.division.Create(ctx, d)
		fx.divisions[label] = d.ID
	}
	for _, label := range []int{7, 9} {
		teacher := &model.Teacher{Name: "T", Email: "t@mitaoe.ac.in", WeeklyHoursLimit: 25}
		_ = mocks.teacher.Create(ctx, teacher)
		fx.teachers[label] = teacher.ID
	}
	for _, label := range []int{2, 9} {
		r := &model.ClassRoom{Name: "R", RoomNumber: "R"}
		_ = mocks.room.Create(ctx, r)
		fx.rooms[label] = r.ID
	}

	return NewTimetableService(repo, zap.NewNop()), mocks, fx
}

func (fx timetableFixture) request(division, teacher, room int, day string) *dto.ManualTimetableRequest {
	return &dto.ManualTimetableRequest{
		DivisionID:     fx.divisions[division],
		CourseID:       fx.course,
		TeacherID:      fx.teachers[teacher],
		RoomID:         fx.rooms[room],
		TimeSlotID:     fx.slot,
		AcademicYearID: fx.year,
		DayOfWeek:      day,
	}
}

func TestTimetableService_CreateManual_ConflictDimensions(t *testing.T) {
	svc, mocks, fx := setupTestTimetableService(t)
	ctx := context.Background()

	// A = (div 1, teacher 7, room 2, Monday)
	a, err := svc.CreateManual(ctx, fx.request(1, 7, 2, "MONDAY"))
	if err != nil {
		t.Fatalf("entry A should succeed: %v", err)
	}
	if a.WeekNumber != 1 || !a.IsRecurring {
		t.Errorf("defaults not applied: week=%d recurring=%v", a.WeekNumber, a.IsRecurring)
	}

	tests := []struct {
		name                    string
		division, teacher, room int
		day                     string
		want                    error
	}{
		{"B teacher clash", 5, 7, 9, "MONDAY", ErrTeacherConflict},
		{"C room clash", 1, 9, 2, "MONDAY", ErrRoomConflict},
		{"D division clash", 1, 9, 9, "MONDAY", ErrDivisionConflict},
		{"E same as A on Tuesday", 1, 7, 2, "TUESDAY", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateManual(ctx, fx.request(tt.division, tt.teacher, tt.room, tt.day))
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if len(mocks.timetable.entries) != 2 {
		t.Errorf("stored entries = %d, want 2 (A and E)", len(mocks.timetable.entries))
	}
}

func TestTimetableService_CreateManual_OtherYearDoesNotClash(t *testing.T) {
	svc, mocks, fx := setupTestTimetableService(t)
	ctx := context.Background()

	_, _ = svc.CreateManual(ctx, fx.request(1, 7, 2, "MONDAY"))

	next := &model.AcademicYear{YearName: "2025-26"}
	_ = mocks.year.Create(ctx, next)
	req := fx.request(1, 7, 2, "MONDAY")
	req.AcademicYearID = next.ID

	if _, err := svc.CreateManual(ctx, req); err != nil {
		t.Errorf("same booking in another year should succeed: %v", err)
	}
}

func TestTimetableService_CreateManual_MissingReferences(t *testing.T) {
	svc, _, fx := setupTestTimetableService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.ManualTimetableRequest)
		want   error
		msg    string
	}{
		{"teacher", func(r *dto.ManualTimetableRequest) { r.TeacherID = 999 }, ErrTeacherNotFound, "Teacher not found"},
		{"slot", func(r *dto.ManualTimetableRequest) { r.TimeSlotID = 999 }, ErrTimeSlotNotFound, "TimeSlot not found"},
		{"room", func(r *dto.ManualTimetableRequest) { r.RoomID = 999 }, ErrRoomNotFound, "Room not found"},
		{"division", func(r *dto.ManualTimetableRequest) { r.DivisionID = 999 }, ErrDivisionNotFound, "Division not found"},
		{"course", func(r *dto.ManualTimetableRequest) { r.CourseID = 999 }, ErrCourseNotFound, "Course not found"},
		{"year", func(r *dto.ManualTimetableRequest) { r.AcademicYearID = 999 }, ErrAcademicYearNotFound, "Academic year not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fx.request(1, 7, 2, "MONDAY")
			tt.mutate(req)
			_, err := svc.CreateManual(ctx, req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if err.Error() != tt.msg {
				t.Errorf("message = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestTimetableService_CreateManual_RaceMappedFromConstraint(t *testing.T) {
	svc, mocks, fx := setupTestTimetableService(t)

	mocks.timetable.createErr = &database.DuplicateKeyError{
		Constraint: repository.ConstraintRoomSlot,
		Field:      "room id",
		Err:        errors.New("duplicate key value violates unique constraint"),
	}

	_, err := svc.CreateManual(context.Background(), fx.request(1, 7, 2, "MONDAY"))
	if !errors.Is(err, ErrRoomConflict) {
		t.Errorf("expected ErrRoomConflict from unique index, got %v", err)
	}
}

func TestTimetableService_ListByDivision_Sorted(t *testing.T) {
	svc, mocks, fx := setupTestTimetableService(t)
	ctx := context.Background()

	early := &model.TimeSlot{StartTime: "08:00", EndTime: "09:00", DurationMinutes: 60}
	late := &model.TimeSlot{StartTime: "11:00", EndTime: "12:00", DurationMinutes: 60}
	_ = mocks.slot.Create(ctx, early)
	_ = mocks.slot.Create(ctx, late)

	seed := []struct {
		day  model.DayOfWeek
		slot *model.TimeSlot
	}{
		{model.Wednesday, early},
		{model.Monday, late},
		{model.Monday, early},
	}
	for _, s := range seed {
		_ = mocks.timetable.Create(ctx, &model.TimetableEntry{
			DivisionID:     fx.divisions[1],
			AcademicYearID: fx.year,
			TimeSlotID:     s.slot.ID,
			TimeSlot:       s.slot,
			DayOfWeek:      s.day,
		})
	}

	list, err := svc.ListByDivision(ctx, fx.divisions[1], fx.year)
	if err != nil {
		t.Fatalf("ListByDivision failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	got := []string{
		string(list[0].DayOfWeek) + " " + list[0].TimeSlot.StartTime,
		string(list[1].DayOfWeek) + " " + list[1].TimeSlot.StartTime,
		string(list[2].DayOfWeek) + " " + list[2].TimeSlot.StartTime,
	}
	want := []string{"MONDAY 08:00", "MONDAY 11:00", "WEDNESDAY 08:00"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTimetableService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupTestTimetableService(t)

	err := svc.Delete(context.Background(), 77)
	if !errors.Is(err, ErrTimetableEntryNotFound) {
		t.Errorf("expected ErrTimetableEntryNotFound, got %v", err)
	}
}

func TestTimetableService_TeacherLoad(t *testing.T) {
	svc, mocks, fx := setupTestTimetableService(t)
	ctx := context.Background()
	slot, _ := mocks.slot.GetByID(ctx, fx.slot)

	for _, day := range []model.DayOfWeek{model.Monday, model.Tuesday, model.Friday} {
		_ = mocks.timetable.Create(ctx, &model.TimetableEntry{
			TeacherID:      fx.teachers[7],
			AcademicYearID: fx.year,
			TimeSlotID:     slot.ID,
			TimeSlot:       slot,
			DayOfWeek:      day,
		})
	}

	load, err := svc.TeacherLoad(ctx, fx.teachers[7], fx.year)
	if err != nil {
		t.Fatalf("TeacherLoad failed: %v", err)
	}
	if load.ScheduledMinutes != 180 || load.Entries != 3 || load.OverLimit {
		t.Errorf("unexpected load: %+v", load)
	}
}
