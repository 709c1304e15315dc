package service

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
	"samaysetu/backend/pkg/mailer"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts  map[uint]*model.Department
	nextID uint
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[uint]*model.Department)}
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	m.nextID++
	dept.ID = m.nextID
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id uint) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDeptRepo) Update(_ context.Context, dept *model.Department) error {
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id uint) error {
	delete(m.depts, id)
	return nil
}

func (m *mockDeptRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.depts[id]
	return ok, nil
}

// ── Mock AcademicYearRepository ──

type mockAcademicYearRepo struct {
	years     map[uint]*model.AcademicYear
	nextID    uint
	createErr error
}

func newMockAcademicYearRepo() *mockAcademicYearRepo {
	return &mockAcademicYearRepo{years: make(map[uint]*model.AcademicYear)}
}

func (m *mockAcademicYearRepo) Create(_ context.Context, year *model.AcademicYear) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	year.ID = m.nextID
	m.years[year.ID] = year
	return nil
}

func (m *mockAcademicYearRepo) GetByID(_ context.Context, id uint) (*model.AcademicYear, error) {
	if y, ok := m.years[id]; ok {
		cp := *y
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) GetCurrent(_ context.Context) (*model.AcademicYear, error) {
	for _, y := range m.years {
		if y.IsCurrent {
			cp := *y
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) List(_ context.Context) ([]model.AcademicYear, error) {
	var result []model.AcademicYear
	for _, y := range m.years {
		result = append(result, *y)
	}
	return result, nil
}

func (m *mockAcademicYearRepo) Update(_ context.Context, year *model.AcademicYear) error {
	cp := *year
	m.years[year.ID] = &cp
	return nil
}

func (m *mockAcademicYearRepo) Delete(_ context.Context, id uint) error {
	delete(m.years, id)
	return nil
}

func (m *mockAcademicYearRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.years[id]
	return ok, nil
}

func (m *mockAcademicYearRepo) currentCount() int {
	n := 0
	for _, y := range m.years {
		if y.IsCurrent {
			n++
		}
	}
	return n
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[uint]*model.Teacher
	courses  map[uint]map[uint]bool // teacher → course set
	nextID   uint
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{
		teachers: make(map[uint]*model.Teacher),
		courses:  make(map[uint]map[uint]bool),
	}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	m.nextID++
	teacher.ID = m.nextID
	cp := *teacher
	m.teachers[teacher.ID] = &cp
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) find(match func(*model.Teacher) bool) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if match(t) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	return m.find(func(t *model.Teacher) bool { return t.Email == email })
}

func (m *mockTeacherRepo) GetByVerificationToken(_ context.Context, token string) (*model.Teacher, error) {
	return m.find(func(t *model.Teacher) bool {
		return t.VerificationToken != nil && *t.VerificationToken == token
	})
}

func (m *mockTeacherRepo) GetByResetToken(_ context.Context, token string) (*model.Teacher, error) {
	return m.find(func(t *model.Teacher) bool {
		return t.ResetToken != nil && *t.ResetToken == token
	})
}

func (m *mockTeacherRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.find(func(t *model.Teacher) bool { return t.Email == email })
	return err == nil, nil
}

func (m *mockTeacherRepo) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	_, err := m.find(func(t *model.Teacher) bool { return t.EmployeeID == employeeID })
	return err == nil, nil
}

func (m *mockTeacherRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.teachers[id]
	return ok, nil
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeacherRepo) ListPendingApproval(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		if t.IsEmailVerified && !t.IsApproved {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	if _, ok := m.teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	teacher.Version++
	cp := *teacher
	m.teachers[teacher.ID] = &cp
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id uint) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) AddCourse(_ context.Context, teacherID, courseID uint) error {
	if m.courses[teacherID] == nil {
		m.courses[teacherID] = make(map[uint]bool)
	}
	m.courses[teacherID][courseID] = true
	return nil
}

func (m *mockTeacherRepo) RemoveCourse(_ context.Context, teacherID, courseID uint) error {
	delete(m.courses[teacherID], courseID)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.nextID++
	course.ID = m.nextID
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, departmentID uint) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if departmentID != 0 && c.DepartmentID != departmentID {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.courses[id]
	return ok, nil
}

// ── Mock ClassRoomRepository ──

type mockClassRoomRepo struct {
	rooms  map[uint]*model.ClassRoom
	nextID uint
}

func newMockClassRoomRepo() *mockClassRoomRepo {
	return &mockClassRoomRepo{rooms: make(map[uint]*model.ClassRoom)}
}

func (m *mockClassRoomRepo) Create(_ context.Context, room *model.ClassRoom) error {
	m.nextID++
	room.ID = m.nextID
	m.rooms[room.ID] = room
	return nil
}

func (m *mockClassRoomRepo) GetByID(_ context.Context, id uint) (*model.ClassRoom, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRoomRepo) List(_ context.Context) ([]model.ClassRoom, error) {
	var result []model.ClassRoom
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockClassRoomRepo) Update(_ context.Context, room *model.ClassRoom) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *mockClassRoomRepo) Delete(_ context.Context, id uint) error {
	delete(m.rooms, id)
	return nil
}

func (m *mockClassRoomRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.rooms[id]
	return ok, nil
}

// ── Mock DivisionRepository ──

type mockDivisionRepo struct {
	divisions map[uint]*model.Division
	nextID    uint
}

func newMockDivisionRepo() *mockDivisionRepo {
	return &mockDivisionRepo{divisions: make(map[uint]*model.Division)}
}

func (m *mockDivisionRepo) Create(_ context.Context, division *model.Division) error {
	m.nextID++
	division.ID = m.nextID
	m.divisions[division.ID] = division
	return nil
}

func (m *mockDivisionRepo) GetByID(_ context.Context, id uint) (*model.Division, error) {
	if d, ok := m.divisions[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDivisionRepo) List(_ context.Context) ([]model.Division, error) {
	var result []model.Division
	for _, d := range m.divisions {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDivisionRepo) Update(_ context.Context, division *model.Division) error {
	m.divisions[division.ID] = division
	return nil
}

func (m *mockDivisionRepo) Delete(_ context.Context, id uint) error {
	delete(m.divisions, id)
	return nil
}

func (m *mockDivisionRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.divisions[id]
	return ok, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, divisionID uint) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if divisionID != 0 && (s.DivisionID == nil || *s.DivisionID != divisionID) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.students[id]
	return ok, nil
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots  map[uint]*model.TimeSlot
	nextID uint
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{slots: make(map[uint]*model.TimeSlot)}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	m.nextID++
	slot.ID = m.nextID
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockTimeSlotRepo) GetByID(_ context.Context, id uint) (*model.TimeSlot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) List(_ context.Context, activeOnly bool) ([]model.TimeSlot, error) {
	var result []model.TimeSlot
	for _, s := range m.slots {
		if activeOnly && !s.IsActive {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockTimeSlotRepo) Update(_ context.Context, slot *model.TimeSlot) error {
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockTimeSlotRepo) Delete(_ context.Context, id uint) error {
	delete(m.slots, id)
	return nil
}

func (m *mockTimeSlotRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.slots[id]
	return ok, nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	items  map[uint]*model.TeacherAvailability
	nextID uint
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{items: make(map[uint]*model.TeacherAvailability)}
}

func (m *mockAvailabilityRepo) Create(_ context.Context, a *model.TeacherAvailability) error {
	m.nextID++
	a.ID = m.nextID
	m.items[a.ID] = a
	return nil
}

func (m *mockAvailabilityRepo) GetByID(_ context.Context, id uint) (*model.TeacherAvailability, error) {
	if a, ok := m.items[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) ListByTeacher(_ context.Context, teacherID uint, day model.DayOfWeek) ([]model.TeacherAvailability, error) {
	var result []model.TeacherAvailability
	for _, a := range m.items {
		if a.TeacherID != teacherID || (day != "" && a.DayOfWeek != day) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Update(_ context.Context, a *model.TeacherAvailability) error {
	m.items[a.ID] = a
	return nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id uint) error {
	delete(m.items, id)
	return nil
}

func (m *mockAvailabilityRepo) ExistsCovering(_ context.Context, teacherID uint, day model.DayOfWeek, start, end string) (bool, error) {
	s, _ := model.ParseClock(start)
	e, _ := model.ParseClock(end)
	for _, a := range m.items {
		if a.TeacherID != teacherID || a.DayOfWeek != day || !a.IsAvailable {
			continue
		}
		as, _ := model.ParseClock(a.StartTime)
		ae, _ := model.ParseClock(a.EndTime)
		if as <= s && ae >= e {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	entries   map[uint]*model.TimetableEntry
	nextID    uint
	createErr error
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{entries: make(map[uint]*model.TimetableEntry)}
}

func (m *mockTimetableRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	entry.ID = m.nextID
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockTimetableRepo) GetByID(_ context.Context, id uint) (*model.TimetableEntry, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) booked(key repository.SlotKey, match func(*model.TimetableEntry) bool) bool {
	for _, e := range m.entries {
		if e.DayOfWeek == key.DayOfWeek && e.TimeSlotID == key.TimeSlotID &&
			e.AcademicYearID == key.AcademicYearID && match(e) {
			return true
		}
	}
	return false
}

func (m *mockTimetableRepo) ExistsTeacherBooking(_ context.Context, key repository.SlotKey, teacherID uint) (bool, error) {
	return m.booked(key, func(e *model.TimetableEntry) bool { return e.TeacherID == teacherID }), nil
}

func (m *mockTimetableRepo) ExistsRoomBooking(_ context.Context, key repository.SlotKey, roomID uint) (bool, error) {
	return m.booked(key, func(e *model.TimetableEntry) bool { return e.RoomID == roomID }), nil
}

func (m *mockTimetableRepo) ExistsDivisionBooking(_ context.Context, key repository.SlotKey, divisionID uint) (bool, error) {
	return m.booked(key, func(e *model.TimetableEntry) bool { return e.DivisionID == divisionID }), nil
}

func (m *mockTimetableRepo) list(match func(*model.TimetableEntry) bool) []model.TimetableEntry {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if match(e) {
			result = append(result, *e)
		}
	}
	return result
}

func (m *mockTimetableRepo) ListByDivision(_ context.Context, divisionID, academicYearID uint) ([]model.TimetableEntry, error) {
	return m.list(func(e *model.TimetableEntry) bool {
		return e.DivisionID == divisionID && e.AcademicYearID == academicYearID
	}), nil
}

func (m *mockTimetableRepo) ListByTeacher(_ context.Context, teacherID, academicYearID uint) ([]model.TimetableEntry, error) {
	return m.list(func(e *model.TimetableEntry) bool {
		return e.TeacherID == teacherID && e.AcademicYearID == academicYearID
	}), nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, id uint) error {
	delete(m.entries, id)
	return nil
}

func (m *mockTimetableRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.entries[id]
	return ok, nil
}

// ── mocks aggregate ──

type mockRepos struct {
	dept         *mockDeptRepo
	year         *mockAcademicYearRepo
	teacher      *mockTeacherRepo
	course       *mockCourseRepo
	room         *mockClassRoomRepo
	division     *mockDivisionRepo
	student      *mockStudentRepo
	slot         *mockTimeSlotRepo
	availability *mockAvailabilityRepo
	timetable    *mockTimetableRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		dept:         newMockDeptRepo(),
		year:         newMockAcademicYearRepo(),
		teacher:      newMockTeacherRepo(),
		course:       newMockCourseRepo(),
		room:         newMockClassRoomRepo(),
		division:     newMockDivisionRepo(),
		student:      newMockStudentRepo(),
		slot:         newMockTimeSlotRepo(),
		availability: newMockAvailabilityRepo(),
		timetable:    newMockTimetableRepo(),
	}
	repo := &repository.Repository{
		Department:   m.dept,
		AcademicYear: m.year,
		Teacher:      m.teacher,
		Course:       m.course,
		ClassRoom:    m.room,
		Division:     m.division,
		Student:      m.student,
		TimeSlot:     m.slot,
		Availability: m.availability,
		Timetable:    m.timetable,
	}
	return repo, m
}

// ── recording mail sender ──

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) messages() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailer.Message(nil), r.sent...)
}
