package model

// ── roles ──

const (
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// ── day of week ──

// DayOfWeek stored as the upper-case English name.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Days in calendar order starting Monday.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns 0 for Monday through 6 for Sunday, -1 if unknown.
func (d DayOfWeek) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

func (d DayOfWeek) Valid() bool { return d.Index() >= 0 }

// ── course ──

type CourseType string

const (
	CourseTheory CourseType = "THEORY"
	CourseLab    CourseType = "LAB"
)

func (t CourseType) Valid() bool { return t == CourseTheory || t == CourseLab }

type Semester string

const (
	Sem1 Semester = "SEM_1"
	Sem2 Semester = "SEM_2"
	Sem3 Semester = "SEM_3"
	Sem4 Semester = "SEM_4"
	Sem5 Semester = "SEM_5"
	Sem6 Semester = "SEM_6"
	Sem7 Semester = "SEM_7"
	Sem8 Semester = "SEM_8"
)

func (s Semester) Valid() bool {
	switch s {
	case Sem1, Sem2, Sem3, Sem4, Sem5, Sem6, Sem7, Sem8:
		return true
	}
	return false
}

// ── room ──

type RoomType string

const (
	RoomClassroom  RoomType = "CLASSROOM"
	RoomLab        RoomType = "LAB"
	RoomAuditorium RoomType = "AUDITORIUM"
)

func (t RoomType) Valid() bool {
	return t == RoomClassroom || t == RoomLab || t == RoomAuditorium
}
