package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"samaysetu/backend/internal/model"
	"samaysetu/backend/internal/repository"
)

// campus wall clock; fixed so exports do not depend on installed tzdata
var campusZone = time.FixedZone("IST", 5*3600+30*60)

// ExportService renders timetables as downloadable files.
type ExportService interface {
	// DivisionSpreadsheet renders a division timetable as an .xlsx grid of slots by days.
	DivisionSpreadsheet(ctx context.Context, divisionID, academicYearID uint) (*bytes.Buffer, string, error)
	// TeacherCalendar renders a teacher timetable as weekly-recurring iCalendar events
	// bounded by the academic year.
	TeacherCalendar(ctx context.Context, teacherID, academicYearID uint) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// DivisionSpreadsheet
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - row 1: title merged across the sheet
//   - row 2: "Time" then one column per day, Monday first
//   - one row per slot ordered by start time; cells hold course code, teacher and room

func (s *exportService) DivisionSpreadsheet(ctx context.Context, divisionID, academicYearID uint) (*bytes.Buffer, string, error) {
	division, err := s.repo.Division.GetByID(ctx, divisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", notFoundWithID(ErrDivisionNotFound, "Division", divisionID)
		}
		s.logger.Error("failed to load division", zap.Uint("id", divisionID), zap.Error(err))
		return nil, "", err
	}
	year, err := s.academicYear(ctx, academicYearID)
	if err != nil {
		return nil, "", err
	}

	entries, err := s.repo.Timetable.ListByDivision(ctx, divisionID, academicYearID)
	if err != nil {
		s.logger.Error("failed to list division timetable", zap.Uint("division_id", divisionID), zap.Error(err))
		return nil, "", err
	}
	sortEntries(entries)

	slots, err := s.repo.TimeSlot.List(ctx, true)
	if err != nil {
		s.logger.Error("failed to list time slots", zap.Error(err))
		return nil, "", err
	}
	slots = mergeSlots(slots, entries)
	days := gridDays(entries)

	// "day:slot" → cell text
	cells := make(map[string]string, len(entries))
	for i := range entries {
		e := &entries[i]
		cells[gridKey(e.DayOfWeek, e.TimeSlotID)] = entryCellText(e)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Timetable"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportFailed.Wrap(err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, colName(1), colName(len(days)), 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	title := fmt.Sprintf("%s %s (Year %d) - %s", division.Branch, division.Name, division.Year, year.YearName)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", cell(colName(len(days)), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheet, cell("A", row), "Time")
	for i, day := range days {
		f.SetCellValue(sheet, cell(colName(i+1), row), dayLabel(day))
	}
	f.SetCellStyle(sheet, cell("A", row), cell(colName(len(days)), row), headerStyle)

	row = 3
	for _, slot := range slots {
		label := fmt.Sprintf("%s-%s", trimSeconds(slot.StartTime), trimSeconds(slot.EndTime))
		if slot.SlotName != "" {
			label = slot.SlotName + "\n" + label
		}
		f.SetCellValue(sheet, cell("A", row), label)

		for i, day := range days {
			text, ok := cells[gridKey(day, slot.ID)]
			switch {
			case ok:
			case slot.IsBreak:
				text = "Break"
			default:
				text = "-"
			}
			f.SetCellValue(sheet, cell(colName(i+1), row), text)
		}
		f.SetCellStyle(sheet, cell("A", row), cell(colName(len(days)), row), bodyStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write spreadsheet", zap.Uint("division_id", divisionID), zap.Error(err))
		return nil, "", ErrExportFailed.Wrap(err)
	}

	filename := fmt.Sprintf("timetable_%s_%s.xlsx", fileSafe(division.Branch+"_"+division.Name), fileSafe(year.YearName))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// TeacherCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) TeacherCalendar(ctx context.Context, teacherID, academicYearID uint) ([]byte, string, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", notFoundWithID(ErrTeacherNotFound, "Teacher", teacherID)
		}
		s.logger.Error("failed to load teacher", zap.Uint("id", teacherID), zap.Error(err))
		return nil, "", err
	}
	year, err := s.academicYear(ctx, academicYearID)
	if err != nil {
		return nil, "", err
	}

	entries, err := s.repo.Timetable.ListByTeacher(ctx, teacherID, academicYearID)
	if err != nil {
		s.logger.Error("failed to list teacher timetable", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return nil, "", err
	}
	sortEntries(entries)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//SamaySetu//Timetable//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s - %s", teacher.Name, year.YearName))

	stamp := s.now().UTC()
	until := time.Date(year.EndDate.Year(), year.EndDate.Month(), year.EndDate.Day(), 23, 59, 59, 0, campusZone).UTC()

	for i := range entries {
		e := &entries[i]
		if e.TimeSlot == nil {
			continue
		}
		start, err := model.ParseClock(e.TimeSlot.StartTime)
		if err != nil {
			continue
		}
		end, err := model.ParseClock(e.TimeSlot.EndTime)
		if err != nil {
			continue
		}

		first := firstOnOrAfter(year.StartDate, e.DayOfWeek)
		event := cal.AddEvent(fmt.Sprintf("timetable-%d@samaysetu", e.ID))
		event.SetDtStampTime(stamp)
		event.SetStartAt(first.Add(time.Duration(start) * time.Minute))
		event.SetEndAt(first.Add(time.Duration(end) * time.Minute))
		event.SetSummary(courseLabel(e))
		if e.Room != nil {
			event.SetLocation(fmt.Sprintf("%s (%s)", e.Room.Name, e.Room.RoomNumber))
		}
		if e.Division != nil {
			event.SetDescription(fmt.Sprintf("Division %s %s, year %d", e.Division.Branch, e.Division.Name, e.Division.Year))
		}
		if e.IsRecurring {
			event.AddRrule("FREQ=WEEKLY;UNTIL=" + until.Format("20060102T150405Z"))
		}
	}

	filename := fmt.Sprintf("timetable_%s_%s.ics", fileSafe(teacher.EmployeeID), fileSafe(year.YearName))
	return []byte(cal.Serialize()), filename, nil
}

// ── helpers ──

func (s *exportService) academicYear(ctx context.Context, id uint) (*model.AcademicYear, error) {
	year, err := s.repo.AcademicYear.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundWithID(ErrAcademicYearNotFound, "AcademicYear", id)
		}
		s.logger.Error("failed to load academic year", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return year, nil
}

// mergeSlots adds slots referenced by entries but missing from the active list,
// ordered by start time.
func mergeSlots(active []model.TimeSlot, entries []model.TimetableEntry) []model.TimeSlot {
	seen := make(map[uint]bool, len(active))
	out := make([]model.TimeSlot, 0, len(active))
	for _, slot := range active {
		seen[slot.ID] = true
		out = append(out, slot)
	}
	for _, e := range entries {
		if e.TimeSlot != nil && !seen[e.TimeSlotID] {
			seen[e.TimeSlotID] = true
			out = append(out, *e.TimeSlot)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := model.ParseClock(out[i].StartTime)
		sj, _ := model.ParseClock(out[j].StartTime)
		return si < sj
	})
	return out
}

// gridDays Monday to Saturday, plus Sunday when something is booked on it.
func gridDays(entries []model.TimetableEntry) []model.DayOfWeek {
	days := append([]model.DayOfWeek(nil), model.Days[:6]...)
	for _, e := range entries {
		if e.DayOfWeek == model.Sunday {
			return append(days, model.Sunday)
		}
	}
	return days
}

func gridKey(day model.DayOfWeek, slotID uint) string {
	return fmt.Sprintf("%s:%d", day, slotID)
}

func entryCellText(e *model.TimetableEntry) string {
	lines := []string{courseLabel(e)}
	if e.Teacher != nil {
		lines = append(lines, e.Teacher.Name)
	}
	if e.Room != nil {
		lines = append(lines, e.Room.RoomNumber)
	}
	return strings.Join(lines, "\n")
}

func courseLabel(e *model.TimetableEntry) string {
	if e.Course == nil {
		return fmt.Sprintf("Course %d", e.CourseID)
	}
	return fmt.Sprintf("%s (%s)", e.Course.Name, e.Course.Code)
}

// dayLabel MONDAY → Monday
func dayLabel(d model.DayOfWeek) string {
	s := string(d)
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

// firstOnOrAfter the first occurrence of day on or after date, at midnight campus time.
func firstOnOrAfter(date time.Time, day model.DayOfWeek) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, campusZone)
	target := time.Weekday((day.Index() + 1) % 7)
	offset := (int(target) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

func trimSeconds(clock string) string {
	m, err := model.ParseClock(clock)
	if err != nil {
		return clock
	}
	return model.FormatClock(m)
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
