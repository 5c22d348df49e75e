package services

import (
	"errors"
	"fmt"
	"time"

	"dailyquiz/models"

	"gorm.io/gorm"
)

// ReportService builds the faculty dashboard views: the class roster and the
// weekly attendance/marks table derived from attempt records.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type RosterStudent struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Class    string `json:"class"`
}

// ClassStudents lists the students sharing the faculty member's class. A
// faculty member without a class gets an empty roster.
func (s *ReportService) ClassStudents(facultyID uint) ([]RosterStudent, error) {
	var faculty models.User
	err := s.db.Preload("Class").First(&faculty, facultyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if faculty.ClassID == nil {
		return []RosterStudent{}, nil
	}

	className := ""
	if faculty.Class != nil {
		className = faculty.Class.Name
	}

	var students []models.User
	err = s.db.Where("role = ? AND class_id = ?", models.RoleStudent, *faculty.ClassID).
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	roster := make([]RosterStudent, 0, len(students))
	for _, st := range students {
		name := st.FullName
		if name == "" {
			name = st.Username
		}
		roster = append(roster, RosterStudent{ID: st.ID, FullName: name, Class: className})
	}
	return roster, nil
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return wd
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekRange resolves a week selector of the form "YYYY-Www" to its Monday and
// Friday. An empty selector means the week containing now. ISO rule: week 1
// is the week containing the year's first Thursday, so the Monday of week 1
// is the Monday on or before January 4.
func WeekRange(week string, now time.Time) (time.Time, time.Time, error) {
	if week == "" {
		monday := dateOnly(now).AddDate(0, 0, -(isoWeekday(now) - 1))
		return monday, monday.AddDate(0, 0, 4), nil
	}

	var year, weekNum int
	if _, err := fmt.Sscanf(week, "%d-W%d", &year, &weekNum); err != nil || weekNum < 1 || weekNum > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad week %q", ErrInvalidInput, week)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, now.Location())
	monday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1)).AddDate(0, 0, (weekNum-1)*7)
	return monday, monday.AddDate(0, 0, 4), nil
}

// AttemptRecord is the reduced attempt shape the aggregation runs on. The
// caller supplies records already filtered to the week range.
type AttemptRecord struct {
	StudentID  uint   `json:"studentId"`
	Date       string `json:"date"` // YYYY-MM-DD
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
}

type AttendanceDay struct {
	Date     string `json:"date"`
	Attended bool   `json:"attended"`
}

type AttendanceRow struct {
	StudentID  uint            `json:"studentId"`
	FullName   string          `json:"fullName"`
	Class      string          `json:"class"`
	Days       []AttendanceDay `json:"days"`
	TotalMarks int             `json:"totalMarks"`
}

type AttendanceSummary struct {
	TotalStudents  int `json:"totalStudents"`
	CompletedToday int `json:"completedToday"`
	MissedToday    int `json:"missedToday"`
	AverageScore   int `json:"averageScore"` // percent
}

// BuildAttendance derives the Monday-Friday attendance table and the daily
// summary counters from a roster and its in-range attempts.
func BuildAttendance(students []RosterStudent, attempts []AttemptRecord, monday time.Time, today string) ([]AttendanceRow, AttendanceSummary) {
	weekdays := make([]string, 5)
	for i := range weekdays {
		weekdays[i] = monday.AddDate(0, 0, i).Format("2006-01-02")
	}

	type bucket struct {
		dates map[string]bool
		marks int
	}
	byStudent := make(map[uint]*bucket)
	completedToday := 0
	percentSum := 0
	for _, a := range attempts {
		b := byStudent[a.StudentID]
		if b == nil {
			b = &bucket{dates: make(map[string]bool)}
			byStudent[a.StudentID] = b
		}
		b.dates[a.Date] = true
		b.marks += a.Score
		if a.Date == today {
			completedToday++
		}
		percentSum += a.Percentage
	}

	rows := make([]AttendanceRow, 0, len(students))
	for _, st := range students {
		row := AttendanceRow{
			StudentID: st.ID,
			FullName:  st.FullName,
			Class:     st.Class,
			Days:      make([]AttendanceDay, 0, len(weekdays)),
		}
		b := byStudent[st.ID]
		for _, day := range weekdays {
			attended := b != nil && b.dates[day]
			row.Days = append(row.Days, AttendanceDay{Date: day, Attended: attended})
		}
		if b != nil {
			row.TotalMarks = b.marks
		}
		rows = append(rows, row)
	}

	summary := AttendanceSummary{
		TotalStudents:  len(students),
		CompletedToday: completedToday,
		MissedToday:    len(students) - completedToday,
	}
	if len(attempts) > 0 {
		summary.AverageScore = (percentSum + len(attempts)/2) / len(attempts)
	}
	return rows, summary
}

type AttendanceReport struct {
	WeekStart string            `json:"weekStart"`
	WeekEnd   string            `json:"weekEnd"`
	Rows      []AttendanceRow   `json:"rows"`
	Summary   AttendanceSummary `json:"summary"`
}

// Attendance assembles the weekly report for a faculty member's class,
// optionally narrowed to one class name.
func (s *ReportService) Attendance(facultyID uint, week, classFilter string) (*AttendanceReport, error) {
	students, err := s.ClassStudents(facultyID)
	if err != nil {
		return nil, err
	}
	if classFilter != "" {
		filtered := students[:0]
		for _, st := range students {
			if st.Class == classFilter {
				filtered = append(filtered, st)
			}
		}
		students = filtered
	}

	now := time.Now()
	monday, friday, err := WeekRange(week, now)
	if err != nil {
		return nil, err
	}

	var records []AttemptRecord
	if len(students) > 0 {
		ids := make([]uint, 0, len(students))
		for _, st := range students {
			ids = append(ids, st.ID)
		}

		var attempts []models.Attempt
		err = s.db.Preload("Answers").
			Where("student_id IN ?", ids).
			Where("created_at >= ? AND created_at < ?", monday, friday.AddDate(0, 0, 1)).
			Find(&attempts).Error
		if err != nil {
			return nil, err
		}

		records = make([]AttemptRecord, 0, len(attempts))
		for _, a := range attempts {
			pct := 0
			if n := len(a.Answers); n > 0 {
				pct = (a.Score*100 + n/2) / n
			}
			records = append(records, AttemptRecord{
				StudentID:  a.StudentID,
				Date:       a.CreatedAt.Format("2006-01-02"),
				Score:      a.Score,
				Percentage: pct,
			})
		}
	}

	rows, summary := BuildAttendance(students, records, monday, now.Format("2006-01-02"))
	return &AttendanceReport{
		WeekStart: monday.Format("2006-01-02"),
		WeekEnd:   friday.Format("2006-01-02"),
		Rows:      rows,
		Summary:   summary,
	}, nil
}
