package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRange2025W01(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)
	monday, friday, err := WeekRange("2025-W01", now)

	assert.NoError(t, err)
	// Week 1 contains the year's first Thursday, so its Monday is on or
	// before January 4.
	jan4 := time.Date(2025, time.January, 4, 0, 0, 0, 0, time.Local)
	assert.False(t, monday.After(jan4))
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.Local), monday)
	assert.Equal(t, monday.AddDate(0, 0, 4), friday)
	assert.Equal(t, time.Friday, friday.Weekday())
}

func TestWeekRangeMidYear(t *testing.T) {
	now := time.Now()
	monday, friday, err := WeekRange("2025-W38", now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.September, 15, 0, 0, 0, 0, now.Location()), monday)
	assert.Equal(t, time.Date(2025, time.September, 19, 0, 0, 0, 0, now.Location()), friday)
}

func TestWeekRangeDefaultsToCurrentWeek(t *testing.T) {
	// A Wednesday; its week runs Monday the 6th through Friday the 10th.
	now := time.Date(2025, time.January, 8, 15, 30, 0, 0, time.Local)
	monday, friday, err := WeekRange("", now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local), monday)
	assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.Local), friday)
}

func TestWeekRangeRejectsGarbage(t *testing.T) {
	for _, week := range []string{"2025", "2025-W00", "2025-W54", "bogus"} {
		_, _, err := WeekRange(week, time.Now())
		assert.ErrorIs(t, err, ErrInvalidInput, "week %q", week)
	}
}

func TestBuildAttendanceMarksAttendedDaysAndMarks(t *testing.T) {
	students := []RosterStudent{{ID: 1, FullName: "Ada", Class: "A"}}
	attempts := []AttemptRecord{
		{StudentID: 1, Date: "2025-01-06", Score: 2, Percentage: 100},
	}
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)

	rows, summary := BuildAttendance(students, attempts, monday, "2025-01-06")

	assert.Equal(t, 1, summary.TotalStudents)
	assert.Equal(t, 1, summary.CompletedToday)
	assert.Equal(t, 0, summary.MissedToday)
	assert.Equal(t, 100, summary.AverageScore)

	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, uint(1), row.StudentID)
	assert.Equal(t, 2, row.TotalMarks)
	assert.Len(t, row.Days, 5)
	assert.Equal(t, "2025-01-06", row.Days[0].Date)
	assert.True(t, row.Days[0].Attended)
	for _, day := range row.Days[1:] {
		assert.False(t, day.Attended)
	}
}

func TestBuildAttendanceStudentWithoutAttempts(t *testing.T) {
	students := []RosterStudent{
		{ID: 1, FullName: "Ada", Class: "A"},
		{ID: 2, FullName: "Ben", Class: "A"},
	}
	attempts := []AttemptRecord{
		{StudentID: 1, Date: "2025-01-07", Score: 1, Percentage: 50},
	}
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)

	rows, summary := BuildAttendance(students, attempts, monday, "2025-01-06")

	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 0, summary.CompletedToday) // attempt was Tuesday, today is Monday
	assert.Equal(t, 2, summary.MissedToday)
	assert.Equal(t, 50, summary.AverageScore)

	assert.Equal(t, 1, rows[0].TotalMarks)
	assert.True(t, rows[0].Days[1].Attended)
	assert.Equal(t, 0, rows[1].TotalMarks)
	for _, day := range rows[1].Days {
		assert.False(t, day.Attended)
	}
}

func TestBuildAttendanceNoAttemptsZeroAverage(t *testing.T) {
	students := []RosterStudent{{ID: 1, FullName: "Ada", Class: "A"}}
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)

	_, summary := BuildAttendance(students, nil, monday, "2025-01-06")

	assert.Equal(t, 0, summary.AverageScore)
	assert.Equal(t, 1, summary.MissedToday)
}

func TestBuildAttendanceAveragesPercentages(t *testing.T) {
	students := []RosterStudent{{ID: 1, FullName: "Ada", Class: "A"}}
	attempts := []AttemptRecord{
		{StudentID: 1, Date: "2025-01-06", Score: 2, Percentage: 100},
		{StudentID: 1, Date: "2025-01-07", Score: 1, Percentage: 50},
	}
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)

	rows, summary := BuildAttendance(students, attempts, monday, "2025-01-08")

	assert.Equal(t, 75, summary.AverageScore)
	assert.Equal(t, 3, rows[0].TotalMarks)
	assert.True(t, rows[0].Days[0].Attended)
	assert.True(t, rows[0].Days[1].Attended)
	assert.False(t, rows[0].Days[2].Attended)
}
