package models

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ClassID     uint           `json:"class_id" gorm:"not null"`
	Date        string         `json:"date" gorm:"not null"`       // YYYY-MM-DD
	StartTime   string         `json:"start_time" gorm:"not null"` // HH:mm
	EndTime     string         `json:"end_time" gorm:"not null"`   // HH:mm
	ScheduledAt time.Time      `json:"scheduled_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Class     Class          `json:"class,omitempty"`
	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

// EndsAt combines the quiz date and end time into a local datetime. Falls
// back to the scheduled start when the stored strings don't parse.
func (q *Quiz) EndsAt() time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", q.Date+"T"+q.EndTime, time.Local)
	if err != nil {
		return q.ScheduledAt
	}
	return t
}

// QuizQuestion links a quiz to one of its questions, keeping the order the
// admin supplied them in.
type QuizQuestion struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	QuizID     uint           `json:"quiz_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	Position   int            `json:"position" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Question Question `json:"question,omitempty"`
}
