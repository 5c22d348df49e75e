package models

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one graded submission. A student may submit several attempts for
// the same quiz; none of them are ever updated or deleted.
type Attempt struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	StudentID uint           `json:"student_id" gorm:"not null;index"`
	Score     int            `json:"score" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz    Quiz            `json:"quiz,omitempty"`
	Student User            `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Answers []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
}

type AttemptAnswer struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	AttemptID      uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null"`
	SelectedOption int            `json:"selected_option" gorm:"not null"`
	IsCorrect      bool           `json:"is_correct" gorm:"not null"`
	Position       int            `json:"position" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
