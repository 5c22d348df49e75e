package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Text         string         `json:"text" gorm:"not null"`
	CorrectIndex int            `json:"correct_index" gorm:"not null"`
	Tags         string         `json:"tags"` // comma separated
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

// OptionTexts flattens the ordered option rows into the plain string list the
// API exposes. Options must already be loaded in position order.
func (q *Question) OptionTexts() []string {
	texts := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		texts = append(texts, opt.Text)
	}
	return texts
}
