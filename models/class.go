package models

import (
	"time"

	"gorm.io/gorm"
)

type Class struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Students []User `json:"students,omitempty" gorm:"foreignKey:ClassID"`
	Quizzes  []Quiz `json:"quizzes,omitempty" gorm:"foreignKey:ClassID"`
}
