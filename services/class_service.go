package services

import (
	"dailyquiz/models"

	"gorm.io/gorm"
)

type ClassService struct {
	db *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{db: db}
}

// Create is an idempotent upsert by name: creating the same class twice
// yields the same record.
func (s *ClassService) Create(name string) (*models.Class, error) {
	return findOrCreateClass(s.db, name)
}

func (s *ClassService) List() ([]models.Class, error) {
	var classes []models.Class
	err := s.db.Order("name ASC").Find(&classes).Error
	return classes, err
}

// findOrCreateClass resolves a class by name, creating it when missing. The
// unique index on name makes concurrent identical calls converge on one row.
func findOrCreateClass(db *gorm.DB, name string) (*models.Class, error) {
	var cls models.Class
	err := db.Where(models.Class{Name: name}).FirstOrCreate(&cls).Error
	if err != nil {
		return nil, err
	}
	return &cls, nil
}
