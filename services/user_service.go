package services

import (
	"errors"
	"fmt"

	"dailyquiz/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpsertUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
	FullName  string `json:"fullName" binding:"required"`
	ClassName string `json:"className"`
}

// Upsert creates the user, or updates the existing record in place when the
// username is already taken. Used by the admin dashboard.
func (s *UserService) Upsert(req *UpsertUserRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	var classID *uint
	if req.ClassName != "" {
		cls, err := findOrCreateClass(s.db, req.ClassName)
		if err != nil {
			return nil, err
		}
		classID = &cls.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("username = ?", req.Username).First(&user).Error
	switch {
	case err == nil:
		user.PasswordHash = string(hash)
		user.Role = req.Role
		user.FullName = req.FullName
		user.ClassID = classID
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         req.Role,
			FullName:     req.FullName,
			ClassID:      classID,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &user, nil
}

// List returns all users, optionally filtered by role, with classes loaded.
func (s *UserService) List(role string) ([]models.User, error) {
	var users []models.User
	q := s.db.Preload("Class")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	return users, err
}
