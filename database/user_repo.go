package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByUsername returns the user with the given username, or nil when no
// such row exists.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdatePassword stores a new password hash for the given user
func (r *UserRepo) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password", passwordHash).Error
}
