package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns all contact messages, newest first
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a contact message by its ID, or nil when it does not exist
func (r *ContactMessageRepo) FindByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// Delete removes a contact message from the database by id
func (r *ContactMessageRepo) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
