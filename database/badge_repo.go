package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type BadgeRepo struct {
	db *gorm.DB
}

func NewBadgeRepo(db *gorm.DB) *BadgeRepo {
	return &BadgeRepo{db}
}

// FindAll returns all badges ordered by id
func (r *BadgeRepo) FindAll() ([]*models.Badge, error) {
	var badges []*models.Badge
	err := r.db.Order("id ASC").Find(&badges).Error
	return badges, err
}

// FindByID returns a badge by its ID, or nil when it does not exist
func (r *BadgeRepo) FindByID(id uint) (*models.Badge, error) {
	var badge models.Badge
	err := r.db.First(&badge, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

// Add inserts a new badge into the database
func (r *BadgeRepo) Add(badge *models.Badge) error {
	return r.db.Create(badge).Error
}

// Update updates an existing badge in the database
func (r *BadgeRepo) Update(badge *models.Badge) error {
	return r.db.Save(badge).Error
}

// Delete removes a badge and its project associations by id
func (r *BadgeRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("badge_id = ?", id).Delete(&models.ProjectBadge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Badge{}, id).Error
	})
}
