package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by id
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("id ASC").Find(&technologies).Error
	return technologies, err
}

// FindByID returns a technology by its ID, or nil when it does not exist
func (r *TechnologyRepo) FindByID(id uint) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// Count returns the number of technology rows
func (r *TechnologyRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Technology{}).Count(&count).Error
	return count, err
}

// Add inserts a new technology into the database
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// Update updates an existing technology in the database
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	return r.db.Save(technology).Error
}

// Delete removes a technology from the database by id
func (r *TechnologyRepo) Delete(id uint) error {
	return r.db.Delete(&models.Technology{}, id).Error
}
