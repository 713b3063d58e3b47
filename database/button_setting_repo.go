package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type ButtonSettingRepo struct {
	db *gorm.DB
}

func NewButtonSettingRepo(db *gorm.DB) *ButtonSettingRepo {
	return &ButtonSettingRepo{db}
}

// FindByKey returns the settings row for the given key, or nil when missing
func (r *ButtonSettingRepo) FindByKey(key string) (*models.ButtonSetting, error) {
	var setting models.ButtonSetting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Add inserts a new settings row into the database
func (r *ButtonSettingRepo) Add(setting *models.ButtonSetting) error {
	return r.db.Create(setting).Error
}

// UpdateByKey updates the label and url of the row matching key
func (r *ButtonSettingRepo) UpdateByKey(key, label, url string) error {
	return r.db.Model(&models.ButtonSetting{}).
		Where("key = ?", key).
		Updates(map[string]interface{}{"label": label, "url": url}).Error
}
