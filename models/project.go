package models

import "time"

// Project represents a portfolio project with its attached badges
type Project struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string   `json:"image_url" db:"image_url" gorm:"type:text"`
	ProjectURL  *string   `json:"project_url" db:"project_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	Badges []Badge `json:"badges" gorm:"many2many:project_badges;"`
}
