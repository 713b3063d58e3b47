package models

import "time"

// DefaultBadgeColor is applied when a badge is created without a color.
const DefaultBadgeColor = "#2b8cee"

// Badge represents a colored label attachable to projects
type Badge struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Color     string    `json:"color" db:"color" gorm:"type:text;not null;default:'#2b8cee'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
