package models

import "time"

// Technology represents a named item shown on the public technologies
// marquee. Technologies are display-only and independent of projects.
type Technology struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
