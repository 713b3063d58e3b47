package models

import "time"

// ContactMessage represents a contact-form submission. Messages are
// append-only: the admin can read and delete them but never edits one.
type ContactMessage struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	ProjectType string    `json:"project_type" db:"project_type" gorm:"type:text;not null"`
	Message     string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
