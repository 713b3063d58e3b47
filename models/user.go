package models

import "time"

// User represents an admin account. In practice there is exactly one row,
// seeded as "admin" on first run; only its password ever changes.
type User struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
