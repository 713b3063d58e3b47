package models

import "time"

// ButtonSettingKey identifies the site-wide call-to-action button row.
const ButtonSettingKey = "consultation_button"

// Defaults served when the singleton row is somehow missing.
const (
	DefaultButtonLabel = "احجز استشارة مجانية"
	DefaultButtonURL   = "#contact"
)

// ButtonSetting is a keyed configuration row for the call-to-action button.
// Exactly one row with key "consultation_button" exists after seeding; it is
// updated in place and never deleted.
type ButtonSetting struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Key       string    `json:"key" db:"key" gorm:"type:text;not null;unique"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
