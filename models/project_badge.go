package models

// ProjectBadge is the join row linking a project to a badge. Each
// (project_id, badge_id) pair is unique and rows are removed when either
// parent is deleted.
type ProjectBadge struct {
	ID        uint `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID uint `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_badge_project_id;uniqueIndex:idx_project_badge_unique;constraint:OnDelete:CASCADE"`
	BadgeID   uint `json:"badge_id" db:"badge_id" gorm:"not null;uniqueIndex:idx_project_badge_unique;constraint:OnDelete:CASCADE"`
}
