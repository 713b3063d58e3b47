package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindPage returns one page of projects, newest first, with their badges
// preloaded, alongside the total row count.
func (r *ProjectRepo) FindPage(page, pageSize int) ([]*models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err := r.db.Preload("Badges").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&projects).Error
	return projects, total, err
}

// FindByID returns a project with its badges, or nil when it does not exist
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Badges").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project's own columns (badges are handled by
// ReplaceBadges).
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Omit("Badges").Save(project).Error
}

// ReplaceBadges swaps a project's badge set for the given badge ids. The
// delete and reinserts run in one transaction so a failure cannot leave the
// project half-tagged.
func (r *ProjectRepo) ReplaceBadges(projectID uint, badgeIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectBadge{}).Error; err != nil {
			return err
		}
		for _, badgeID := range badgeIDs {
			join := models.ProjectBadge{ProjectID: projectID, BadgeID: badgeID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a project and its badge associations by id
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectBadge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
