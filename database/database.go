package database

import (
	"github.com/rpupo63/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	userRepo           *UserRepo
	technologyRepo     *TechnologyRepo
	badgeRepo          *BadgeRepo
	projectRepo        *ProjectRepo
	contactMessageRepo *ContactMessageRepo
	buttonSettingRepo  *ButtonSettingRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		userRepo:           NewUserRepo(db),
		technologyRepo:     NewTechnologyRepo(db),
		badgeRepo:          NewBadgeRepo(db),
		projectRepo:        NewProjectRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		buttonSettingRepo:  NewButtonSettingRepo(db),
	}
}

// AutoMigrate creates or updates all tables. The project/badge join table
// uses an explicit model so it keeps its own id and unique pair index.
func (d Database) AutoMigrate() error {
	if err := d.db.SetupJoinTable(&models.Project{}, "Badges", &models.ProjectBadge{}); err != nil {
		return err
	}
	return d.db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.Badge{},
		&models.Project{},
		&models.ProjectBadge{},
		&models.ContactMessage{},
		&models.ButtonSetting{},
	)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) BadgeRepo() *BadgeRepo {
	return d.badgeRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) ButtonSettingRepo() *ButtonSettingRepo {
	return d.buttonSettingRepo
}
