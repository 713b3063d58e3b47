package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"

	bcryptCost = 10
)

var defaultTechnologies = []string{"React", "Next.js", "TypeScript", "Node.js", "PostgreSQL", "TailwindCSS"}

// Seed inserts the default admin user, the call-to-action button row and the
// starter technology list when they are missing. It is safe to call on every
// start; failures are logged and never abort the process.
func (d Database) Seed() {
	logger := log.With().Str("component", "seed").Logger()

	admin, err := d.userRepo.FindByUsername(defaultAdminUsername)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up admin user")
	} else if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcryptCost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash default admin password")
		} else if err := d.userRepo.Add(&models.User{
			Username: defaultAdminUsername,
			Password: string(hash),
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to seed admin user")
		}
	}

	button, err := d.buttonSettingRepo.FindByKey(models.ButtonSettingKey)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up button settings")
	} else if button == nil {
		if err := d.buttonSettingRepo.Add(&models.ButtonSetting{
			Key:   models.ButtonSettingKey,
			Label: models.DefaultButtonLabel,
			URL:   models.DefaultButtonURL,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to seed button settings")
		}
	}

	count, err := d.technologyRepo.Count()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count technologies")
	} else if count == 0 {
		for _, name := range defaultTechnologies {
			if err := d.technologyRepo.Add(&models.Technology{Name: name}); err != nil {
				logger.Error().Err(err).Str("name", name).Msg("Failed to seed technology")
			}
		}
	}
}
