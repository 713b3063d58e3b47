package api

import (
	"time"

	"github.com/rpupo63/portfolio-admin-backend/auth"
	"github.com/rpupo63/portfolio-admin-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, issuer auth.TokenIssuer, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		authHandler:       newAuthHandler(database.UserRepo(), issuer),
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		badgeHandler:      newBadgeHandler(database.BadgeRepo()),
		technologyHandler: newTechnologyHandler(database.TechnologyRepo()),
		contactHandler:    newContactHandler(database.ContactMessageRepo()),
		settingsHandler:   newSettingsHandler(database.ButtonSettingRepo()),
		healthHandler:     newHealthHandler(startupTime),
	}
}
