package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-admin-backend/database"
	"github.com/rpupo63/portfolio-admin-backend/errs"
	"github.com/rpupo63/portfolio-admin-backend/models"
)

type settingsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.ButtonSettingRepo
}

func newSettingsHandler(settingRepo *database.ButtonSettingRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
	}
}

type buttonSettingsRequest struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// getButtonSettings returns the call-to-action button row. Seeding should
// have created it, but a hardcoded default is served if the row is missing.
func (h settingsHandler) getButtonSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setting, err := h.settingRepo.FindByKey(models.ButtonSettingKey)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "button settings", err))
			return
		}

		if setting == nil {
			h.responder.WriteJSON(w, map[string]string{
				"label": models.DefaultButtonLabel,
				"url":   models.DefaultButtonURL,
			})
			return
		}

		h.responder.WriteJSON(w, setting)
	}
}

// updateButtonSettings updates the label and url of the singleton row
func (h settingsHandler) updateButtonSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req buttonSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Label) == "" || strings.TrimSpace(req.URL) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("label and url are required"))
			return
		}

		if err := h.settingRepo.UpdateByKey(models.ButtonSettingKey, req.Label, req.URL); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "button settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"label": req.Label,
			"url":   req.URL,
		})
	}
}
