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

type badgeHandler struct {
	responder Responder
	logger    zerolog.Logger
	badgeRepo *database.BadgeRepo
}

func newBadgeHandler(badgeRepo *database.BadgeRepo) badgeHandler {
	logger := log.With().Str("handlerName", "badgeHandler").Logger()

	return badgeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		badgeRepo: badgeRepo,
	}
}

type badgeRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// listBadges returns all badges ordered by id
func (h badgeHandler) listBadges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badges, err := h.badgeRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "badges", err))
			return
		}

		if badges == nil {
			badges = []*models.Badge{}
		}

		h.responder.WriteJSON(w, badges)
	}
}

// getBadge returns a single badge by id
func (h badgeHandler) getBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badgeID, err := parseIDParam(r, "badgeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		badge, err := h.badgeRepo.FindByID(badgeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "badge", err))
			return
		}

		if badge == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("badge not found"))
			return
		}

		h.responder.WriteJSON(w, badge)
	}
}

// createBadge inserts a badge; a duplicate name yields a conflict
func (h badgeHandler) createBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req badgeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("badge name is required"))
			return
		}

		color := req.Color
		if color == "" {
			color = models.DefaultBadgeColor
		}

		badge := models.Badge{Name: name, Color: color}
		if err := h.badgeRepo.Add(&badge); err != nil {
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewConflictError("الشارة موجودة بالفعل (badge already exists)"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "badge", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, badge)
	}
}

// updateBadge renames or recolors a badge
func (h badgeHandler) updateBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badgeID, err := parseIDParam(r, "badgeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		badge, err := h.badgeRepo.FindByID(badgeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "badge", err))
			return
		}

		if badge == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("badge not found"))
			return
		}

		var req badgeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("badge name is required"))
			return
		}

		badge.Name = name
		if req.Color != "" {
			badge.Color = req.Color
		}

		if err := h.badgeRepo.Update(badge); err != nil {
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewConflictError("الشارة موجودة بالفعل (badge already exists)"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "badge", err))
			return
		}

		h.responder.WriteJSON(w, badge)
	}
}

// deleteBadge removes a badge and its project associations; idempotent
func (h badgeHandler) deleteBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badgeID, err := parseIDParam(r, "badgeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.badgeRepo.Delete(badgeID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "badge", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "badge deleted successfully",
		})
	}
}
