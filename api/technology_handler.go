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

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

type technologyRequest struct {
	Name string `json:"name"`
}

// listTechnologies returns all technologies ordered by id
func (h technologyHandler) listTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}

		if technologies == nil {
			technologies = []*models.Technology{}
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// getTechnology returns a single technology by id
func (h technologyHandler) getTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}

		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("technology not found"))
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// createTechnology inserts a technology; a duplicate name yields a conflict
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req technologyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("technology name is required"))
			return
		}

		technology := models.Technology{Name: name}
		if err := h.technologyRepo.Add(&technology); err != nil {
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewConflictError("التقنية موجودة بالفعل (technology already exists)"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "technology", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, technology)
	}
}

// updateTechnology renames a technology
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}

		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("technology not found"))
			return
		}

		var req technologyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("technology name is required"))
			return
		}

		technology.Name = name
		if err := h.technologyRepo.Update(technology); err != nil {
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewConflictError("التقنية موجودة بالفعل (technology already exists)"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// deleteTechnology removes a technology; idempotent
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.technologyRepo.Delete(technologyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "technology deleted successfully",
		})
	}
}
