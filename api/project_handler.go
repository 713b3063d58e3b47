package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-admin-backend/database"
	"github.com/rpupo63/portfolio-admin-backend/errs"
	"github.com/rpupo63/portfolio-admin-backend/models"
)

// projectsPerPage is the fixed page size of the public project listing.
const projectsPerPage = 6

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

type projectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	ProjectURL  *string `json:"project_url"`
	Badges      *[]uint `json:"badges"`
}

// projectPage is the paginated listing payload
type projectPage struct {
	Data       []*models.Project `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

func parseIDParam(r *http.Request, name string) (uint, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// listProjects returns one page of projects, newest first, with badges
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
				page = parsed
			}
		}

		projects, total, err := h.projectRepo.FindPage(page, projectsPerPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		for _, project := range projects {
			if project.Badges == nil {
				project.Badges = []models.Badge{}
			}
		}

		totalPages := int((total + projectsPerPage - 1) / projectsPerPage)

		h.responder.WriteJSON(w, projectPage{
			Data: projects,
			Pagination: Pagination{
				Page:       page,
				TotalPages: totalPages,
				Total:      total,
				HasMore:    page < totalPages,
			},
		})
	}
}

// getProject returns a single project with its badges
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if project.Badges == nil {
			project.Badges = []models.Badge{}
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject inserts a project and optionally attaches badges by id
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and description are required"))
			return
		}

		project := models.Project{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			ProjectURL:  req.ProjectURL,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		if req.Badges != nil && len(*req.Badges) > 0 {
			if err := h.projectRepo.ReplaceBadges(project.ID, *req.Badges); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("attach badges to", "project", err))
				return
			}
		}

		// Reload to include generated timestamps and badges
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}
		if created.Badges == nil {
			created.Badges = []models.Badge{}
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject updates a project's fields and, when a badge list is
// supplied, replaces the full badge set
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and description are required"))
			return
		}

		existing.Name = req.Name
		existing.Description = req.Description
		existing.ImageURL = req.ImageURL
		existing.ProjectURL = req.ProjectURL

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		if req.Badges != nil {
			if err := h.projectRepo.ReplaceBadges(projectID, *req.Badges); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("replace badges on", "project", err))
				return
			}
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}
		if updated.Badges == nil {
			updated.Badges = []models.Badge{}
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project and its badge associations. Deleting an
// id that is already gone still reports success.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
