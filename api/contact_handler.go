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

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
}

func newContactHandler(messageRepo *database.ContactMessageRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message"`
}

// submitMessage accepts a contact-form submission from the public site
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Name) == "" ||
			strings.TrimSpace(req.Email) == "" ||
			strings.TrimSpace(req.ProjectType) == "" ||
			strings.TrimSpace(req.Message) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("all fields are required"))
			return
		}

		message := models.ContactMessage{
			Name:        req.Name,
			Email:       req.Email,
			ProjectType: req.ProjectType,
			Message:     req.Message,
		}

		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, message)
	}
}

// listMessages returns the admin inbox, newest first
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		if messages == nil {
			messages = []*models.ContactMessage{}
		}

		h.responder.WriteJSON(w, messages)
	}
}

// getMessage returns a single contact message by id
func (h contactHandler) getMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact message", err))
			return
		}

		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

// deleteMessage removes a contact message; idempotent
func (h contactHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
