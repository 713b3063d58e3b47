package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-admin-backend/auth"
	"github.com/rpupo63/portfolio-admin-backend/database"
	"github.com/rpupo63/portfolio-admin-backend/errs"
)

const minPasswordLength = 4

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	issuer    auth.TokenIssuer
}

func newAuthHandler(userRepo *database.UserRepo, issuer auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		issuer:    issuer,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// login verifies the admin credentials and issues a session cookie
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("username and password are required"))
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("بيانات الدخول غير صحيحة (invalid credentials)"))
			return
		}

		token, err := h.issuer.Issue(user.ID, user.Username)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("login failed"))
			return
		}

		setSessionCookie(w, token, int(auth.SessionDuration.Seconds()))

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
			"token":   token,
			"user":    userResponse{ID: user.ID, Username: user.Username},
		})
	}
}

// logout clears the session cookie; it always succeeds
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setSessionCookie(w, "", -1)

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
		})
	}
}

// me returns the user behind the current session
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"user": userResponse{ID: claims.UserID, Username: claims.Username},
		})
	}
}

// changePassword rotates the admin password after re-checking the old one
func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.OldPassword == "" || req.NewPassword == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("old password and new password are required"))
			return
		}

		if len(req.NewPassword) < minPasswordLength {
			h.responder.WriteError(w, errs.NewBadRequestError("password must be at least 4 characters"))
			return
		}

		user, err := h.userRepo.FindByUsername(claims.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("كلمة المرور الحالية غير صحيحة (current password is incorrect)"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to hash new password")
			h.responder.WriteError(w, errs.NewInternalError("failed to change password"))
			return
		}

		if err := h.userRepo.UpdatePassword(user.ID, string(hash)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
			"message": "تم تغيير كلمة المرور بنجاح (password changed successfully)",
		})
	}
}
