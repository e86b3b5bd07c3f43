package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skillfolio/skillfolio/internal/auth"
	"github.com/skillfolio/skillfolio/internal/handler/dto"
	"github.com/skillfolio/skillfolio/internal/service"
)

// UserHandler handles current-user profile requests.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Me handles GET /users/me. The profile comes straight from the auth
// context the middleware attached; no extra database read.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing token")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProfileResponse(authCtx))
}

// Update handles PATCH /users/me.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing token")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}

	user, err := h.svc.Update(r.Context(), authCtx.UserID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_updated", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// handleServiceError maps user service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoFields):
		writeError(w, http.StatusBadRequest, "NO_FIELDS", "No fields to update")
	case errors.Is(err, service.ErrEmailInvalid):
		writeError(w, http.StatusBadRequest, "EMAIL_INVALID", "Email format is invalid")
	case errors.Is(err, service.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, "PASSWORD_REQUIRED", "Password is required")
	case errors.Is(err, service.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "PASSWORD_TOO_SHORT", "Password must be at least 6 characters")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusForbidden, "EMAIL_TAKEN", "Email already exists")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusBadRequest, "USER_NOT_FOUND", "User not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", lastErrorLine(err))
	}
}
