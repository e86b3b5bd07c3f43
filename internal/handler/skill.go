package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillfolio/skillfolio/internal/auth"
	"github.com/skillfolio/skillfolio/internal/handler/dto"
	"github.com/skillfolio/skillfolio/internal/service"
)

// SkillHandler handles HTTP requests for skill operations. The owning
// user always comes from the auth context, never from request data.
type SkillHandler struct {
	svc    *service.SkillService
	logger *slog.Logger
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(svc *service.SkillService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /skills.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.CreateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
	}

	skill, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("skill_created",
		"skill_id", skill.ID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusCreated, dto.ToSkillResponse(skill))
}

// Get handles GET /skills/{skillId}.
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	skillID, ok := h.skillIDParam(w, r)
	if !ok {
		return
	}

	skill, err := h.svc.Get(r.Context(), userID, skillID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSkillResponse(skill))
}

// List handles GET /skills.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	skills, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSkillListResponse(skills))
}

// Update handles PATCH /skills/{skillId}.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	skillID, ok := h.skillIDParam(w, r)
	if !ok {
		return
	}

	var req dto.UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
	}

	skill, err := h.svc.Update(r.Context(), userID, skillID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("skill_updated",
		"skill_id", skill.ID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusOK, dto.ToSkillResponse(skill))
}

// Delete handles DELETE /skills/{skillId}.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	skillID, ok := h.skillIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, skillID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("skill_deleted",
		"skill_id", skillID,
		"user_id", userID,
	)

	w.WriteHeader(http.StatusNoContent)
}

// skillIDParam parses the {skillId} path segment. A non-numeric id can
// never reference a record, so it gets the same not-found answer.
func (h *SkillHandler) skillIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "skillId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "SKILL_NOT_FOUND", "Skill not found")
		return 0, false
	}
	return id, true
}

// handleServiceError maps skill service errors to HTTP responses.
// Not-found deliberately answers 400, matching the existing wire
// contract, and never reveals whether the record exists for someone else.
func (h *SkillHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSkillNameRequired):
		writeError(w, http.StatusBadRequest, "NAME_REQUIRED", "Skill name is required")
	case errors.Is(err, service.ErrSkillLinkRequired):
		writeError(w, http.StatusBadRequest, "LINK_REQUIRED", "Skill link is required")
	case errors.Is(err, service.ErrSkillNotFound):
		writeError(w, http.StatusBadRequest, "SKILL_NOT_FOUND", "Skill not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", lastErrorLine(err))
	}
}
