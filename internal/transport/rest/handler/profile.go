package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"finbuddy/internal/logger"
	"finbuddy/internal/model"
)

// ProgressService is what ProfileHandler needs from the progress service
type ProgressService interface {
	GetProfile(ctx context.Context, sessionID string) (*model.UserProfile, error)
	UpdateStage(ctx context.Context, sessionID string, stage model.Stage) error
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	Rank(ctx context.Context, sessionID string) (*model.LeaderboardEntry, error)
}

// ProfileHandler handles profile, badge and leaderboard endpoints
type ProfileHandler struct {
	progressSvc ProgressService
	badges      func() []model.Badge
	log         *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(progressSvc ProgressService, badges func() []model.Badge, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		progressSvc: progressSvc,
		badges:      badges,
		log:         log,
	}
}

// Get handles GET /api/profile/{session_id}. Unknown sessions yield null.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	profile, err := h.progressSvc.GetProfile(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve user profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateStage handles POST /api/profile/update-stage?session_id=&user_stage=
func (h *ProfileHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessionID := q.Get("session_id")
	stage := model.Stage(q.Get("user_stage"))

	if err := h.progressSvc.UpdateStage(r.Context(), sessionID, stage); err != nil {
		writeServiceError(w, r, h.log, err, "Failed to update user stage")
		return
	}

	writeMessage(w, "User stage updated successfully")
}

// Badges handles GET /api/badges
func (h *ProfileHandler) Badges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.badges())
}

// Leaderboard handles GET /api/leaderboard?limit=
func (h *ProfileHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.progressSvc.Leaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Rank handles GET /api/leaderboard/{session_id}
func (h *ProfileHandler) Rank(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	entry, err := h.progressSvc.Rank(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Root handles GET /api/
func Root(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, "FinBuddy API - Your AI Financial Literacy Assistant")
}
