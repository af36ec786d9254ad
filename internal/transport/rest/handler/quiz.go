package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"finbuddy/internal/logger"
	"finbuddy/internal/model"
)

// QuizService is what QuizHandler needs from the quiz service
type QuizService interface {
	List(ctx context.Context, stage model.Stage) ([]model.QuizView, error)
	Submit(ctx context.Context, quizID string, sub *model.QuizSubmission) (*model.QuizResult, error)
}

// QuizHandler handles quiz endpoints
type QuizHandler struct {
	quizSvc QuizService
	log     *logger.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc QuizService, log *logger.Logger) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc, log: log}
}

// List handles GET /api/quizzes?user_stage=
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	stage := model.Stage(r.URL.Query().Get("user_stage"))

	quizzes, err := h.quizSvc.List(r.Context(), stage)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve quizzes")
		return
	}

	writeJSON(w, http.StatusOK, quizzes)
}

// Submit handles POST /api/quizzes/{quiz_id}/submit. The path id wins over
// any quiz_id in the body.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	quizID := mux.Vars(r)["quiz_id"]

	var sub model.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sub.QuizID = quizID

	res, err := h.quizSvc.Submit(r.Context(), quizID, &sub)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to submit quiz")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
