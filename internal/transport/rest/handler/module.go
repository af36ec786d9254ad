package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"finbuddy/internal/logger"
	"finbuddy/internal/model"
)

// ModuleService is what ModuleHandler needs from the module service
type ModuleService interface {
	List(ctx context.Context, stage model.Stage) ([]*model.LearningModule, error)
	Complete(ctx context.Context, moduleID, sessionID string) (*model.ModuleCompletion, error)
}

// ModuleHandler handles learning module endpoints
type ModuleHandler struct {
	moduleSvc ModuleService
	log       *logger.Logger
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(moduleSvc ModuleService, log *logger.Logger) *ModuleHandler {
	return &ModuleHandler{moduleSvc: moduleSvc, log: log}
}

// List handles GET /api/modules?user_stage=
func (h *ModuleHandler) List(w http.ResponseWriter, r *http.Request) {
	stage := model.Stage(r.URL.Query().Get("user_stage"))

	modules, err := h.moduleSvc.List(r.Context(), stage)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve learning modules")
		return
	}

	writeJSON(w, http.StatusOK, modules)
}

// Complete handles POST /api/modules/{module_id}/complete?session_id=
func (h *ModuleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["module_id"]
	sessionID := r.URL.Query().Get("session_id")

	res, err := h.moduleSvc.Complete(r.Context(), moduleID, sessionID)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to complete module")
		return
	}
	if res.AlreadyCompleted {
		writeMessage(w, res.Message)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
