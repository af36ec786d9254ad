package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"finbuddy/internal/logger"
	"finbuddy/internal/model"
)

// ChatService is what ChatHandler needs from the chat service
type ChatService interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)
}

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatSvc ChatService
	log     *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc, log: log}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.chatSvc.Chat(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to process chat message")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /api/chat/history/{session_id}
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	messages, err := h.chatSvc.History(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to retrieve chat history")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
