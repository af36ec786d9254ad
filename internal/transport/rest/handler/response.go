package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"finbuddy/internal/logger"
	"finbuddy/internal/service"
	"finbuddy/internal/transport/rest/middleware"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// writeServiceError maps service errors to a status. Anything unexpected is
// logged and answered with the endpoint's fixed message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, invalidReason(err))
	case errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "User profile not found")
	case errors.Is(err, service.ErrModuleNotFound):
		writeError(w, http.StatusNotFound, "Module not found")
	case errors.Is(err, service.ErrQuizNotFound):
		writeError(w, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, service.ErrSessionBusy):
		writeError(w, http.StatusConflict, "Session is busy, please retry")
	default:
		log.Error(fallback,
			"request_id", middleware.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// invalidReason returns the client-facing part of a validation error,
// without any wrapping context added on the way up
func invalidReason(err error) string {
	var ie *service.InvalidRequestError
	if errors.As(err, &ie) {
		return ie.Reason
	}
	return service.ErrInvalidRequest.Error()
}
