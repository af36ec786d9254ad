package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/transport/rest/handler"
	"finbuddy/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	ChatService     handler.ChatService
	ModuleService   handler.ModuleService
	QuizService     handler.QuizService
	ProgressService handler.ProgressService
	Badges          func() []model.Badge
	Logger          *logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	chatHandler := handler.NewChatHandler(c.ChatService, c.Logger)
	moduleHandler := handler.NewModuleHandler(c.ModuleService, c.Logger)
	quizHandler := handler.NewQuizHandler(c.QuizService, c.Logger)
	profileHandler := handler.NewProfileHandler(c.ProgressService, c.Badges, c.Logger)

	// CORS first so preflight requests never reach handlers
	r.Use(corsMiddleware)
	r.Use(middleware.RequestLogger(c.Logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", handler.Root).Methods("GET", "OPTIONS")

	api.HandleFunc("/chat", chatHandler.Chat).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat/history/{session_id}", chatHandler.History).Methods("GET", "OPTIONS")

	api.HandleFunc("/modules", moduleHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/modules/{module_id}/complete", moduleHandler.Complete).Methods("POST", "OPTIONS")

	api.HandleFunc("/quizzes", quizHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/quizzes/{quiz_id}/submit", quizHandler.Submit).Methods("POST", "OPTIONS")

	api.HandleFunc("/badges", profileHandler.Badges).Methods("GET", "OPTIONS")
	api.HandleFunc("/profile/update-stage", profileHandler.UpdateStage).Methods("POST", "OPTIONS")
	api.HandleFunc("/profile/{session_id}", profileHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/leaderboard", profileHandler.Leaderboard).Methods("GET", "OPTIONS")
	api.HandleFunc("/leaderboard/{session_id}", profileHandler.Rank).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, X-Request-ID"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
