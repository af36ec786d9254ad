package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finbuddy/internal/catalog"
	"finbuddy/internal/event"
	"finbuddy/internal/llm"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/repository"
)

const defaultHistoryLimit = 100

// ChatService forwards chat messages to the generator and records the turn
type ChatService struct {
	progress     *ProgressService
	chatRepo     repository.ChatRepo
	generator    llm.Generator
	publisher    event.Publisher
	log          *logger.Logger
	historyLimit int64
	now          func() time.Time
}

// NewChatService creates a new chat service
func NewChatService(progress *ProgressService, chatRepo repository.ChatRepo, generator llm.Generator, log *logger.Logger) *ChatService {
	return &ChatService{
		progress:     progress,
		chatRepo:     chatRepo,
		generator:    generator,
		publisher:    event.NoopPublisher{},
		log:          log,
		historyLimit: defaultHistoryLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetPublisher injects the event publisher
func (s *ChatService) SetPublisher(p event.Publisher) {
	s.publisher = p
}

// SetHistoryLimit caps how many turns History returns
func (s *ChatService) SetHistoryLimit(n int64) {
	if n > 0 {
		s.historyLimit = n
	}
}

// Chat records the question, then asks the model. Progress already written
// is kept when generation fails.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, invalidf("session_id and message are required")
	}
	stage := req.Stage.OrGeneral()

	if _, err := s.progress.RecordQuestion(ctx, req.SessionID, stage); err != nil {
		return nil, fmt.Errorf("record question: %w", err)
	}

	reply, err := s.generator.Generate(ctx, llm.Request{
		System:  catalog.SystemPrompt(stage),
		Message: req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	turn := &model.ChatMessage{
		SessionID: req.SessionID,
		Message:   req.Message,
		Response:  reply,
		Stage:     stage,
		Timestamp: s.now(),
	}
	if err := s.chatRepo.Create(ctx, turn); err != nil {
		return nil, fmt.Errorf("save chat turn: %w", err)
	}

	if err := s.publisher.Publish(ctx, event.New(event.ChatMessage, req.SessionID, map[string]interface{}{
		"user_stage": stage,
		"model":      s.generator.ModelID(),
	})); err != nil {
		s.log.Warn("event publish failed", "type", event.ChatMessage, "session_id", req.SessionID, "error", err)
	}

	return &model.ChatResponse{
		Response:  reply,
		SessionID: req.SessionID,
		Timestamp: s.now(),
	}, nil
}

// History returns the session's chat turns, oldest first
func (s *ChatService) History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	return s.chatRepo.ListBySession(ctx, sessionID, s.historyLimit)
}
