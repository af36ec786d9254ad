package service

import (
	"context"

	"finbuddy/internal/event"
	"finbuddy/internal/gamification"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/repository"
)

// QuizService lists quizzes and grades submissions
type QuizService struct {
	quizRepo   repository.QuizRepo
	catalogSvc *CatalogService
	progress   *ProgressService
	publisher  event.Publisher
	log        *logger.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(quizRepo repository.QuizRepo, catalogSvc *CatalogService, progress *ProgressService, log *logger.Logger) *QuizService {
	return &QuizService{
		quizRepo:   quizRepo,
		catalogSvc: catalogSvc,
		progress:   progress,
		publisher:  event.NoopPublisher{},
		log:        log,
	}
}

// SetPublisher injects the event publisher
func (s *QuizService) SetPublisher(p event.Publisher) {
	s.publisher = p
}

// List returns quizzes for the stage plus general ones, without answer keys
func (s *QuizService) List(ctx context.Context, stage model.Stage) ([]model.QuizView, error) {
	if err := s.catalogSvc.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	quizzes, err := s.quizRepo.List(ctx, stage, defaultListLimit)
	if err != nil {
		return nil, err
	}

	views := make([]model.QuizView, len(quizzes))
	for i, q := range quizzes {
		views[i] = q.View()
	}
	return views, nil
}

// Submit grades the answers and, when the session has a profile, records
// the score and XP
func (s *QuizService) Submit(ctx context.Context, quizID string, sub *model.QuizSubmission) (*model.QuizResult, error) {
	if err := s.catalogSvc.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	score := gamification.ScoreQuiz(quiz, sub.Answers)

	newBadges := []string{}
	if sub.SessionID != "" {
		earned, found, err := s.progress.RecordQuizScore(ctx, sub.SessionID, quiz.ID, score)
		if err != nil {
			return nil, err
		}
		if found {
			newBadges = earned
			if err := s.publisher.Publish(ctx, event.New(event.QuizSubmitted, sub.SessionID, map[string]interface{}{
				"quiz_id":   quiz.ID,
				"score":     score.Score,
				"passed":    score.Passed,
				"xp_earned": score.XPEarned,
			})); err != nil {
				s.log.Warn("event publish failed", "type", event.QuizSubmitted, "session_id", sub.SessionID, "error", err)
			}
		}
	}

	return &model.QuizResult{
		Score:          score.Score,
		TotalQuestions: score.Total,
		CorrectAnswers: score.Correct,
		Passed:         score.Passed,
		XPEarned:       score.XPEarned,
		Results:        score.Results,
		NewBadges:      newBadges,
	}, nil
}
