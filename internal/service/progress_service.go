package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finbuddy/internal/cache"
	"finbuddy/internal/event"
	"finbuddy/internal/gamification"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/repository"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// ProgressService owns every read-modify-write of a user profile
type ProgressService struct {
	profileRepo repository.ProfileRepo
	locker      cache.Locker
	leaderboard cache.LeaderboardCache
	publisher   event.Publisher
	log         *logger.Logger
	now         func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(profileRepo repository.ProfileRepo, locker cache.Locker, log *logger.Logger) *ProgressService {
	return &ProgressService{
		profileRepo: profileRepo,
		locker:      locker,
		leaderboard: cache.NoopLeaderboard{},
		publisher:   event.NoopPublisher{},
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SetLeaderboard injects the XP leaderboard
func (s *ProgressService) SetLeaderboard(lb cache.LeaderboardCache) {
	s.leaderboard = lb
}

// SetPublisher injects the event publisher
func (s *ProgressService) SetPublisher(p event.Publisher) {
	s.publisher = p
}

// SetClock overrides the time source
func (s *ProgressService) SetClock(now func() time.Time) {
	s.now = now
}

// GetProfile returns the profile or nil when the session is unknown
func (s *ProgressService) GetProfile(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, invalidf("session_id is required")
	}
	return s.profileRepo.GetBySessionID(ctx, sessionID)
}

// UpdateStage sets the session's stage; XP, level and badges are untouched
func (s *ProgressService) UpdateStage(ctx context.Context, sessionID string, stage model.Stage) error {
	if strings.TrimSpace(sessionID) == "" {
		return invalidf("session_id is required")
	}
	if !stage.Valid() {
		return invalidf("unknown user_stage %q", stage)
	}
	return s.withSession(ctx, sessionID, func() error {
		return s.profileRepo.UpdateStage(ctx, sessionID, stage)
	})
}

// RecordQuestion applies the streak and question count for one chat turn.
// A new profile starts with one question and no badge evaluation.
func (s *ProgressService) RecordQuestion(ctx context.Context, sessionID string, stage model.Stage) (*model.UserProfile, error) {
	var out *model.UserProfile
	err := s.withSession(ctx, sessionID, func() error {
		now := s.now()
		profile, err := s.profileRepo.GetBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}

		if profile == nil {
			profile = &model.UserProfile{
				SessionID:      sessionID,
				Stage:          stage,
				TotalQuestions: 1,
				CreatedAt:      now,
			}
			transition := gamification.ApplyStreak(profile, now)
			profile.Level = gamification.Level(profile.TotalXP)
			if err := s.profileRepo.Create(ctx, profile); err != nil {
				return err
			}
			s.log.Debug("profile created", "session_id", sessionID, "streak", transition)
			s.afterSave(ctx, profile, profile.Level, nil)
			out = profile
			return nil
		}

		prevLevel := profile.Level
		transition := gamification.ApplyStreak(profile, now)
		profile.TotalQuestions++
		earned := gamification.AwardBadges(profile)
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return err
		}
		s.log.Debug("question recorded", "session_id", sessionID, "streak", transition, "new_badges", earned)
		s.afterSave(ctx, profile, prevLevel, earned)
		out = profile
		return nil
	})
	return out, err
}

// CompleteModule marks a module done once per session and awards its XP
func (s *ProgressService) CompleteModule(ctx context.Context, sessionID string, module *model.LearningModule) (*model.ModuleCompletion, error) {
	var out *model.ModuleCompletion
	err := s.withSession(ctx, sessionID, func() error {
		profile, err := s.profileRepo.GetBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}
		if profile.HasCompletedModule(module.ID) {
			out = &model.ModuleCompletion{Message: "Module already completed", AlreadyCompleted: true}
			return nil
		}

		prevLevel := profile.Level
		profile.ModulesCompleted = append(profile.ModulesCompleted, module.ID)
		gamification.AddXP(profile, module.XPReward)
		earned := gamification.AwardBadges(profile)
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return err
		}
		s.afterSave(ctx, profile, prevLevel, earned)
		s.publish(ctx, event.New(event.ModuleCompleted, sessionID, map[string]interface{}{
			"module_id": module.ID,
			"xp_earned": module.XPReward,
		}))

		xp, level := module.XPReward, profile.Level
		out = &model.ModuleCompletion{
			Message:   "Module completed successfully",
			XPEarned:  &xp,
			NewBadges: earned,
			NewLevel:  &level,
		}
		return nil
	})
	return out, err
}

// RecordQuizScore overwrites the quiz score and awards XP. It returns nil
// badges and no error when the session has no profile.
func (s *ProgressService) RecordQuizScore(ctx context.Context, sessionID, quizID string, score gamification.QuizScore) ([]string, bool, error) {
	var (
		earned []string
		found  bool
	)
	err := s.withSession(ctx, sessionID, func() error {
		profile, err := s.profileRepo.GetBySessionID(ctx, sessionID)
		if err != nil || profile == nil {
			return err
		}
		found = true
		profile.Normalize()

		prevLevel := profile.Level
		profile.QuizScores[quizID] = score.Score
		gamification.AddXP(profile, score.XPEarned)
		earned = gamification.AwardBadges(profile)
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return err
		}
		s.afterSave(ctx, profile, prevLevel, earned)
		return nil
	})
	return earned, found, err
}

// Leaderboard returns the top sessions by XP
func (s *ProgressService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	top, err := s.leaderboard.GetTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	entries := make([]model.LeaderboardEntry, len(top))
	for i, e := range top {
		entries[i] = model.LeaderboardEntry{
			SessionID: e.SessionID,
			TotalXP:   e.XP,
			Level:     gamification.Level(e.XP),
			Rank:      e.Rank,
		}
	}
	return entries, nil
}

// Rank returns the session's leaderboard position; Rank is 0 when the
// session has no score yet
func (s *ProgressService) Rank(ctx context.Context, sessionID string) (*model.LeaderboardEntry, error) {
	profile, err := s.GetProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	rank, err := s.leaderboard.GetRank(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard rank: %w", err)
	}
	if rank < 0 {
		rank = 0
	}
	return &model.LeaderboardEntry{
		SessionID: sessionID,
		TotalXP:   profile.TotalXP,
		Level:     profile.Level,
		Rank:      int(rank),
	}, nil
}

// withSession runs fn while holding the session's lock
func (s *ProgressService) withSession(ctx context.Context, sessionID string, fn func() error) error {
	if strings.TrimSpace(sessionID) == "" {
		return invalidf("session_id is required")
	}

	unlock, err := s.locker.Lock(ctx, "session:"+sessionID)
	if errors.Is(err, cache.ErrLockTimeout) {
		return fmt.Errorf("%w: %v", ErrSessionBusy, err)
	}
	if err != nil {
		return fmt.Errorf("lock session: %w", err)
	}
	defer unlock()

	return fn()
}

// afterSave fans out side effects; failures are logged, never returned
func (s *ProgressService) afterSave(ctx context.Context, p *model.UserProfile, prevLevel int, earned []string) {
	if err := s.leaderboard.UpdateScore(ctx, p.SessionID, p.TotalXP); err != nil {
		s.log.Warn("leaderboard update failed", "session_id", p.SessionID, "error", err)
	}
	for _, id := range earned {
		s.publish(ctx, event.New(event.BadgeAwarded, p.SessionID, map[string]interface{}{"badge_id": id}))
	}
	if p.Level > prevLevel {
		s.publish(ctx, event.New(event.LevelUp, p.SessionID, map[string]interface{}{
			"from": prevLevel,
			"to":   p.Level,
		}))
	}
}

func (s *ProgressService) publish(ctx context.Context, ev *event.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn("event publish failed", "type", ev.Type, "session_id", ev.SessionID, "error", err)
	}
}
