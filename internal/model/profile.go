package model

import "time"

// UserProfile is the per-session progress record
type UserProfile struct {
	ID               string         `json:"id" bson:"id"`
	SessionID        string         `json:"session_id" bson:"session_id"`
	Stage            Stage          `json:"user_stage" bson:"user_stage"`
	StreakCount      int            `json:"streak_count" bson:"streak_count"`
	MaxStreak        int            `json:"max_streak" bson:"max_streak"` // high-water mark of StreakCount
	TotalQuestions   int            `json:"total_questions" bson:"total_questions"`
	TotalXP          int            `json:"total_xp" bson:"total_xp"`
	Level            int            `json:"level" bson:"level"` // derived from TotalXP
	Badges           []string       `json:"badges" bson:"badges"`
	ModulesCompleted []string       `json:"modules_completed" bson:"modules_completed"`
	QuizScores       map[string]int `json:"quiz_scores" bson:"quiz_scores"`
	LastActivity     *time.Time     `json:"last_activity" bson:"last_activity"`
	CreatedAt        time.Time      `json:"created_at" bson:"created_at"`
}

// HasBadge reports whether the badge id is already held
func (p *UserProfile) HasBadge(id string) bool {
	return contains(p.Badges, id)
}

// HasCompletedModule reports whether the module id is already completed
func (p *UserProfile) HasCompletedModule(id string) bool {
	return contains(p.ModulesCompleted, id)
}

// PassedQuizCount counts quiz scores at or above the passing mark
func (p *UserProfile) PassedQuizCount(passMark int) int {
	n := 0
	for _, score := range p.QuizScores {
		if score >= passMark {
			n++
		}
	}
	return n
}

// Normalize fills nil collections so the record encodes as empty arrays/objects
func (p *UserProfile) Normalize() {
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.ModulesCompleted == nil {
		p.ModulesCompleted = []string{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string]int{}
	}
	if p.Stage == "" {
		p.Stage = StageGeneral
	}
	if p.Level < 1 {
		p.Level = 1
	}
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
