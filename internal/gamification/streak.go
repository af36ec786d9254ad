package gamification

import (
	"time"

	"finbuddy/internal/model"
)

// StreakTransition describes what ApplyStreak did
type StreakTransition string

const (
	StreakStarted   StreakTransition = "started"
	StreakContinued StreakTransition = "continued"
	StreakReset     StreakTransition = "reset"
	StreakUnchanged StreakTransition = "unchanged"
)

// DaysBetween returns the whole days elapsed from then to now, truncated.
// It counts 24h periods, not calendar boundaries.
func DaysBetween(then, now time.Time) int {
	return int(now.Sub(then) / (24 * time.Hour))
}

// ApplyStreak advances the profile's streak for an interaction at now.
// A same-day interaction leaves LastActivity unchanged.
func ApplyStreak(p *model.UserProfile, now time.Time) StreakTransition {
	if p.LastActivity == nil || p.LastActivity.IsZero() {
		p.StreakCount = 1
		if p.MaxStreak < p.StreakCount {
			p.MaxStreak = p.StreakCount
		}
		p.LastActivity = &now
		return StreakStarted
	}

	switch d := DaysBetween(*p.LastActivity, now); {
	case d == 1:
		p.StreakCount++
		if p.StreakCount > p.MaxStreak {
			p.MaxStreak = p.StreakCount
		}
		p.LastActivity = &now
		return StreakContinued
	case d > 1:
		p.StreakCount = 1
		p.LastActivity = &now
		return StreakReset
	default:
		return StreakUnchanged
	}
}
