package gamification

import (
	"finbuddy/internal/catalog"
	"finbuddy/internal/model"
)

const (
	// QuizPassMark is the score counted as a pass toward quiz_master
	QuizPassMark = 70

	quizMasterCount     = 5
	moduleExplorerCount = 10
)

// badgeRules maps badge ids to their thresholds. budget_expert and
// investment_guru are cataloged but have no rule and are never awarded.
var badgeRules = map[string]func(p *model.UserProfile) bool{
	catalog.BadgeFirstQuestion: func(p *model.UserProfile) bool { return p.TotalQuestions >= 1 },
	catalog.BadgeStreak3:       func(p *model.UserProfile) bool { return p.StreakCount >= 3 },
	catalog.BadgeStreak7:       func(p *model.UserProfile) bool { return p.StreakCount >= 7 },
	catalog.BadgeStreak30:      func(p *model.UserProfile) bool { return p.StreakCount >= 30 },
	catalog.BadgeQuizMaster: func(p *model.UserProfile) bool {
		return p.PassedQuizCount(QuizPassMark) >= quizMasterCount
	},
	catalog.BadgeModuleExplorer: func(p *model.UserProfile) bool {
		return len(p.ModulesCompleted) >= moduleExplorerCount
	},
}

// NewBadges returns the ids of badges the profile qualifies for but does not
// hold yet, in catalog order. It does not modify the profile.
func NewBadges(p *model.UserProfile) []string {
	out := []string{}
	for _, b := range catalog.Badges() {
		rule, ok := badgeRules[b.ID]
		if !ok || p.HasBadge(b.ID) {
			continue
		}
		if rule(p) {
			out = append(out, b.ID)
		}
	}
	return out
}

// AwardBadges adds every newly qualified badge and its XP, then recomputes
// the level once. It returns the badges awarded.
func AwardBadges(p *model.UserProfile) []string {
	earned := NewBadges(p)
	for _, id := range earned {
		p.Badges = append(p.Badges, id)
		if b, ok := catalog.BadgeByID(id); ok {
			p.TotalXP += b.XPReward
		}
	}
	p.Level = Level(p.TotalXP)
	return earned
}

// AddXP adds a non-negative award and recomputes the level.
func AddXP(p *model.UserProfile, xp int) {
	if xp > 0 {
		p.TotalXP += xp
	}
	p.Level = Level(p.TotalXP)
}
