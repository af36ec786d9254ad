// Package catalog holds the static badge, module, quiz and prompt tables.
package catalog

import "finbuddy/internal/model"

const (
	BadgeFirstQuestion  = "first_question"
	BadgeStreak3        = "streak_3"
	BadgeStreak7        = "streak_7"
	BadgeStreak30       = "streak_30"
	BadgeQuizMaster     = "quiz_master"
	BadgeModuleExplorer = "module_explorer"
	BadgeBudgetExpert   = "budget_expert"   // reserved, no award rule
	BadgeInvestmentGuru = "investment_guru" // reserved, no award rule
)

var badges = []model.Badge{
	{ID: BadgeFirstQuestion, Name: "Curious Beginner", Description: "Asked your first financial question", Icon: "🔍", Requirement: "Ask 1 question", XPReward: 10},
	{ID: BadgeStreak3, Name: "Getting Started", Description: "Maintained a 3-day learning streak", Icon: "🔥", Requirement: "3-day streak", XPReward: 25},
	{ID: BadgeStreak7, Name: "Committed Learner", Description: "Maintained a 7-day learning streak", Icon: "🌟", Requirement: "7-day streak", XPReward: 50},
	{ID: BadgeStreak30, Name: "Financial Warrior", Description: "Maintained a 30-day learning streak", Icon: "⚡", Requirement: "30-day streak", XPReward: 100},
	{ID: BadgeQuizMaster, Name: "Quiz Master", Description: "Completed 5 quizzes with passing grades", Icon: "🏆", Requirement: "Pass 5 quizzes", XPReward: 75},
	{ID: BadgeModuleExplorer, Name: "Knowledge Seeker", Description: "Completed 10 learning modules", Icon: "📚", Requirement: "Complete 10 modules", XPReward: 60},
	{ID: BadgeBudgetExpert, Name: "Budget Expert", Description: "Completed all budgeting modules and quizzes", Icon: "💰", Requirement: "Master budgeting", XPReward: 100},
	{ID: BadgeInvestmentGuru, Name: "Investment Guru", Description: "Completed all investment modules and quizzes", Icon: "📈", Requirement: "Master investing", XPReward: 100},
}

// Badges returns a copy of the badge catalog in display order
func Badges() []model.Badge {
	return append([]model.Badge(nil), badges...)
}

// BadgeByID looks up a badge definition
func BadgeByID(id string) (model.Badge, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}
