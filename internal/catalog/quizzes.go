package catalog

import "finbuddy/internal/model"

var quizzes = []model.Quiz{
	{
		ID:           "budgeting-basics-quiz",
		Title:        "Budgeting Basics Quiz",
		Description:  "Test your knowledge of budgeting fundamentals",
		Category:     "budgeting",
		Stage:        model.StageGeneral,
		PassingScore: 70,
		XPReward:     30,
		Questions: []model.QuizQuestion{
			{
				Text:        "What percentage of income should typically go to needs in a basic budget?",
				Options:     []string{"30%", "50%", "70%", "90%"},
				Correct:     1,
				Explanation: "The 50/30/20 rule suggests 50% for needs, 30% for wants, and 20% for savings.",
			},
			{
				Text:        "Which is considered a 'need' rather than a 'want'?",
				Options:     []string{"Streaming subscriptions", "Rent payment", "Dining out", "New clothes"},
				Correct:     1,
				Explanation: "Rent is a necessity for shelter, while the others are typically wants.",
			},
			{
				Text:        "How often should you review and adjust your budget?",
				Options:     []string{"Never", "Once a year", "Monthly", "Daily"},
				Correct:     2,
				Explanation: "Monthly budget reviews help you stay on track and make necessary adjustments.",
			},
			{
				Text:        "What's the first step in creating a budget?",
				Options:     []string{"Set spending limits", "Track your current spending", "Open a savings account", "Pay off debt"},
				Correct:     1,
				Explanation: "You need to know where your money currently goes before you can make a budget.",
			},
			{
				Text:        "An emergency fund should typically cover how many months of expenses?",
				Options:     []string{"1 month", "3-6 months", "1 year", "2 years"},
				Correct:     1,
				Explanation: "3-6 months of expenses provides adequate coverage for most emergencies.",
			},
		},
	},
	{
		ID:           "credit-score-fundamentals",
		Title:        "Credit Score Fundamentals",
		Description:  "Test your understanding of credit scores and credit building",
		Category:     "credit",
		Stage:        model.StageGeneral,
		PassingScore: 70,
		XPReward:     25,
		Questions: []model.QuizQuestion{
			{
				Text:        "What factor has the biggest impact on your credit score?",
				Options:     []string{"Credit utilization", "Payment history", "Length of credit history", "Types of credit"},
				Correct:     1,
				Explanation: "Payment history makes up 35% of your credit score and is the most important factor.",
			},
			{
				Text:        "What's the ideal credit utilization ratio?",
				Options:     []string{"Below 10%", "Below 30%", "Below 50%", "Below 70%"},
				Correct:     1,
				Explanation: "Keeping credit utilization below 30% helps maintain a good credit score.",
			},
			{
				Text:        "How long do negative items typically stay on your credit report?",
				Options:     []string{"2 years", "5 years", "7 years", "10 years"},
				Correct:     2,
				Explanation: "Most negative items stay on your credit report for 7 years.",
			},
			{
				Text:        "Which action will NOT help improve your credit score?",
				Options:     []string{"Paying bills on time", "Closing old credit cards", "Keeping balances low", "Checking credit report regularly"},
				Correct:     1,
				Explanation: "Closing old cards can hurt your credit by reducing available credit and shortening credit history.",
			},
		},
	},
	{
		ID:           "investment-basics-quiz",
		Title:        "Investment Basics Quiz",
		Description:  "Test your knowledge of investment fundamentals",
		Category:     "investing",
		Stage:        model.StageGeneral,
		PassingScore: 70,
		XPReward:     35,
		Questions: []model.QuizQuestion{
			{
				Text:        "What is compound interest?",
				Options:     []string{"Interest on interest", "Simple interest", "Bank fees", "Investment losses"},
				Correct:     0,
				Explanation: "Compound interest is earning interest on both your principal and previously earned interest.",
			},
			{
				Text:        "Which investment typically has the highest risk and potential return?",
				Options:     []string{"Savings account", "Government bonds", "Individual stocks", "CDs"},
				Correct:     2,
				Explanation: "Individual stocks have higher volatility but potentially higher returns than other options.",
			},
			{
				Text:        "What does diversification mean in investing?",
				Options:     []string{"Buying one stock", "Spreading investments across different assets", "Only investing in bonds", "Day trading"},
				Correct:     1,
				Explanation: "Diversification reduces risk by spreading investments across different types of assets.",
			},
			{
				Text:        "What is an index fund?",
				Options:     []string{"A single stock", "A fund that tracks a market index", "A government bond", "A savings account"},
				Correct:     1,
				Explanation: "Index funds track market indexes like the S&P 500 and provide instant diversification.",
			},
			{
				Text:        "When is the best time to start investing?",
				Options:     []string{"When you're rich", "When you're 40", "As early as possible", "Never"},
				Correct:     2,
				Explanation: "Starting early allows compound interest to work in your favor over time.",
			},
		},
	},
}

// Quizzes returns a copy of the seed quiz catalog
func Quizzes() []model.Quiz {
	out := make([]model.Quiz, len(quizzes))
	for i, q := range quizzes {
		q.Questions = append([]model.QuizQuestion(nil), q.Questions...)
		out[i] = q
	}
	return out
}
