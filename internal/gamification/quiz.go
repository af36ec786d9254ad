package gamification

import "finbuddy/internal/model"

// NoAnswer is reported for missing or out-of-range selections
const NoAnswer = "No answer"

// QuizScore is the outcome of grading one submission
type QuizScore struct {
	Correct  int
	Total    int
	Score    int // 0-100, truncated
	Passed   bool
	XPEarned int
	Results  []model.QuestionResult
}

// ScoreQuiz grades answers against the quiz's answer key. Answers beyond the
// question count are ignored; missing ones are never correct.
func ScoreQuiz(q *model.Quiz, answers []int) QuizScore {
	s := QuizScore{
		Total:   len(q.Questions),
		Results: make([]model.QuestionResult, 0, len(q.Questions)),
	}

	for i, question := range q.Questions {
		chosen := -1
		if i < len(answers) {
			chosen = answers[i]
		}

		valid := chosen >= 0 && chosen < len(question.Options)
		isCorrect := valid && chosen == question.Correct
		if isCorrect {
			s.Correct++
		}

		yours := NoAnswer
		if valid {
			yours = question.Options[chosen]
		}
		var correct string
		if question.Correct >= 0 && question.Correct < len(question.Options) {
			correct = question.Options[question.Correct]
		}

		s.Results = append(s.Results, model.QuestionResult{
			Question:      question.Text,
			YourAnswer:    yours,
			CorrectAnswer: correct,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		})
	}

	if s.Total > 0 {
		s.Score = s.Correct * 100 / s.Total
	}
	s.Passed = s.Score >= q.PassingScore
	if s.Passed {
		s.XPEarned = q.XPReward
	} else {
		s.XPEarned = q.XPReward / 2
	}
	return s
}
