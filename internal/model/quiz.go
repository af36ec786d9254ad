package model

// QuizQuestion is a stored multiple-choice question including its answer key
type QuizQuestion struct {
	Text        string   `json:"question" bson:"question"`
	Options     []string `json:"options" bson:"options"`
	Correct     int      `json:"correct" bson:"correct"` // index into Options
	Explanation string   `json:"explanation" bson:"explanation"`
}

// Quiz is a stored quiz with answer keys
type Quiz struct {
	ID           string         `json:"id" bson:"id"`
	Title        string         `json:"title" bson:"title"`
	Description  string         `json:"description" bson:"description"`
	Category     string         `json:"category" bson:"category"`
	Stage        Stage          `json:"user_stage" bson:"user_stage"`
	Questions    []QuizQuestion `json:"questions" bson:"questions"`
	PassingScore int            `json:"passing_score" bson:"passing_score"`
	XPReward     int            `json:"xp_reward" bson:"xp_reward"`
}

// QuestionView is a question as shown to clients, without the answer key
type QuestionView struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// QuizView is a quiz as listed to clients
type QuizView struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Stage        Stage          `json:"user_stage"`
	Questions    []QuestionView `json:"questions"`
	PassingScore int            `json:"passing_score"`
	XPReward     int            `json:"xp_reward"`
}

// View strips the answer key from every question
func (q *Quiz) View() QuizView {
	questions := make([]QuestionView, len(q.Questions))
	for i, qq := range q.Questions {
		questions[i] = QuestionView{
			Text:    qq.Text,
			Options: append([]string(nil), qq.Options...),
		}
	}
	return QuizView{
		ID:           q.ID,
		Title:        q.Title,
		Description:  q.Description,
		Category:     q.Category,
		Stage:        q.Stage,
		Questions:    questions,
		PassingScore: q.PassingScore,
		XPReward:     q.XPReward,
	}
}

// QuizSubmission is the body of POST /api/quizzes/{id}/submit
type QuizSubmission struct {
	SessionID string `json:"session_id"`
	QuizID    string `json:"quiz_id"`
	Answers   []int  `json:"answers"` // selected option index per question
}

// QuestionResult reports one graded question
type QuestionResult struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// QuizResult is returned from a quiz submission
type QuizResult struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Passed         bool             `json:"passed"`
	XPEarned       int              `json:"xp_earned"`
	Results        []QuestionResult `json:"results"`
	NewBadges      []string         `json:"new_badges"`
}
