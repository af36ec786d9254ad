package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbuddy/internal/catalog"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/service"
)

type stubChat struct {
	err     error
	lastReq *model.ChatRequest
}

func (s *stubChat) Chat(_ context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &model.ChatResponse{Response: "hello", SessionID: req.SessionID, Timestamp: time.Now()}, nil
}

func (s *stubChat) History(_ context.Context, sessionID string) ([]*model.ChatMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*model.ChatMessage{{SessionID: sessionID, Message: "q", Response: "a"}}, nil
}

type stubModules struct {
	err         error
	stage       model.Stage
	completeRes *model.ModuleCompletion
}

func (s *stubModules) List(_ context.Context, stage model.Stage) ([]*model.LearningModule, error) {
	s.stage = stage
	if s.err != nil {
		return nil, s.err
	}
	return []*model.LearningModule{{ID: "m1", Stage: model.StageGeneral}}, nil
}

func (s *stubModules) Complete(_ context.Context, moduleID, sessionID string) (*model.ModuleCompletion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.completeRes, nil
}

type stubQuizzes struct {
	err     error
	lastID  string
	lastSub *model.QuizSubmission
}

func (s *stubQuizzes) List(_ context.Context, stage model.Stage) ([]model.QuizView, error) {
	if s.err != nil {
		return nil, s.err
	}
	views := []model.QuizView{}
	for _, q := range catalog.Quizzes() {
		views = append(views, q.View())
	}
	return views, nil
}

func (s *stubQuizzes) Submit(_ context.Context, quizID string, sub *model.QuizSubmission) (*model.QuizResult, error) {
	s.lastID, s.lastSub = quizID, sub
	if s.err != nil {
		return nil, s.err
	}
	return &model.QuizResult{Score: 100, Passed: true, NewBadges: []string{}}, nil
}

type stubProgress struct {
	err       error
	profile   *model.UserProfile
	stage     model.Stage
	limit     int
	stageSess string
}

func (s *stubProgress) GetProfile(_ context.Context, sessionID string) (*model.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubProgress) UpdateStage(_ context.Context, sessionID string, stage model.Stage) error {
	s.stageSess, s.stage = sessionID, stage
	return s.err
}

func (s *stubProgress) Rank(_ context.Context, sessionID string) (*model.LeaderboardEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.LeaderboardEntry{SessionID: sessionID, TotalXP: 60, Level: 2, Rank: 3}, nil
}

func (s *stubProgress) Leaderboard(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	s.limit = limit
	return []model.LeaderboardEntry{{SessionID: "s1", TotalXP: 60, Level: 2, Rank: 1}}, s.err
}

type fixture struct {
	chat     *stubChat
	modules  *stubModules
	quizzes  *stubQuizzes
	progress *stubProgress
	router   http.Handler
}

func newFixture() *fixture {
	f := &fixture{
		chat:     &stubChat{},
		modules:  &stubModules{},
		quizzes:  &stubQuizzes{},
		progress: &stubProgress{},
	}
	f.router = NewRouter(&Container{
		ChatService:     f.chat,
		ModuleService:   f.modules,
		QuizService:     f.quizzes,
		ProgressService: f.progress,
		Badges:          catalog.Badges,
		Logger:          logger.Nop(),
	})
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestHealthAndRoot(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"FinBuddy API - Your AI Financial Literacy Assistant"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestChatRoute(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/chat", `{"session_id":"s1","message":"hi","user_stage":"student"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Response)
	assert.Equal(t, model.StageStudent, f.chat.lastReq.Stage)

	rec = f.do(http.MethodPost, "/api/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", detail(t, rec))
}

func TestChatRouteHidesInternalErrors(t *testing.T) {
	f := newFixture()
	f.chat.err = fmt.Errorf("%w: upstream said 429 with key abc", service.ErrGeneration)

	rec := f.do(http.MethodPost, "/api/chat", `{"session_id":"s1","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to process chat message", detail(t, rec))
	assert.NotContains(t, rec.Body.String(), "abc")

	rec = f.do(http.MethodGet, "/api/chat/history/s1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to retrieve chat history", detail(t, rec))
}

func TestChatRouteValidation(t *testing.T) {
	f := newFixture()
	f.chat.err = fmt.Errorf("%w: session_id and message are required", service.ErrInvalidRequest)

	rec := f.do(http.MethodPost, "/api/chat", `{"session_id":"","message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModuleRoutes(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/modules?user_stage=retiree", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StageRetiree, f.modules.stage)

	xp, level := 20, 1
	f.modules.completeRes = &model.ModuleCompletion{
		Message:   "Module completed successfully",
		XPEarned:  &xp,
		NewBadges: []string{"first_question"},
		NewLevel:  &level,
	}
	rec = f.do(http.MethodPost, "/api/modules/m1/complete?session_id=s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Module completed successfully","xp_earned":20,"new_badges":["first_question"],"new_level":1}`, rec.Body.String())

	f.modules.completeRes = &model.ModuleCompletion{Message: "Module already completed", AlreadyCompleted: true}
	rec = f.do(http.MethodPost, "/api/modules/m1/complete?session_id=s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Module already completed"}`, rec.Body.String())
}

func TestModuleRouteErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{service.ErrProfileNotFound, http.StatusNotFound, "User profile not found"},
		{service.ErrModuleNotFound, http.StatusNotFound, "Module not found"},
		{service.ErrSessionBusy, http.StatusConflict, "Session is busy, please retry"},
		{errors.New("mongo down"), http.StatusInternalServerError, "Failed to complete module"},
	}
	for _, tc := range cases {
		f := newFixture()
		f.modules.err = tc.err
		rec := f.do(http.MethodPost, "/api/modules/m1/complete?session_id=s1", "")
		assert.Equal(t, tc.status, rec.Code, tc.detail)
		assert.Equal(t, tc.detail, detail(t, rec))
	}
}

func TestQuizListHidesAnswerKey(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/quizzes?user_stage=student", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"correct"`)
	assert.NotContains(t, rec.Body.String(), `"explanation"`)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.NotEmpty(t, views)
	for _, v := range views {
		for _, q := range v["questions"].([]interface{}) {
			keys := q.(map[string]interface{})
			assert.Len(t, keys, 2)
			assert.Contains(t, keys, "question")
			assert.Contains(t, keys, "options")
		}
	}
}

func TestQuizSubmitUsesPathID(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/quizzes/budgeting-basics-quiz/submit",
		`{"session_id":"s1","quiz_id":"other","answers":[1,1,2,1,1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "budgeting-basics-quiz", f.quizzes.lastID)
	assert.Equal(t, "budgeting-basics-quiz", f.quizzes.lastSub.QuizID)
	assert.Equal(t, []int{1, 1, 2, 1, 1}, f.quizzes.lastSub.Answers)

	f.quizzes.err = service.ErrQuizNotFound
	rec = f.do(http.MethodPost, "/api/quizzes/nope/submit", `{"answers":[]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Quiz not found", detail(t, rec))
}

func TestProfileRoutes(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/profile/ghost", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	f.progress.profile = &model.UserProfile{SessionID: "s1", Stage: model.StageStudent, Level: 1}
	rec = f.do(http.MethodGet, "/api/profile/s1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_stage":"student"`)

	rec = f.do(http.MethodPost, "/api/profile/update-stage?session_id=s1&user_stage=retiree", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User stage updated successfully"}`, rec.Body.String())
	assert.Equal(t, "s1", f.progress.stageSess)
	assert.Equal(t, model.StageRetiree, f.progress.stage)

	f.progress.err = fmt.Errorf("%w: unknown user_stage", service.ErrInvalidRequest)
	rec = f.do(http.MethodPost, "/api/profile/update-stage?session_id=s1&user_stage=pirate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadgesRoute(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/badges", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var badges []model.Badge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badges))
	assert.Len(t, badges, 8)
}

func TestLeaderboardRoute(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/leaderboard?limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, f.progress.limit)

	rec = f.do(http.MethodGet, "/api/leaderboard?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodOptions, "/api/chat", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLeaderboardRankRoute(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/leaderboard/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session_id":"s1","total_xp":60,"level":2,"rank":3}`, rec.Body.String())

	f.progress.err = service.ErrProfileNotFound
	rec = f.do(http.MethodGet, "/api/leaderboard/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User profile not found", detail(t, rec))
}

func TestModuleCompletionAlwaysListsNewBadges(t *testing.T) {
	f := newFixture()
	xp, level := 20, 1
	f.modules.completeRes = &model.ModuleCompletion{
		Message:   "Module completed successfully",
		XPEarned:  &xp,
		NewBadges: []string{},
		NewLevel:  &level,
	}

	rec := f.do(http.MethodPost, "/api/modules/m1/complete?session_id=s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Module completed successfully","xp_earned":20,"new_badges":[],"new_level":1}`, rec.Body.String())
}

func TestValidationDetailOmitsWrapping(t *testing.T) {
	f := newFixture()
	f.chat.err = fmt.Errorf("record question: %w", &service.InvalidRequestError{Reason: "session_id is required"})

	rec := f.do(http.MethodPost, "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "session_id is required", detail(t, rec))

	f.chat.err = fmt.Errorf("lookup: %w", service.ErrInvalidRequest)
	rec = f.do(http.MethodPost, "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request", detail(t, rec))
}
