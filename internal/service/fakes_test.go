package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"finbuddy/internal/cache"
	"finbuddy/internal/event/eventtest"
	"finbuddy/internal/llm/llmtest"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
)

var errStore = errors.New("store unavailable")

// memProfiles stores copies so callers cannot mutate stored state in place
type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]model.UserProfile
	saves    int
	onGet    func(sessionID string) // runs before each read, outside mu
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: map[string]model.UserProfile{}}
}

func cloneProfile(p model.UserProfile) model.UserProfile {
	p.Badges = append([]string(nil), p.Badges...)
	p.ModulesCompleted = append([]string(nil), p.ModulesCompleted...)
	scores := make(map[string]int, len(p.QuizScores))
	for k, v := range p.QuizScores {
		scores[k] = v
	}
	p.QuizScores = scores
	if p.LastActivity != nil {
		t := *p.LastActivity
		p.LastActivity = &t
	}
	return p
}

func (m *memProfiles) GetBySessionID(_ context.Context, sessionID string) (*model.UserProfile, error) {
	if m.onGet != nil {
		m.onGet(sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[sessionID]
	if !ok {
		return nil, nil
	}
	out := cloneProfile(p)
	out.Normalize()
	return &out, nil
}

func (m *memProfiles) Create(_ context.Context, p *model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[p.SessionID]; ok {
		return errors.New("duplicate session_id")
	}
	p.Normalize()
	m.profiles[p.SessionID] = cloneProfile(*p)
	return nil
}

func (m *memProfiles) Save(_ context.Context, p *model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.Normalize()
	m.profiles[p.SessionID] = cloneProfile(*p)
	m.saves++
	return nil
}

func (m *memProfiles) UpdateStage(_ context.Context, sessionID string, stage model.Stage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[sessionID]
	if !ok {
		p = model.UserProfile{SessionID: sessionID, Level: 1}
		p.Normalize()
	}
	p.Stage = stage
	m.profiles[sessionID] = p
	return nil
}

func (m *memProfiles) put(p model.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.Normalize()
	m.profiles[p.SessionID] = cloneProfile(p)
}

type memChats struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

func (m *memChats) Create(_ context.Context, msg *model.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memChats) ListBySession(_ context.Context, sessionID string, limit int64) ([]*model.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.ChatMessage{}
	for i := range m.messages {
		if m.messages[i].SessionID != sessionID {
			continue
		}
		msg := m.messages[i]
		out = append(out, &msg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func stageMatches(filter, stage model.Stage) bool {
	return filter == "" || stage == filter || stage == model.StageGeneral
}

type memModules struct {
	mu      sync.Mutex
	modules map[string]model.LearningModule
	upserts int
	err     error
}

func newMemModules() *memModules {
	return &memModules{modules: map[string]model.LearningModule{}}
}

func (m *memModules) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.modules)), nil
}

func (m *memModules) UpsertMany(_ context.Context, modules []model.LearningModule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	for _, mod := range modules {
		m.modules[mod.ID] = mod
	}
	return nil
}

func (m *memModules) List(_ context.Context, stage model.Stage, limit int64) ([]*model.LearningModule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.LearningModule{}
	for _, mod := range m.modules {
		if stageMatches(stage, mod.Stage) {
			mod := mod
			out = append(out, &mod)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memModules) GetByID(_ context.Context, id string) (*model.LearningModule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.modules[id]
	if !ok {
		return nil, nil
	}
	return &mod, nil
}

type memQuizzes struct {
	mu      sync.Mutex
	quizzes map[string]model.Quiz
	upserts int
}

func newMemQuizzes() *memQuizzes {
	return &memQuizzes{quizzes: map[string]model.Quiz{}}
}

func (m *memQuizzes) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.quizzes)), nil
}

func (m *memQuizzes) UpsertMany(_ context.Context, quizzes []model.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	for _, q := range quizzes {
		m.quizzes[q.ID] = q
	}
	return nil
}

func (m *memQuizzes) List(_ context.Context, stage model.Stage, limit int64) ([]*model.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.Quiz{}
	for _, q := range m.quizzes {
		if stageMatches(stage, q.Stage) {
			q := q
			out = append(out, &q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memQuizzes) GetByID(_ context.Context, id string) (*model.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

// memLeaderboard records the last XP pushed per session
type memLeaderboard struct {
	mu     sync.Mutex
	scores map[string]int
}

func (m *memLeaderboard) UpdateScore(_ context.Context, sessionID string, xp int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scores == nil {
		m.scores = map[string]int{}
	}
	m.scores[sessionID] = xp
	return nil
}

func (m *memLeaderboard) GetTop(_ context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]cache.LeaderboardEntry, 0, len(m.scores))
	for id, xp := range m.scores {
		out = append(out, cache.LeaderboardEntry{SessionID: id, XP: xp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].XP > out[j].XP })
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

func (m *memLeaderboard) GetRank(ctx context.Context, sessionID string) (int64, error) {
	top, _ := m.GetTop(ctx, 1<<20)
	for _, e := range top {
		if e.SessionID == sessionID {
			return int64(e.Rank), nil
		}
	}
	return -1, nil
}

// clock is a settable time source
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	profiles    *memProfiles
	chats       *memChats
	modules     *memModules
	quizzes     *memQuizzes
	leaderboard *memLeaderboard
	publisher   *eventtest.Publisher
	generator   *llmtest.Generator
	clock       *clock

	progress *ProgressService
	catalog  *CatalogService
	chat     *ChatService
	module   *ModuleService
	quiz     *QuizService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		profiles:    newMemProfiles(),
		chats:       &memChats{},
		modules:     newMemModules(),
		quizzes:     newMemQuizzes(),
		leaderboard: &memLeaderboard{},
		publisher:   &eventtest.Publisher{},
		generator:   &llmtest.Generator{Reply: "Save first, spend later."},
		clock:       newClock(),
	}
	log := logger.Nop()
	locker := cache.NewLocalLocker(5 * time.Second)

	env.progress = NewProgressService(env.profiles, locker, log)
	env.progress.SetLeaderboard(env.leaderboard)
	env.progress.SetPublisher(env.publisher)
	env.progress.SetClock(env.clock.Now)

	env.catalog = NewCatalogService(env.modules, env.quizzes, locker, log)

	env.chat = NewChatService(env.progress, env.chats, env.generator, log)
	env.chat.SetPublisher(env.publisher)
	env.chat.now = env.clock.Now

	env.module = NewModuleService(env.modules, env.catalog, env.progress)

	env.quiz = NewQuizService(env.quizzes, env.catalog, env.progress, log)
	env.quiz.SetPublisher(env.publisher)
	return env
}

func (e *testEnv) profile(sessionID string) *model.UserProfile {
	p, _ := e.profiles.GetBySessionID(context.Background(), sessionID)
	return p
}
