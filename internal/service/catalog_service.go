package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"finbuddy/internal/cache"
	"finbuddy/internal/catalog"
	"finbuddy/internal/logger"
	"finbuddy/internal/model"
	"finbuddy/internal/repository"
)

const seedLockKey = "catalog:seed"

// CatalogService seeds the static modules and quizzes into the store
type CatalogService struct {
	moduleRepo repository.ModuleRepo
	quizRepo   repository.QuizRepo
	locker     cache.Locker
	log        *logger.Logger

	group  singleflight.Group
	seeded atomic.Bool
}

// NewCatalogService creates a new catalog service
func NewCatalogService(moduleRepo repository.ModuleRepo, quizRepo repository.QuizRepo, locker cache.Locker, log *logger.Logger) *CatalogService {
	return &CatalogService{
		moduleRepo: moduleRepo,
		quizRepo:   quizRepo,
		locker:     locker,
		log:        log,
	}
}

// EnsureSeeded writes the catalog when the collections are empty. Concurrent
// callers in this process share one attempt; the seed lock covers replicas.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	_, err, _ := s.group.Do(seedLockKey, func() (interface{}, error) {
		if s.seeded.Load() {
			return nil, nil
		}

		unlock, err := s.locker.Lock(ctx, seedLockKey)
		if err != nil {
			return nil, fmt.Errorf("acquire seed lock: %w", err)
		}
		defer unlock()

		modules, err := s.seedModules(ctx)
		if err != nil {
			return nil, err
		}
		quizzes, err := s.seedQuizzes(ctx)
		if err != nil {
			return nil, err
		}
		if modules > 0 || quizzes > 0 {
			s.log.Info("catalog seeded", "modules", modules, "quizzes", quizzes)
		}

		s.seeded.Store(true)
		return nil, nil
	})
	return err
}

func (s *CatalogService) seedModules(ctx context.Context) (int, error) {
	count, err := s.moduleRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count modules: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	modules := catalog.Modules()
	if err := s.moduleRepo.UpsertMany(ctx, modules); err != nil {
		return 0, err
	}
	return len(modules), nil
}

func (s *CatalogService) seedQuizzes(ctx context.Context) (int, error) {
	count, err := s.quizRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	quizzes := catalog.Quizzes()
	if err := s.quizRepo.UpsertMany(ctx, quizzes); err != nil {
		return 0, err
	}
	return len(quizzes), nil
}

// Badges returns the badge catalog
func (s *CatalogService) Badges() []model.Badge {
	return catalog.Badges()
}
