package service

import (
	"context"

	"finbuddy/internal/model"
	"finbuddy/internal/repository"
)

const defaultListLimit = 100

// ModuleService lists learning modules and records completions
type ModuleService struct {
	moduleRepo repository.ModuleRepo
	catalogSvc *CatalogService
	progress   *ProgressService
}

// NewModuleService creates a new module service
func NewModuleService(moduleRepo repository.ModuleRepo, catalogSvc *CatalogService, progress *ProgressService) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		catalogSvc: catalogSvc,
		progress:   progress,
	}
}

// List returns modules for the stage plus general ones, by order_index
func (s *ModuleService) List(ctx context.Context, stage model.Stage) ([]*model.LearningModule, error) {
	if err := s.catalogSvc.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.moduleRepo.List(ctx, stage, defaultListLimit)
}

// Complete marks the module completed for the session
func (s *ModuleService) Complete(ctx context.Context, moduleID, sessionID string) (*model.ModuleCompletion, error) {
	if sessionID == "" {
		return nil, invalidf("session_id is required")
	}

	profile, err := s.progress.GetProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.catalogSvc.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	return s.progress.CompleteModule(ctx, sessionID, module)
}
