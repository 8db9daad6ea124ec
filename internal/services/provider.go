package services

import (
	"go.uber.org/zap"

	hitpointsRepo "github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints"
	hitpointsService "github.com/Cameron637/ddb-backend-developer-challenge/internal/services/hitpoints"
)

// Provider holds all service instances
type Provider struct {
	HitPointsService hitpointsService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	HitPointsRepository hitpointsRepo.Repository
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.HitPointsRepository
	if repo == nil {
		repo = hitpointsRepo.NewInMemoryRepository()
	}

	return &Provider{
		HitPointsService: hitpointsService.NewService(&hitpointsService.ServiceConfig{
			Repository: repo,
			Logger:     cfg.Logger,
		}),
	}
}
