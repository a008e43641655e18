package services

import (
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/events"
	"github.com/KirkDiggler/yahtzee/internal/repositories/games"
	"github.com/KirkDiggler/yahtzee/internal/services/autoplay"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	GameService     gameService.Service
	AutoplayService autoplay.Service
	EventBus        *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameRepository games.Repository
	Roller         dice.Roller
	UUIDGenerator  uuid.Generator
	EventBus       *events.Bus // Optional, a bus that logs every event is created if nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	gameRepo := cfg.GameRepository
	if gameRepo == nil {
		gameRepo = games.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
		bus.SubscribeAll(events.NewLogListener())
	}

	return &Provider{
		GameService: gameService.NewService(&gameService.ServiceConfig{
			Repository:    gameRepo,
			Roller:        cfg.Roller,
			UUIDGenerator: cfg.UUIDGenerator,
			EventBus:      bus,
		}),
		AutoplayService: autoplay.NewService(nil),
		EventBus:        bus,
	}
}
