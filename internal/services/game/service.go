package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	gamedomain "github.com/KirkDiggler/yahtzee/internal/domain/game"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	"github.com/KirkDiggler/yahtzee/internal/events"
	"github.com/KirkDiggler/yahtzee/internal/repositories/games"
	"github.com/KirkDiggler/yahtzee/internal/uuid"
)

// Repository is an alias for the game repository interface
type Repository = games.Repository

// Service defines the game service interface
type Service interface {
	// CreateGame starts a new game
	CreateGame(ctx context.Context, input *CreateGameInput) (*GameState, error)

	// GetGame returns the state of a game
	GetGame(ctx context.Context, gameID string) (*GameState, error)

	// ListGames returns the state of every game in progress or finished
	ListGames(ctx context.Context) ([]*GameState, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, gameID string) error

	// RollDice rolls for the active player of a game
	RollDice(ctx context.Context, input *RollDiceInput) (*GameState, error)

	// CommitMove scores the dice for the active player and ends the turn
	CommitMove(ctx context.Context, input *CommitMoveInput) (*MoveResult, error)

	// GetScorecard returns a snapshot of one player's scorecard
	GetScorecard(ctx context.Context, gameID string, playerIndex int) (*gamedomain.ScorecardView, error)

	// GetResult returns the winners of a finished game
	GetResult(ctx context.Context, gameID string) (*gamedomain.Result, error)
}

// CreateGameInput contains data for creating a game
type CreateGameInput struct {
	PlayerCount int
	Seed        uint64 // Optional, non-zero gives the game its own reproducible dice
}

// RollDiceInput selects the dice to roll; no indices rolls all five
type RollDiceInput struct {
	GameID  string
	Indices []int
}

// CommitMoveInput names the category to score
type CommitMoveInput struct {
	GameID   string
	Category scoring.Category
}

// GameState is a snapshot of a game between calls
type GameState struct {
	ID             string               `json:"id"`
	PlayerCount    int                  `json:"player_count"`
	CurrentPlayer  int                  `json:"current_player"`
	Round          int                  `json:"round"`
	Dice           []int                `json:"dice"`
	RollsTaken     int                  `json:"rolls_taken"`
	RollsRemaining int                  `json:"rolls_remaining"`
	State          gamedomain.TurnState `json:"state"`
	Over           bool                 `json:"over"`
}

// MoveResult reports a committed move
type MoveResult struct {
	PlayerIndex int              `json:"player_index"`
	Category    scoring.Category `json:"category"`
	Score       int              `json:"score"`
	Game        *GameState       `json:"game"`
}

// service implements the Service interface
type service struct {
	mu            sync.Mutex
	repository    Repository
	roller        dice.Roller
	uuidGenerator uuid.Generator
	eventBus      *events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	Roller        dice.Roller    // Optional, each game gets a clock-seeded roller if nil
	UUIDGenerator uuid.Generator // Optional, will use default if nil
	EventBus      *events.Bus    // Optional, no events are emitted if nil
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		eventBus:   cfg.EventBus,
	}

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateGame starts a new game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*GameState, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	roller := s.roller
	if input.Seed != 0 {
		roller = dice.NewSeededRoller(input.Seed)
	}

	g, err := gamedomain.New(&gamedomain.Config{
		ID:          s.uuidGenerator.New(),
		PlayerCount: input.PlayerCount,
		Roller:      roller,
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create game")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.Create(ctx, g); err != nil {
		return nil, apperr.Wrap(err, "failed to store game")
	}

	log.Printf("Created game %s with %d player(s)", g.ID(), g.PlayerCount())
	return stateOf(g), nil
}

// GetGame returns the state of a game
func (s *service) GetGame(ctx context.Context, gameID string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return stateOf(g), nil
}

// ListGames returns the state of every stored game
func (s *service) ListGames(ctx context.Context) ([]*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list games")
	}

	states := make([]*GameState, 0, len(ids))
	for _, id := range ids {
		g, err := s.get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		states = append(states, stateOf(g))
	}

	return states, nil
}

// DeleteGame removes a game
func (s *service) DeleteGame(ctx context.Context, gameID string) error {
	if gameID == "" {
		return apperr.InvalidArgument("game ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.Delete(ctx, gameID); err != nil {
		return apperr.Wrapf(err, "failed to delete game %s", gameID)
	}

	log.Printf("Deleted game %s", gameID)
	return nil
}

// RollDice rolls for the active player
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*GameState, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.get(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	values, err := g.RollDice(input.Indices...)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, g); err != nil {
		return nil, apperr.Wrap(err, "failed to save game")
	}

	s.emit(events.NewDiceRolledEvent(g.ID(), g.CurrentPlayerIndex(), input.Indices, values, g.RollsTaken()))
	return stateOf(g), nil
}

// CommitMove scores the dice for the active player
func (s *service) CommitMove(ctx context.Context, input *CommitMoveInput) (*MoveResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.get(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	player := g.CurrentPlayerIndex()
	hand := g.Dice()
	score, err := g.CommitMove(input.Category)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, g); err != nil {
		return nil, apperr.Wrap(err, "failed to save game")
	}

	s.emit(events.NewMoveCommittedEvent(g.ID(), player, input.Category, score, hand))
	if g.IsOver() {
		if result, err := g.Winners(); err == nil {
			s.emit(events.NewGameOverEvent(g.ID(), player, result.Winners, result.TopScore))
		}
	}

	return &MoveResult{
		PlayerIndex: player,
		Category:    input.Category,
		Score:       score,
		Game:        stateOf(g),
	}, nil
}

// GetScorecard returns a snapshot of one player's scorecard
func (s *service) GetScorecard(ctx context.Context, gameID string, playerIndex int) (*gamedomain.ScorecardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return g.ScorecardView(playerIndex)
}

// GetResult returns the winners of a finished game
func (s *service) GetResult(ctx context.Context, gameID string) (*gamedomain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return g.Winners()
}

// get loads a game; callers hold s.mu
func (s *service) get(ctx context.Context, gameID string) (*gamedomain.Game, error) {
	if gameID == "" {
		return nil, apperr.InvalidArgument("game ID is required")
	}

	g, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get game %s", gameID)
	}

	return g, nil
}

// emit publishes to the event bus; a failing listener does not undo the move
func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Game %s: failed to emit %s: %v", event.GetGameID(), event.GetType(), err)
	}
}

func stateOf(g *gamedomain.Game) *GameState {
	return &GameState{
		ID:             g.ID(),
		PlayerCount:    g.PlayerCount(),
		CurrentPlayer:  g.CurrentPlayerIndex(),
		Round:          g.Round(),
		Dice:           g.Dice(),
		RollsTaken:     g.RollsTaken(),
		RollsRemaining: g.RollsRemaining(),
		State:          g.State(),
		Over:           g.IsOver(),
	}
}
