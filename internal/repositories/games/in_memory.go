package games

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/yahtzee/internal/domain/game"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewInMemoryRepository creates a new in-memory game repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		games: make(map[string]*game.Game),
	}
}

// Create stores a new game
func (r *inMemoryRepository) Create(ctx context.Context, g *game.Game) error {
	if g == nil {
		return apperr.InvalidArgument("game cannot be nil")
	}
	if g.ID() == "" {
		return apperr.InvalidArgument("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[g.ID()]; exists {
		return apperr.AlreadyExistsf("game with ID %s already exists", g.ID())
	}

	r.games[g.ID()] = g
	return nil
}

// Get retrieves a game by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.games[id]
	if !exists {
		return nil, apperr.NotFoundf("game not found: %s", id).WithMeta("game_id", id)
	}

	return g, nil
}

// Update replaces a stored game
func (r *inMemoryRepository) Update(ctx context.Context, g *game.Game) error {
	if g == nil {
		return apperr.InvalidArgument("game cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[g.ID()]; !exists {
		return apperr.NotFoundf("game not found: %s", g.ID()).WithMeta("game_id", g.ID())
	}

	r.games[g.ID()] = g
	return nil
}

// Delete removes a game
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[id]; !exists {
		return apperr.NotFoundf("game not found: %s", id).WithMeta("game_id", id)
	}

	delete(r.games, id)
	return nil
}

// List returns every stored game ID, sorted
func (r *inMemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}
