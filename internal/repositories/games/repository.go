package games

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgames -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/domain/game"
)

// Repository defines the interface for keeping games in progress.
// Games live for the lifetime of the process.
type Repository interface {
	// Create stores a new game
	Create(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update replaces a stored game
	Update(ctx context.Context, g *game.Game) error

	// Delete removes a game
	Delete(ctx context.Context, id string) error

	// List returns every stored game ID, sorted
	List(ctx context.Context) ([]string, error)
}
