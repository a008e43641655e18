// Package autoplay plays complete games without input to soak-test the engine
// and summarize the scores a fixed playing rule produces.
package autoplay

import (
	"context"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/domain/game"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// Summary aggregates the grand totals of every simulated game
type Summary struct {
	Games        int     `json:"games"`
	Mean         float64 `json:"mean"`
	Min          int     `json:"min"`
	Max          int     `json:"max"`
	BonusRate    float64 `json:"bonus_rate"`
	YahtzeeCount int     `json:"yahtzee_count"`
}

// RunInput configures a simulation run
type RunInput struct {
	Games   int
	Workers int
	Seed    uint64 // Game i uses Seed+i; zero seeds from the clock
}

// Service runs simulations
type Service interface {
	Run(ctx context.Context, input *RunInput) (*Summary, error)
}

type service struct {
	newRoller func(seed uint64) dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// NewRoller overrides how each game's roller is built
	NewRoller func(seed uint64) dice.Roller
}

// NewService creates a simulation service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{newRoller: dice.NewSeededRoller}
	if cfg != nil && cfg.NewRoller != nil {
		svc.newRoller = cfg.NewRoller
	}
	return svc
}

// Run plays input.Games single-player games using at most input.Workers goroutines
func (s *service) Run(ctx context.Context, input *RunInput) (*Summary, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Games < 1 {
		return nil, apperr.InvalidArgumentf("games must be positive, got %d", input.Games)
	}
	if input.Workers < 1 {
		return nil, apperr.InvalidArgumentf("workers must be positive, got %d", input.Workers)
	}

	cards := make([]*game.ScorecardView, input.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Workers)

	for i := 0; i < input.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var roller dice.Roller
			if input.Seed != 0 {
				roller = s.newRoller(input.Seed + uint64(i))
			}

			view, err := PlayGame(roller)
			if err != nil {
				return apperr.Wrapf(err, "game %d failed", i)
			}

			cards[i] = view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := summarize(cards)
	log.Printf("Simulated %d games: mean %.1f, min %d, max %d", summary.Games, summary.Mean, summary.Min, summary.Max)
	return summary, nil
}

// PlayGame plays one single-player game to the end: each turn rolls once and
// takes the open category worth the most, earliest category on ties.
func PlayGame(roller dice.Roller) (*game.ScorecardView, error) {
	g, err := game.New(&game.Config{PlayerCount: 1, Roller: roller})
	if err != nil {
		return nil, err
	}

	player, err := g.Player(0)
	if err != nil {
		return nil, err
	}

	for !g.IsOver() {
		values, err := g.RollDice()
		if err != nil {
			return nil, err
		}

		var hand scoring.Hand
		copy(hand[:], values)
		if _, err := g.CommitMove(bestOpen(player.Scorecard, hand)); err != nil {
			return nil, err
		}
	}

	return g.ScorecardView(0)
}

func bestOpen(card *game.Scorecard, hand scoring.Hand) scoring.Category {
	scores := scoring.ScoreAll(hand)

	open := card.OpenCategories()
	best := open[0]
	for _, c := range open[1:] {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

func summarize(cards []*game.ScorecardView) *Summary {
	summary := &Summary{Games: len(cards), Min: math.MaxInt}

	total, bonuses := 0, 0
	for _, card := range cards {
		total += card.GrandTotal
		summary.Min = min(summary.Min, card.GrandTotal)
		summary.Max = max(summary.Max, card.GrandTotal)
		if card.UpperBonus > 0 {
			bonuses++
		}
		if e, ok := card.Entry(scoring.Yahtzee); ok && e.Score > 0 {
			summary.YahtzeeCount++
		}
	}

	summary.Mean = float64(total) / float64(len(cards))
	summary.BonusRate = float64(bonuses) / float64(len(cards))
	return summary
}
