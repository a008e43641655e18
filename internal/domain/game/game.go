package game

import (
	"sort"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// TurnState represents where the active turn is in the roll/commit cycle
type TurnState string

const (
	TurnStateAwaitingRoll     TurnState = "awaiting_roll"     // No roll made this turn
	TurnStateAwaitingDecision TurnState = "awaiting_decision" // Rolled at least once, not committed
	TurnStateOver             TurnState = "over"              // Every scorecard is complete
)

// Player owns a scorecard and is identified by its position in turn order
type Player struct {
	Index     int
	Scorecard *Scorecard
}

// Config holds what is needed to start a game
type Config struct {
	ID          string      // Optional
	PlayerCount int         // Required, at least 1
	Roller      dice.Roller // Optional, a clock-seeded roller is used if nil
}

// Game is a single table: the dice, the players in turn order and the active turn.
// A Game is not safe for concurrent use.
type Game struct {
	id      string
	dice    *dice.Set
	players []*Player
	current int
	round   int
}

// New creates a game with the given number of players, each with an empty scorecard
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.PlayerCount < 1 {
		return nil, apperr.InvalidArgumentf("player count must be positive, got %d", cfg.PlayerCount).
			WithMeta("player_count", cfg.PlayerCount)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	players := make([]*Player, cfg.PlayerCount)
	for i := range players {
		players[i] = &Player{Index: i, Scorecard: NewScorecard()}
	}

	return &Game{
		id:      cfg.ID,
		dice:    dice.NewSet(roller),
		players: players,
		round:   1,
	}, nil
}

// ID returns the identifier given at creation
func (g *Game) ID() string {
	return g.id
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// CurrentPlayerIndex returns the zero-based index of the player whose turn it is
func (g *Game) CurrentPlayerIndex() int {
	return g.current
}

// Round returns the current round, from 1 to 13
func (g *Game) Round() int {
	return g.round
}

// Dice returns the current face values
func (g *Game) Dice() []int {
	return g.dice.Values()
}

// RollsTaken returns how many rolls the active player has made this turn
func (g *Game) RollsTaken() int {
	return g.dice.RollsTaken()
}

// RollsRemaining returns how many rolls the active player has left this turn
func (g *Game) RollsRemaining() int {
	return g.dice.RollsRemaining()
}

// State returns the turn state
func (g *Game) State() TurnState {
	switch {
	case g.IsOver():
		return TurnStateOver
	case g.dice.RollsTaken() == 0:
		return TurnStateAwaitingRoll
	default:
		return TurnStateAwaitingDecision
	}
}

// IsOver reports whether every player's scorecard is complete
func (g *Game) IsOver() bool {
	for _, p := range g.players {
		if !p.Scorecard.IsComplete() {
			return false
		}
	}
	return true
}

// RollDice rolls the dice at indices, or all five when none are given
func (g *Game) RollDice(indices ...int) ([]int, error) {
	if g.IsOver() {
		return nil, apperr.GameOver(g.id)
	}

	values, err := g.dice.Roll(indices...)
	if err != nil {
		return nil, apperr.Wrapf(err, "player %d cannot roll", g.current).
			WithMeta("player_index", g.current).
			WithMeta("rolls_taken", g.dice.RollsTaken())
	}

	return values, nil
}

// CommitMove scores the current dice in category for the active player and
// passes the turn to the next player.
func (g *Game) CommitMove(category scoring.Category) (int, error) {
	if g.IsOver() {
		return 0, apperr.GameOver(g.id)
	}
	if g.dice.RollsTaken() == 0 {
		return 0, apperr.FailedPrecondition("roll the dice before choosing a category").
			WithMeta("player_index", g.current)
	}

	player := g.players[g.current]
	if !category.Valid() {
		return 0, apperr.InvalidCategoryf("no such category %d", int(category)).
			WithMeta("player_index", g.current)
	}
	if player.Scorecard.IsFilled(category) {
		err := apperr.CategoryAlreadyScored(category.String())
		return 0, apperr.WrapWithCode(err, apperr.CodeInvalidCategory, "illegal move").
			WithMeta("player_index", g.current)
	}

	score, err := scoring.Score(category, scoring.Hand(g.dice.Hand()))
	if err != nil {
		return 0, err
	}
	if err := player.Scorecard.Record(category, score); err != nil {
		return 0, apperr.WrapWithCode(err, apperr.CodeInvalidCategory, "illegal move")
	}

	g.endTurn()
	return score, nil
}

func (g *Game) endTurn() {
	g.dice.Reset()
	g.current = (g.current + 1) % len(g.players)
	if g.current == 0 && g.round < scoring.CategoryCount {
		g.round++
	}
}

// Player returns the player at index
func (g *Game) Player(index int) (*Player, error) {
	if index < 0 || index >= len(g.players) {
		return nil, apperr.NotFoundf("no player at index %d", index).WithMeta("player_index", index)
	}
	return g.players[index], nil
}

// ScorecardView returns a snapshot of the scorecard of the player at index
func (g *Game) ScorecardView(index int) (*ScorecardView, error) {
	p, err := g.Player(index)
	if err != nil {
		return nil, err
	}

	view := p.Scorecard.View()
	view.PlayerIndex = index
	return view, nil
}

// Standing is a player's grand total at a point in the game
type Standing struct {
	PlayerIndex int `json:"player_index"`
	Total       int `json:"total"`
}

// Result names every player sharing the top grand total
type Result struct {
	Winners   []int      `json:"winners"`
	TopScore  int        `json:"top_score"`
	Tie       bool       `json:"tie"`
	Standings []Standing `json:"standings"`
}

// Standings returns every player's grand total, highest first; equal totals keep turn order
func (g *Game) Standings() []Standing {
	out := make([]Standing, len(g.players))
	for i, p := range g.players {
		out[i] = Standing{PlayerIndex: i, Total: p.Scorecard.GrandTotal()}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Winners returns the players with the highest grand total once the game is over
func (g *Game) Winners() (*Result, error) {
	if !g.IsOver() {
		return nil, apperr.FailedPrecondition("game is still in progress").WithMeta("round", g.round)
	}

	standings := g.Standings()
	result := &Result{
		TopScore:  standings[0].Total,
		Standings: standings,
	}
	for _, s := range standings {
		if s.Total == result.TopScore {
			result.Winners = append(result.Winners, s.PlayerIndex)
		}
	}
	result.Tie = len(result.Winners) > 1

	return result, nil
}
