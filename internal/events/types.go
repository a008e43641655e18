package events

import (
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
)

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	GetGameID() string
	GetPlayerIndex() int
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	GameID      string
	PlayerIndex int
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType  { return e.Type }
func (e *BaseEvent) GetGameID() string   { return e.GameID }
func (e *BaseEvent) GetPlayerIndex() int { return e.PlayerIndex }
func (e *BaseEvent) IsCancelled() bool   { return e.Cancelled }
func (e *BaseEvent) Cancel()             { e.Cancelled = true }

// DiceRolledEvent is emitted after the active player rolls
type DiceRolledEvent struct {
	BaseEvent
	Indices    []int // Dice that were rolled, empty for all five
	Dice       []int
	RollsTaken int
}

// MoveCommittedEvent is emitted after a category is scored
type MoveCommittedEvent struct {
	BaseEvent
	Category scoring.Category
	Score    int
	Dice     []int
}

// GameOverEvent is emitted once, after the move that completes the last scorecard
type GameOverEvent struct {
	BaseEvent
	Winners  []int
	TopScore int
}

// NewDiceRolledEvent creates a dice rolled event
func NewDiceRolledEvent(gameID string, player int, indices, dice []int, rollsTaken int) *DiceRolledEvent {
	return &DiceRolledEvent{
		BaseEvent:  BaseEvent{Type: EventTypeDiceRolled, GameID: gameID, PlayerIndex: player},
		Indices:    indices,
		Dice:       dice,
		RollsTaken: rollsTaken,
	}
}

// NewMoveCommittedEvent creates a move committed event
func NewMoveCommittedEvent(gameID string, player int, category scoring.Category, score int, dice []int) *MoveCommittedEvent {
	return &MoveCommittedEvent{
		BaseEvent: BaseEvent{Type: EventTypeMoveCommitted, GameID: gameID, PlayerIndex: player},
		Category:  category,
		Score:     score,
		Dice:      dice,
	}
}

// NewGameOverEvent creates a game over event; PlayerIndex is the player who made the last move
func NewGameOverEvent(gameID string, lastPlayer int, winners []int, topScore int) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent: BaseEvent{Type: EventTypeGameOver, GameID: gameID, PlayerIndex: lastPlayer},
		Winners:   winners,
		TopScore:  topScore,
	}
}
