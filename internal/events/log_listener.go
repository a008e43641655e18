package events

import (
	"log"
)

// LogListener writes every game event to the standard logger
type LogListener struct{}

// NewLogListener creates a listener for Subscribe on each event type it should log
func NewLogListener() *LogListener {
	return &LogListener{}
}

// ID implements EventListener
func (l *LogListener) ID() string { return "log" }

// Priority implements EventListener
func (l *LogListener) Priority() int { return PriorityReporting }

// HandleEvent implements EventListener
func (l *LogListener) HandleEvent(event Event) error {
	switch e := event.(type) {
	case *DiceRolledEvent:
		log.Printf("Game %s: player %d roll %d is %v", e.GameID, e.PlayerIndex, e.RollsTaken, e.Dice)
	case *MoveCommittedEvent:
		log.Printf("Game %s: player %d scored %d in %s", e.GameID, e.PlayerIndex, e.Score, e.Category)
	case *GameOverEvent:
		log.Printf("Game %s is over, winners %v with %d", e.GameID, e.Winners, e.TopScore)
	default:
		log.Printf("Game %s: %s", event.GetGameID(), event.GetType())
	}
	return nil
}

// SubscribeAll subscribes listener to every game event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, t := range []EventType{EventTypeDiceRolled, EventTypeMoveCommitted, EventTypeGameOver} {
		b.Subscribe(t, listener)
	}
}
