package events

// Event type constants
const (
	EventTypeDiceRolled    EventType = "dice_rolled"
	EventTypeMoveCommitted EventType = "move_committed"
	EventTypeGameOver      EventType = "game_over"
)

// Priority levels for listener order
const (
	PriorityRules     = 0   // Listeners that may cancel propagation
	PriorityTracking  = 100 // Statistics and history
	PriorityReporting = 200 // Logging and display
)
