package events

import (
	"log"
	"sort"
	"sync"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// EventListener processes events; lower priorities run first
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus delivers events to listeners subscribed to their type.
// Emit is synchronous: it returns after every listener has run.
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortListeners(eventType)

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// Emit sends an event to all registered listeners
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s for game %s cancelled, stopping propagation", event.GetType(), event.GetGameID())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return apperr.Wrapf(err, "listener %s failed", listener.ID())
		}
	}

	return nil
}

// HasListeners reports whether anything is subscribed to eventType
func (b *Bus) HasListeners(eventType EventType) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType]) > 0
}

// sortListeners orders by priority, keeping subscription order for equal priorities; callers hold b.mu
func (b *Bus) sortListeners(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
