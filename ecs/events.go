package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventType identifies gameplay events.
type EventType string

const (
	EventLevelLoaded   EventType = "level_loaded"
	EventPlayerDamaged EventType = "player_damaged"
	EventEnemyDefeated EventType = "enemy_defeated"
	EventGameOver      EventType = "game_over"
	EventGameWon       EventType = "game_won"
)

// DamageEvent is the payload of EventPlayerDamaged.
type DamageEvent struct {
	Source string
	Amount int
	Health int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
