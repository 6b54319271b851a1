package sim

import "github.com/jakecoffman/cp"

// EventType identifies a simulation event.
type EventType string

const (
	EventHitLanded   EventType = "hit_landed"
	EventKill        EventType = "kill"
	EventDashStarted EventType = "dash_started"
	EventComboLost   EventType = "combo_lost"
	EventHeal        EventType = "heal"
	EventPlayerDied  EventType = "player_died"
	EventSpawned     EventType = "spawned"
)

// Event is a this-step simulation event. Combat events carry attacker/target;
// the rest fill what applies and zero the rest.
type Event struct {
	Type     EventType
	Attacker EntityID
	Target   EntityID
	Damage   int
	Pos      cp.Vector
	// Streak is the combo streak after the event (kill, combo_lost).
	Streak int
	// Amount is the heal amount for heal events.
	Amount int
}

// EventQueue is a simple FIFO drained once per step.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
