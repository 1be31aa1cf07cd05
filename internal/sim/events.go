package sim

// FlapRequested asks for an upward impulse on the bird.
type FlapRequested struct{}

// GameStartRequested asks to leave the menu and start a round.
type GameStartRequested struct{}

// CollisionCause tells what the bird hit.
type CollisionCause int

const (
	CauseGround CollisionCause = iota
	CausePipe
)

func (c CollisionCause) String() string {
	if c == CausePipe {
		return "pipe"
	}
	return "ground"
}

// GameOverDetected reports a collision. Several may be emitted in one tick;
// consumers act once on a non-empty queue.
type GameOverDetected struct {
	Cause CollisionCause
	Pipe  int // index into World.Pipes when Cause is CausePipe
}

// EventQueue holds events of one kind for a single tick.
type EventQueue[T any] struct {
	items []T
}

// Push appends an event.
func (q *EventQueue[T]) Push(evt T) {
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue[T]) Len() int {
	return len(q.items)
}

// Empty reports whether no event is queued.
func (q *EventQueue[T]) Empty() bool {
	return len(q.items) == 0
}

// Items returns the queued events. The slice is only valid until the next Clear.
func (q *EventQueue[T]) Items() []T {
	return q.items
}

// Clear drops every event, keeping the backing storage.
func (q *EventQueue[T]) Clear() {
	q.items = q.items[:0]
}

// Events is the per-tick event bus owned by the simulation driver.
// Everything is cleared at the start of each tick, so an event is visible to
// the systems after its producer in the same tick and never beyond.
type Events struct {
	Flap     EventQueue[FlapRequested]
	Start    EventQueue[GameStartRequested]
	GameOver EventQueue[GameOverDetected]
}

// Clear empties every queue.
func (e *Events) Clear() {
	e.Flap.Clear()
	e.Start.Clear()
	e.GameOver.Clear()
}
