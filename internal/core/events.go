package core

// Event is a named occurrence inside one simulation tick that the
// presentation layer may react to (usually with a sound cue).
type Event int

const (
	EventMoveAccepted Event = iota + 1
	EventGoalReached
	EventLifeLost
	EventGameOver
)

// String returns the event name used in logs.
func (e Event) String() string {
	switch e {
	case EventMoveAccepted:
		return "move-accepted"
	case EventGoalReached:
		return "goal-reached"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// EventSink consumes simulation events. Implementations must not block the
// simulation and must swallow their own failures.
type EventSink interface {
	Handle(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Handle calls f(e).
func (f EventSinkFunc) Handle(e Event) { f(e) }

// Dispatch forwards every event in order to the sink. A nil sink is a no-op.
func Dispatch(sink EventSink, events []Event) {
	if sink == nil {
		return
	}
	for _, e := range events {
		sink.Handle(e)
	}
}
