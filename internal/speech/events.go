package speech

// EventKind identifies an announcer lifecycle notification.
type EventKind int

const (
	// EventStarted indicates an utterance began playing.
	EventStarted EventKind = iota
	// EventDone indicates an utterance finished.
	EventDone
	// EventError indicates the engine reported a failure.
	EventError
	// EventVoicesChanged indicates the voice inventory was (re)loaded.
	EventVoicesChanged
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventDone:
		return "done"
	case EventError:
		return "error"
	case EventVoicesChanged:
		return "voices-changed"
	default:
		return "unknown"
	}
}

// Event is an asynchronous announcer notification, delivered on the channel
// returned by Announcer.Events.
type Event struct {
	Kind EventKind
	Err  error // Set for EventError
}
