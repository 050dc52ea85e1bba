package game

type EventType int

const (
	EventWaterEntry EventType = iota
	EventWaterExit
)

func (t EventType) String() string {
	switch t {
	case EventWaterEntry:
		return "water-entry"
	case EventWaterExit:
		return "water-exit"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Tick    uint64
	X       int     // world x where the water line was crossed
	Impulse float64 // cross-heading velocity at the crossing
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, on the
// caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeCrossings registers fn for both entry and exit events.
func (eb *EventBus) SubscribeCrossings(fn EventHandler) {
	eb.Subscribe(EventWaterEntry, fn)
	eb.Subscribe(EventWaterExit, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
