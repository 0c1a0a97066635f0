package loop

// EventKind identifies a discrete simulation event.
type EventKind uint8

const (
	EventKill EventKind = iota
	EventEnemyHit
	EventPlayerHit
	EventLifeLost
	EventDash
	EventRayFire
	EventRayGained
	EventMegaGained
	EventPowerLost
	EventPhaseEnter
	EventDialogue
	EventFirework
)

var eventNames = [...]string{
	EventKill:       "kill",
	EventEnemyHit:   "enemy-hit",
	EventPlayerHit:  "player-hit",
	EventLifeLost:   "life-lost",
	EventDash:       "dash",
	EventRayFire:    "ray-fire",
	EventRayGained:  "ray-gained",
	EventMegaGained: "mega-gained",
	EventPowerLost:  "power-lost",
	EventPhaseEnter: "phase-enter",
	EventDialogue:   "dialogue",
	EventFirework:   "firework",
}

func (k EventKind) String() string {
	if int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is emitted by the tick pipeline and dispatched to sinks after the tick.
type Event struct {
	Kind    EventKind `json:"kind" msgpack:"kind"`
	X       float64   `json:"x" msgpack:"x"`
	Y       float64   `json:"y" msgpack:"y"`
	Phase   Phase     `json:"phase" msgpack:"phase"`
	Special bool      `json:"special,omitempty" msgpack:"special,omitempty"`
}

// EventSink receives simulation events. Implementations must not block.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

func (s *Sim) emit(kind EventKind, x, y float64) {
	s.events = append(s.events, Event{Kind: kind, X: x, Y: y, Phase: s.phase})
}

// DrainEvents returns the events queued since the last drain.
// The returned slice is only valid until the next tick.
func (s *Sim) DrainEvents() []Event {
	evs := s.events
	s.events = s.events[:0]
	return evs
}
