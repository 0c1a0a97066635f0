package audio

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/tomz197/unicorns/internal/loop"
)

// Output plays cues. Implementations may block; the Sink calls them from its
// own goroutine.
type Output interface {
	Play(Cue) error
	Theme(on bool)
}

const queueSize = 64

// Sink is a loop.EventSink that forwards events to an Output.
type Sink struct {
	out     Output
	log     *log.Logger
	queue   chan loop.Event
	dropped atomic.Int64
}

// NewSink creates a sink for out. Call Run to start playback.
func NewSink(out Output, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &Sink{
		out:   out,
		log:   logger.WithPrefix("audio"),
		queue: make(chan loop.Event, queueSize),
	}
}

// Emit queues ev without blocking. Events are dropped when the queue is full.
func (s *Sink) Emit(ev loop.Event) {
	select {
	case s.queue <- ev:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// Run plays queued events until ctx is done.
func (s *Sink) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.out.Theme(false)
			return
		case ev := <-s.queue:
			s.handle(ev)
		}
	}
}

func (s *Sink) handle(ev loop.Event) {
	cue, music, ok := CueFor(ev)
	switch music {
	case MusicStart:
		s.out.Theme(true)
	case MusicStop:
		s.out.Theme(false)
	}
	if !ok {
		return
	}
	if err := s.out.Play(cue); err != nil {
		s.log.Debug("play failed", "cue", cue.Name, "err", err)
	}
}

var _ loop.EventSink = (*Sink)(nil)
