package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
)

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

func TestDriverClampsElapsed(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))

	assert.Equal(t, config.MaxStep, d.Clamp(5*time.Second))
	assert.Equal(t, time.Duration(0), d.Clamp(-time.Second))
	assert.Equal(t, 10*time.Millisecond, d.Clamp(10*time.Millisecond))

	before := d.Sim().StageRemaining()
	require.True(t, d.Advance(5*time.Second, Intent{}))
	assert.InDelta(t, before-config.MaxStep.Seconds(), d.Sim().StageRemaining(), 1e-9)
}

func TestDriverClampPreventsSpawnBurst(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	d.Advance(time.Minute, Intent{})
	assert.Empty(t, d.Sim().Registry().Enemies)
}

func TestDriverPauseSkipsPipeline(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	before := d.Sim().StageRemaining()

	d.Pause()
	assert.False(t, d.Advance(16*time.Millisecond, Intent{}))
	assert.Equal(t, before, d.Sim().StageRemaining())
	assert.Zero(t, d.Sim().Ticks())
	assert.True(t, d.Snapshot().HUD.Paused)

	d.TogglePause()
	assert.False(t, d.Paused())
	assert.True(t, d.Advance(16*time.Millisecond, Intent{}))
	assert.Equal(t, uint64(1), d.Sim().Ticks())
}

func TestDriverContainsTickFault(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	player := d.Sim().reg.Player

	d.Sim().reg.Player = nil
	assert.NotPanics(t, func() {
		assert.False(t, d.Advance(16*time.Millisecond, Intent{}))
	})
	assert.Equal(t, 1, d.Faults())

	d.Sim().reg.Player = player
	assert.True(t, d.Advance(16*time.Millisecond, Intent{}))
	assert.Equal(t, 1, d.Faults())
}

func TestDriverDispatchesEventsAfterTick(t *testing.T) {
	rec := &eventRecorder{}
	s := newTestSim(t, 0)
	d := NewDriver(s, rec)

	p := s.Player()
	s.reg.AddEnemy(object.NewNormal(s.reg.NextID(), p.X+config.DashDistance+40, p.Y, s.rng))

	d.Advance(16*time.Millisecond, Intent{Attack: true})

	kinds := make([]EventKind, 0, len(rec.events))
	for _, ev := range rec.events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []EventKind{EventDash, EventKill}, kinds)
	assert.Empty(t, s.DrainEvents(), "queue is drained by the driver")
}

type scriptedSource struct {
	polls int
	limit int
	err   error
}

func (s *scriptedSource) Poll() (Intent, error) {
	s.polls++
	if s.polls > s.limit {
		return Intent{}, s.err
	}
	return Intent{DX: 1}, nil
}

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(snap Snapshot) error {
	r.frames++
	r.last = snap
	return nil
}

func TestDriverRunStopsOnQuit(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	src := &scriptedSource{limit: 3, err: ErrQuit}
	r := &countingRenderer{}

	err := d.Run(context.Background(), src, r)

	require.NoError(t, err)
	assert.Equal(t, 3, r.frames)
	assert.Equal(t, "PLAY", r.last.Phase)
}

func TestDriverRunWrapsSourceError(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	boom := errors.New("boom")

	err := d.Run(context.Background(), &scriptedSource{limit: 1, err: boom}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestDriverRunHonorsContext(t *testing.T) {
	d := NewDriver(newTestSim(t, 0))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Run(ctx, &scriptedSource{limit: 1 << 30}, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
