package loop

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/unicorns/internal/loop/config"
)

// ErrQuit is returned by an IntentSource when the player asks to leave.
var ErrQuit = errors.New("quit")

// IntentSource supplies the input for the next tick.
type IntentSource interface {
	Poll() (Intent, error)
}

// Renderer consumes a snapshot after each frame.
type Renderer interface {
	Render(Snapshot) error
}

// Driver advances a Sim in bounded steps, contains faults raised inside a
// tick and dispatches events to sinks once the tick is over.
type Driver struct {
	sim     *Sim
	log     *log.Logger
	maxStep time.Duration
	sinks   []EventSink
	paused  bool
	faults  int
}

// NewDriver wraps sim. Events are delivered to every sink in order.
func NewDriver(sim *Sim, sinks ...EventSink) *Driver {
	return &Driver{
		sim:     sim,
		log:     sim.opts.Logger.WithPrefix("driver"),
		maxStep: sim.opts.MaxStep,
		sinks:   sinks,
	}
}

// Sim returns the driven simulation.
func (d *Driver) Sim() *Sim {
	return d.sim
}

// AddSink registers an additional event sink.
func (d *Driver) AddSink(sink EventSink) {
	d.sinks = append(d.sinks, sink)
}

// Clamp bounds a raw elapsed time to [0, maxStep].
func (d *Driver) Clamp(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if elapsed > d.maxStep {
		return d.maxStep
	}
	return elapsed
}

// Advance runs the pipeline once for the given wall-clock elapsed time.
// It returns false if the session is paused or the tick faulted.
func (d *Driver) Advance(elapsed time.Duration, in Intent) bool {
	if d.paused {
		return false
	}
	ok := d.safeStep(d.Clamp(elapsed).Seconds(), in)
	d.dispatch()
	return ok
}

// safeStep runs one tick, recovering from any panic so the next tick can run.
func (d *Driver) safeStep(dt float64, in Intent) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.faults++
			d.log.Error("tick fault",
				"err", fmt.Sprint(r),
				"phase", d.sim.phase,
				"tick", d.sim.ticks,
				"faults", d.faults,
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	d.sim.Step(dt, in)
	return true
}

func (d *Driver) dispatch() {
	for _, ev := range d.sim.DrainEvents() {
		for _, sink := range d.sinks {
			sink.Emit(ev)
		}
	}
}

// Pause stops the pipeline from running until Resume is called.
func (d *Driver) Pause() { d.paused = true }

// Resume re-enables the pipeline.
func (d *Driver) Resume() { d.paused = false }

// TogglePause flips the paused flag.
func (d *Driver) TogglePause() {
	d.paused = !d.paused
	d.log.Debug("pause toggled", "paused", d.paused)
}

// Paused reports whether the session is paused.
func (d *Driver) Paused() bool { return d.paused }

// Faults returns the number of ticks that raised a fault.
func (d *Driver) Faults() int { return d.faults }

// Snapshot returns the current frame state including the pause flag.
func (d *Driver) Snapshot() Snapshot {
	snap := d.sim.Snapshot()
	snap.HUD.Paused = d.paused
	return snap
}

// Run drives the simulation at the target frame rate until ctx is done, the
// source returns an error or the renderer fails. ErrQuit ends the run cleanly.
func (d *Driver) Run(ctx context.Context, src IntentSource, r Renderer) error {
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// Input
		in, err := src.Poll()
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}

		// Update
		d.Advance(delta, in)

		// Draw
		if r != nil {
			if err := r.Render(d.Snapshot()); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.TargetFrameTime - elapsed):
			}
		}
	}
}
