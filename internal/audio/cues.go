// Package audio turns simulation events into short synthesized sound cues.
// Playback never blocks the tick: events are queued and dropped when the
// queue is full.
package audio

import (
	"time"

	"github.com/tomz197/unicorns/internal/loop"
)

// Cue is a short sequence of sine notes.
type Cue struct {
	Name  string
	Notes []float64 // Frequencies in Hz, played back to back
	Note  time.Duration
}

// Music control for the power theme.
type Music uint8

const (
	MusicNone Music = iota
	MusicStart
	MusicStop
)

var cues = map[loop.EventKind]Cue{
	loop.EventKill:      {Name: "kill", Notes: []float64{660, 880}, Note: 40 * time.Millisecond},
	loop.EventEnemyHit:  {Name: "enemy-hit", Notes: []float64{440}, Note: 30 * time.Millisecond},
	loop.EventPlayerHit: {Name: "player-hit", Notes: []float64{220, 165}, Note: 70 * time.Millisecond},
	loop.EventLifeLost:  {Name: "life-lost", Notes: []float64{330, 262, 196}, Note: 120 * time.Millisecond},
	loop.EventDash:      {Name: "dash", Notes: []float64{523}, Note: 25 * time.Millisecond},
	loop.EventRayFire:   {Name: "ray", Notes: []float64{1046}, Note: 20 * time.Millisecond},
	loop.EventDialogue:  {Name: "dialogue", Notes: []float64{784, 988}, Note: 90 * time.Millisecond},
	loop.EventFirework:  {Name: "firework", Notes: []float64{1318, 1568, 2093}, Note: 50 * time.Millisecond},
}

var phaseCues = map[loop.Phase]Cue{
	loop.PhaseFinalWave: {Name: "final-wave", Notes: []float64{196, 196, 294}, Note: 150 * time.Millisecond},
	loop.PhaseVictory:   {Name: "victory", Notes: []float64{523, 659, 784, 1046}, Note: 120 * time.Millisecond},
	loop.PhaseGameOver:  {Name: "game-over", Notes: []float64{392, 330, 262, 196}, Note: 180 * time.Millisecond},
}

// CueFor maps an event to its sound cue and its effect on the power theme.
func CueFor(ev loop.Event) (Cue, Music, bool) {
	switch ev.Kind {
	case loop.EventRayGained, loop.EventMegaGained:
		return Cue{Name: "power-up", Notes: []float64{523, 659, 784}, Note: 60 * time.Millisecond}, MusicStart, true
	case loop.EventPowerLost:
		return Cue{}, MusicStop, false
	case loop.EventPhaseEnter:
		c, ok := phaseCues[ev.Phase]
		return c, MusicStop, ok
	case loop.EventKill:
		c := cues[ev.Kind]
		if ev.Special {
			c.Notes = []float64{660, 880, 1320}
		}
		return c, MusicNone, true
	}
	c, ok := cues[ev.Kind]
	return c, MusicNone, ok
}
