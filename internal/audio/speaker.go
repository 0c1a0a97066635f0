package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	theme *beep.Ctrl
}

// NewSpeaker initializes the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the cue in and returns immediately.
func (s *Speaker) Play(c Cue) error {
	notes := make([]beep.Streamer, 0, len(c.Notes))
	for _, f := range c.Notes {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return fmt.Errorf("tone %.0fHz: %w", f, err)
		}
		notes = append(notes, beep.Take(sampleRate.N(c.Note), tone))
	}
	cue := &effects.Volume{Streamer: beep.Seq(notes...), Base: 2, Volume: -3}

	speaker.Lock()
	s.mixer.Add(cue)
	speaker.Unlock()
	return nil
}

// Theme starts or pauses the looping power theme.
func (s *Speaker) Theme(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	if s.theme == nil {
		if !on {
			return
		}
		s.theme = &beep.Ctrl{Streamer: &effects.Volume{Streamer: newArpeggio(sampleRate), Base: 2, Volume: -5}}
		s.mixer.Add(s.theme)
		return
	}
	s.theme.Paused = !on
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// arpeggio is an endless major arpeggio used as the power theme.
type arpeggio struct {
	sr    beep.SampleRate
	notes []float64
	step  int // Samples per note
	pos   int
}

func newArpeggio(sr beep.SampleRate) *arpeggio {
	return &arpeggio{
		sr:    sr,
		notes: []float64{523.25, 659.25, 783.99, 1046.5},
		step:  sr.N(110 * time.Millisecond),
	}
}

func (a *arpeggio) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		note := a.notes[(a.pos/a.step)%len(a.notes)]
		t := float64(a.pos) / float64(a.sr)
		// Short decay per note gives a plucked feel.
		env := math.Exp(-6 * float64(a.pos%a.step) / float64(a.step))
		v := math.Sin(2*math.Pi*note*t) * env * 0.3
		samples[i][0] = v
		samples[i][1] = v
		a.pos++
	}
	return len(samples), true
}

func (a *arpeggio) Err() error {
	return nil
}

// Mute is an Output that discards everything.
type Mute struct{}

func (Mute) Play(Cue) error { return nil }
func (Mute) Theme(bool)     {}
