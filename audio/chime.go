package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 60 * time.Millisecond
)

// Engine wraps the speaker for short event chimes. A failed speaker init
// yields a disabled engine; playback calls become no-ops so the simulation
// runs without sound.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. The error is informational; the
// returned engine is always usable.
func NewEngine() (*Engine, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Engine{enabled: err == nil}, err
}

// NewDisabled returns a muted engine
func NewDisabled() *Engine {
	return &Engine{}
}

// Chime plays a short sine tone at the given frequency
func (e *Engine) Chime(freq float64) {
	if e == nil || !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(chimeDuration), sine))
}

// Close releases the speaker
func (e *Engine) Close() {
	if e != nil && e.enabled {
		speaker.Close()
	}
}
