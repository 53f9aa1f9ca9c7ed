package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/render"
)

// Options tunes a Game at construction
type Options struct {
	// Markers stamps a highlight square at each body's projected center
	Markers bool

	// TimeScale multiplies the wall-clock frame delta before integration.
	// 1.0 is physically real time; a lunar orbit then takes a month of
	// wall clock, so interactive runs usually want 1e4 or more.
	TimeScale float64

	// Audio plays the half-orbit chime; nil disables it
	Audio *audio.Engine
}

// Game owns the body collection, the scene, the framebuffer, and the
// screen for the duration of a run. Frames are strictly sequential: the
// render of frame N always observes frame N's fully integrated state.
type Game struct {
	screen tcell.Screen
	fb     *render.Framebuffer
	scene  *core.Scene
	bodies []core.Body
	input  *input.Handler
	opts   Options

	lastFrame time.Time

	// Satellite Y position relative to the central body on the previous
	// frame, for half-orbit crossing detection
	prevRelY    float64
	chimeToggle bool
}

// NewGame builds the default Earth-Moon session on an initialized screen
func NewGame(screen tcell.Screen, opts Options) *Game {
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1.0
	}
	w, h := screen.Size()
	g := &Game{
		screen: screen,
		fb:     render.NewFramebuffer(w, h*2),
		scene:  core.NewScene(),
		bodies: core.NewEarthMoonBodies(),
		input:  input.NewHandler(),
		opts:   opts,
	}
	if len(g.bodies) > 1 {
		g.prevRelY = g.bodies[1].Pos.Y - g.bodies[0].Pos.Y
	}
	return g
}

// Run drives the frame loop until a quit event. A dedicated goroutine
// forwards terminal events into a channel; everything else happens on
// this goroutine, one frame at a time.
func (g *Game) Run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			events <- ev
		}
	}()

	g.lastFrame = time.Now()
	for {
		select {
		case ev := <-events:
			g.input.HandleEvent(ev)
			if g.input.QuitRequested() {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(g.lastFrame)
			g.lastFrame = now
			if dt > constants.MaxFrameDelta {
				dt = constants.MaxFrameDelta
			}
			if !g.step(dt.Seconds()) {
				return
			}
		}
	}
}

// step runs one frame: clear, apply input, integrate, rasterize, present.
// Returns false when the session should end.
func (g *Game) step(dt float64) bool {
	g.fb.Clear(core.RGBABlack)

	intent := g.input.Drain()
	if intent.Quit {
		return false
	}
	if intent.Resized {
		g.screen.Sync()
		g.fb.Resize(intent.Width, intent.Height*2)
	}
	g.scene.Orbit(intent.Yaw, intent.Pitch)
	g.scene.Dolly(intent.Zoom)

	physics.Advance(g.bodies, dt*g.opts.TimeScale)
	g.checkHalfOrbit()

	for i := range g.bodies {
		render.DrawSphere(g.fb, g.scene, &g.bodies[i])
		if g.opts.Markers {
			render.DrawMarker(g.fb, g.scene, &g.bodies[i])
		}
	}

	render.FlushToScreen(g.fb, g.screen)
	return true
}

// checkHalfOrbit chimes when the satellite crosses the central body's
// orbital plane axis, alternating pitch between the two crossings
func (g *Game) checkHalfOrbit() {
	if len(g.bodies) < 2 || g.opts.Audio == nil {
		return
	}
	relY := g.bodies[1].Pos.Y - g.bodies[0].Pos.Y
	if (relY < 0) != (g.prevRelY < 0) && g.prevRelY != relY {
		if g.chimeToggle {
			g.opts.Audio.Chime(660)
		} else {
			g.opts.Audio.Chime(880)
		}
		g.chimeToggle = !g.chimeToggle
	}
	g.prevRelY = relY
}
