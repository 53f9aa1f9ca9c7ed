package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/constants"
)

// Intent is the camera input accumulated since the last frame. The
// orchestrator drains one Intent per frame and applies it to the scene
// before physics runs, so camera state never changes mid-frame.
type Intent struct {
	Yaw   float64 // radians
	Pitch float64 // radians
	Zoom  float64 // render units along the camera Z axis

	Resized bool
	Width   int
	Height  int

	Quit bool
}

// Handler folds terminal events into the pending intent. It tracks the
// pointer across events so right-button drags turn into rotation deltas.
type Handler struct {
	dragging     bool
	lastX, lastY int
	pending      Intent
}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleEvent accumulates one terminal event. Safe to call any number of
// times between frames.
func (h *Handler) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			h.pending.Quit = true
		}

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.pending.Resized = true
		h.pending.Width, h.pending.Height = ev.Size()
	}
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()

	// Wheel zoom: up moves the camera toward the scene
	if buttons&tcell.WheelUp != 0 {
		h.pending.Zoom += constants.ZoomStep
	}
	if buttons&tcell.WheelDown != 0 {
		h.pending.Zoom -= constants.ZoomStep
	}

	x, y := ev.Position()
	if buttons&tcell.ButtonSecondary != 0 {
		if h.dragging {
			h.pending.Yaw += float64(x-h.lastX) * constants.DragSensitivity
			h.pending.Pitch += float64(y-h.lastY) * constants.DragSensitivity
		}
		h.dragging = true
		h.lastX, h.lastY = x, y
	} else {
		h.dragging = false
	}
}

// Drain returns the accumulated intent and resets it. Drag tracking
// carries across frames so a held button keeps producing deltas.
func (h *Handler) Drain() Intent {
	intent := h.pending
	h.pending = Intent{}
	return intent
}

// QuitRequested peeks at the pending quit flag without draining, letting
// the event loop exit without waiting for the next frame tick
func (h *Handler) QuitRequested() bool {
	return h.pending.Quit
}
