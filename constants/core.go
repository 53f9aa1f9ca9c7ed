package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the integration step so a stalled frame (or the
	// first frame after init) cannot slingshot the simulation
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Input tuning
const (
	// DragSensitivity is radians of camera rotation per dragged cell
	DragSensitivity = 0.02

	// ZoomStep is the camera dolly distance per wheel notch (render units)
	ZoomStep = 4.0
)
