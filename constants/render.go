package constants

// World-to-screen mapping
const (
	// DisplayScale converts world meters to render units
	DisplayScale = 1e-7

	// RadiusGain inflates body radii so small bodies stay visible
	RadiusGain = 15.0

	// Fov is the perspective constant: factor = Fov / (Fov + depth)
	Fov = 500.0

	// NearPlane is the minimum camera-space depth for a body to render
	NearPlane = 1.0
)

// Default scene placement (render units)
const (
	// CamDistance is the default camera offset behind the origin
	CamDistance = EarthMoonDistance * DisplayScale * 2.5

	// CamPitch is the default downward tilt (radians)
	CamPitch = 0.3

	// LightDistance places the point light behind the camera
	LightDistance = EarthMoonDistance * DisplayScale * 3.0
)

// Shading
const (
	// AmbientTerm and DiffuseTerm blend the Lambert intensity:
	// factor = AmbientTerm + DiffuseTerm*intensity
	AmbientTerm = 0.1
	DiffuseTerm = 0.9
)

// Body colors (packed 0xRRGGBBAA)
const (
	EarthColor  = 0x4F94E8FF
	MoonColor   = 0xCCCCCCFF
	MarkerColor = 0x00FFFFFF
)
