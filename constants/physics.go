package constants

// Newtonian gravity
const (
	// G is the gravitational constant (m^3 kg^-1 s^-2)
	G = 6.67430e-11

	// MinSeparation is the distance (m) below which a force pair is skipped
	// to avoid the inverse-square singularity
	MinSeparation = 1.0
)

// Earth-Moon initial conditions (SI units)
const (
	EarthMass   = 5.972e24
	MoonMass    = 7.348e22
	EarthRadius = 6.371e6
	MoonRadius  = 1.737e6

	// EarthMoonDistance is the mean orbital distance (m)
	EarthMoonDistance = 3.844e8

	// MoonOrbitalSpeed is the mean orbital speed (m/s)
	MoonOrbitalSpeed = 1022.0
)
