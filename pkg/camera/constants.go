package camera

// Look camera constants
const (
	// MovementSpeedScale divides the caller-supplied movement speed; raw input
	// magnitudes are too large for per-frame displacement otherwise.
	MovementSpeedScale = 10.0
)

// Orbit camera constants
const (
	MinDistance = 1.0
	MaxDistance = 100.0

	// Elevation stays off the poles so the look-at basis never degenerates
	MinElevation = -89.0
	MaxElevation = 89.0
)
