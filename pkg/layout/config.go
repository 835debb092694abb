package layout

// Overflow strategies for orbits whose nodes need more angular space than
// the circumference provides. Unknown or empty values fall back to
// proportional compression.
const (
	StrategySubdivide      = "subdivide"
	StrategyIncreaseRadius = "increase-radius"
	StrategyForceAdjust    = "force-adjust"
)

// Connection routing modes.
const (
	RoutingStraight = "straight"
	RoutingCurved   = "curved"
)

// Config holds every geometric knob of the layout engine. A zero Config is
// not usable; start from DefaultConfig.
type Config struct {
	// BaseRadius is the radius of the innermost orbit.
	BaseRadius float64 `validate:"gt=0"`
	// OrbitSpacing is the radial distance between consecutive orbits.
	OrbitSpacing float64 `validate:"gt=0"`
	// MinNodeMargin is the linear gap kept between neighboring nodes.
	MinNodeMargin float64 `validate:"gte=0"`
	// MaxNodesPerOrbit triggers subdivision when the subdivide strategy is
	// active and an orbit holds more nodes than this.
	MaxNodesPerOrbit int `validate:"gt=0"`
	// MinNodeWidth floors the estimated node width.
	MinNodeWidth float64 `validate:"gt=0"`
	// NodeHeight is the fixed estimated node height.
	NodeHeight float64 `validate:"gt=0"`
	// OverflowStrategy selects how overcrowded orbits are handled.
	OverflowStrategy string
	// CollisionIterations bounds the collision resolution passes.
	CollisionIterations int `validate:"gte=0"`
	// CollisionForce scales the angular push applied per overlap.
	CollisionForce float64 `validate:"gte=0"`
	// ConnectionRouting selects straight or curved connection paths.
	ConnectionRouting string
	// ConnectionCurvature scales the control-point offset of curved paths.
	ConnectionCurvature float64 `validate:"gte=0"`
}

// DefaultConfig returns the layout configuration used when the host
// application does not override anything.
func DefaultConfig() Config {
	return Config{
		BaseRadius:          200,
		OrbitSpacing:        120,
		MinNodeMargin:       12,
		MaxNodesPerOrbit:    12,
		MinNodeWidth:        60,
		NodeHeight:          36,
		OverflowStrategy:    StrategySubdivide,
		CollisionIterations: 50,
		CollisionForce:      0.5,
		ConnectionRouting:   RoutingCurved,
		ConnectionCurvature: 0.2,
	}
}
