package layout

import (
	"math"

	"github.com/OFFIS-RIT/orbit/internal/util"
	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/logger"
)

// ResolveCollisions runs a bounded iterative repulsion pass over the
// positions and returns the same slice with residual overlaps reduced.
//
// Only pairs whose orbit indices differ by at most one are checked; pairs
// further apart are never compared, which bounds the cost. When two nodes
// sit closer than half the sum of their widths plus the margin, both are
// pushed apart along their own orbits and their cartesian coordinates are
// recomputed from the updated angle. The pass ends early once a full sweep
// makes no adjustment. The solver is damped and not physically exact: in
// dense subdivided orbits it reduces overlap rather than guaranteeing zero.
func ResolveCollisions(positions []common.OrbitPosition, cfg Config) []common.OrbitPosition {
	for iteration := 0; iteration < cfg.CollisionIterations; iteration++ {
		adjusted := false

		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				a := &positions[i]
				b := &positions[j]
				if math.Abs(a.OrbitIndex-b.OrbitIndex) > 1 {
					continue
				}

				distance := math.Hypot(b.X-a.X, b.Y-a.Y)
				required := (a.Dimensions.Width+b.Dimensions.Width)/2 + cfg.MinNodeMargin
				if distance >= required {
					continue
				}

				force := (required - distance) * cfg.CollisionForce
				if a.Radius > 0 {
					a.Angle = util.NormalizeAngle(a.Angle - force/a.Radius)
					a.X = a.Radius * math.Cos(a.Angle)
					a.Y = a.Radius * math.Sin(a.Angle)
				}
				if b.Radius > 0 {
					b.Angle = util.NormalizeAngle(b.Angle + force/b.Radius)
					b.X = b.Radius * math.Cos(b.Angle)
					b.Y = b.Radius * math.Sin(b.Angle)
				}
				adjusted = true
			}
		}

		if !adjusted {
			logger.Debug("[Layout] Collision resolution converged", "iterations", iteration)
			break
		}
	}

	return positions
}

// TotalOverlap sums the pairwise overlap among orbit-adjacent positions.
// Useful for diagnostics and for asserting that collision resolution made
// things better.
func TotalOverlap(positions []common.OrbitPosition, cfg Config) float64 {
	total := 0.0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a := positions[i]
			b := positions[j]
			if math.Abs(a.OrbitIndex-b.OrbitIndex) > 1 {
				continue
			}
			distance := math.Hypot(b.X-a.X, b.Y-a.Y)
			required := (a.Dimensions.Width+b.Dimensions.Width)/2 + cfg.MinNodeMargin
			if distance < required {
				total += required - distance
			}
		}
	}
	return total
}
