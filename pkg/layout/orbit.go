package layout

import (
	"math"

	"github.com/OFFIS-RIT/orbit/internal/util"
	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/logger"
)

// PackOrbit places a set of entities on a circular orbit around the origin,
// allocating angular space proportional to each node's measured footprint.
//
// When the nodes fit, the spare circumference is split evenly and every node
// is centered in its allotted arc. When they do not fit, the behavior depends
// on the configured overflow strategy: subdivide splits the orbit into
// concentric sub-orbits (fractional orbit indices such as 2.1 and 2.2),
// increase-radius grows the radius until the ring fits exactly, and anything
// else compresses all slots proportionally. The central entity is never part
// of an orbit; callers place it at the origin themselves.
func PackOrbit(entities []common.Entity, radius, orbitIndex float64, cfg Config) []common.OrbitPosition {
	if len(entities) == 0 {
		return nil
	}
	if cfg.OverflowStrategy == StrategySubdivide && cfg.MaxNodesPerOrbit > 0 && len(entities) > cfg.MaxNodesPerOrbit {
		return packSubdivided(entities, radius, orbitIndex, cfg)
	}
	return packRing(entities, radius, orbitIndex, cfg, false)
}

func packRing(entities []common.Entity, radius, orbitIndex float64, cfg Config, forceOverflow bool) []common.OrbitPosition {
	n := len(entities)

	dims := make([]common.Dimensions, n)
	angular := make([]float64, n)
	total := 0.0
	for i, entity := range entities {
		dims[i] = EstimateDimensions(entity.DisplayName(), cfg)
		angular[i] = (dims[i].Width + cfg.MinNodeMargin) / radius
		total += angular[i]
	}

	overflow := total > 2*math.Pi
	if overflow && cfg.OverflowStrategy == StrategyIncreaseRadius {
		grown := radius * total / (2 * math.Pi)
		for i := range angular {
			angular[i] *= radius / grown
		}
		logger.Debug("[Layout] Growing overflowing orbit", "orbit", orbitIndex, "radius", radius, "grown", grown)
		radius = grown
		total = 2 * math.Pi
	}

	scale := 1.0
	padding := 0.0
	if overflow {
		if total > 2*math.Pi {
			scale = 2 * math.Pi / total
		}
	} else {
		padding = (2*math.Pi - total) / float64(n)
	}

	positions := make([]common.OrbitPosition, 0, n)
	cursor := 0.0
	for i, entity := range entities {
		slot := angular[i]*scale + padding
		angle := util.NormalizeAngle(cursor + slot/2)
		positions = append(positions, common.OrbitPosition{
			Entity:      entity,
			Angle:       angle,
			Radius:      radius,
			OrbitIndex:  orbitIndex,
			X:           radius * math.Cos(angle),
			Y:           radius * math.Sin(angle),
			Dimensions:  dims[i],
			HasOverflow: overflow || forceOverflow,
		})
		cursor += slot
	}

	return positions
}

// packSubdivided splits an overcrowded orbit into contiguous chunks and
// packs each chunk on its own sub-orbit, radius-offset symmetrically around
// the base radius.
func packSubdivided(entities []common.Entity, radius, orbitIndex float64, cfg Config) []common.OrbitPosition {
	subOrbits := (len(entities) + cfg.MaxNodesPerOrbit - 1) / cfg.MaxNodesPerOrbit
	// Fractional sub-orbit indices must stay below the next whole orbit.
	if subOrbits > 9 {
		subOrbits = 9
	}
	chunkSize := (len(entities) + subOrbits - 1) / subOrbits
	spacing := cfg.OrbitSpacing / float64(subOrbits)

	logger.Debug("[Layout] Subdividing orbit", "orbit", orbitIndex, "nodes", len(entities), "sub_orbits", subOrbits)

	var positions []common.OrbitPosition
	for k := 0; k < subOrbits; k++ {
		start := k * chunkSize
		if start >= len(entities) {
			break
		}
		end := util.Min(start+chunkSize, len(entities))

		offset := (float64(k) - float64(subOrbits-1)/2) * spacing
		subRadius := radius + offset
		if subRadius <= 0 {
			subRadius = radius
		}
		subIndex := orbitIndex + float64(k+1)/10

		positions = append(positions, packRing(entities[start:end], subRadius, subIndex, cfg, true)...)
	}

	return positions
}
