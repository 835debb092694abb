package layout

import (
	"math"

	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/logger"
)

// RouteConnections computes a renderable path for every connection whose
// endpoints resolve to a positioned entity (by name or label, the central
// position included). Connections with an unresolvable endpoint are dropped
// silently; missing entities are a data-quality issue, not an error.
func RouteConnections(
	central common.OrbitPosition,
	positions []common.OrbitPosition,
	connections []common.Connection,
	cfg Config,
) []common.ConnectionRoute {
	index := make(map[string]*common.OrbitPosition, 2*len(positions)+2)
	register := func(p *common.OrbitPosition) {
		for _, name := range []string{p.Entity.Name, p.Entity.Label} {
			if name == "" {
				continue
			}
			if _, ok := index[name]; !ok {
				index[name] = p
			}
		}
	}
	register(&central)
	for i := range positions {
		register(&positions[i])
	}

	routes := make([]common.ConnectionRoute, 0, len(connections))
	for _, conn := range connections {
		source, okSource := index[conn.Source]
		target, okTarget := index[conn.Target]
		if !okSource || !okTarget {
			logger.Debug("[Layout] Dropping connection with unresolved endpoint", "source", conn.Source, "target", conn.Target)
			continue
		}

		routes = append(routes, common.ConnectionRoute{
			Source:     conn.Source,
			Target:     conn.Target,
			Relation:   conn.Relation,
			Confidence: conn.Confidence,
			Path:       buildPath(source, target, cfg),
		})
	}

	return routes
}

func buildPath(source, target *common.OrbitPosition, cfg Config) common.Path {
	if cfg.ConnectionRouting != RoutingCurved {
		return linePath(source, target)
	}

	dx := target.X - source.X
	dy := target.Y - source.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		// Identical endpoint coordinates; a curve has no defined normal.
		return linePath(source, target)
	}

	// Control point offset perpendicular to the source->target vector, so
	// parallel edges between nearby nodes separate visually.
	offset := length * cfg.ConnectionCurvature
	return common.Path{
		Kind: common.PathQuadratic,
		X1:   source.X,
		Y1:   source.Y,
		CX:   (source.X+target.X)/2 - dy/length*offset,
		CY:   (source.Y+target.Y)/2 + dx/length*offset,
		X2:   target.X,
		Y2:   target.Y,
	}
}

func linePath(source, target *common.OrbitPosition) common.Path {
	return common.Path{
		Kind: common.PathLine,
		X1:   source.X,
		Y1:   source.Y,
		X2:   target.X,
		Y2:   target.Y,
	}
}
