package explore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OFFIS-RIT/orbit/internal/util"
	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/layout"
	"github.com/OFFIS-RIT/orbit/pkg/logger"
)

// Meta carries summary information about one exploration run.
type Meta struct {
	Focal              string        `json:"focal"`
	DiscoveredEntities int           `json:"discovered_entities"`
	MergedGroups       int           `json:"merged_groups"`
	Duration           time.Duration `json:"duration"`
}

// Result is the outcome of one exploration: the computed layout plus
// run metadata.
type Result struct {
	Layout common.LayoutResult `json:"layout"`
	Meta   Meta                `json:"meta"`
}

// Explore runs the full pipeline around a focal entity: discover the raw
// graph, deduplicate it, bucket entities into orbit levels by graph
// distance, pack each orbit radially, resolve residual collisions across
// all orbits, and route the connections.
//
// The central entity is the one flagged as root, else the one whose name
// matches the focal name, else the first discovered entity.
func (e *Explorer) Explore(ctx context.Context, focal string) (*Result, error) {
	start := time.Now()

	logger.Info("[Explore] Starting exploration", "focal", focal)

	discovery, err := util.RetryWithContext(ctx, e.maxRetries, func(ctx context.Context) (*common.DiscoveryResult, error) {
		return e.discoverer.Discover(ctx, focal)
	})
	if err != nil {
		return nil, fmt.Errorf("discovery failed for %q: %w", focal, err)
	}
	if discovery == nil || len(discovery.Entities) == 0 {
		return nil, fmt.Errorf("discovery returned no entities for %q", focal)
	}

	entities := discovery.Entities
	connections := discovery.Connections
	discovered := len(entities)

	mergedGroups := 0
	if !e.options.SkipDedupe {
		var groups [][]common.Entity
		entities, connections, groups, err = e.resolver.DeduplicateWithGroups(entities, connections)
		if err != nil {
			return nil, err
		}
		mergedGroups = len(groups)
	}

	central, rest := pickCentral(entities, focal)

	if e.options.MinConfidence > 0 {
		kept := make([]common.Entity, 0, len(rest))
		for _, entity := range rest {
			if entity.EffectiveConfidence() >= e.options.MinConfidence {
				kept = append(kept, entity)
			}
		}
		rest = kept
	}

	buckets, levels := bucketByLevel(rest)

	positions := make([][]common.OrbitPosition, len(levels))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for i, level := range levels {
		eg.Go(func() error {
			radius := e.options.BaseRadius + float64(i)*e.options.OrbitSpacing
			positions[i] = layout.PackOrbit(buckets[level], radius, float64(i+1), e.options.Config)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var nodes []common.OrbitPosition
	for _, orbit := range positions {
		nodes = append(nodes, orbit...)
	}
	nodes = layout.ResolveCollisions(nodes, e.options.Config)

	centralPosition := common.OrbitPosition{
		Entity:     central,
		Dimensions: layout.EstimateDimensions(central.DisplayName(), e.options.Config),
	}

	routes := layout.RouteConnections(centralPosition, nodes, connections, e.options.Config)

	hasOverflow := false
	for _, node := range nodes {
		if node.HasOverflow {
			hasOverflow = true
			break
		}
	}

	result := &Result{
		Layout: common.LayoutResult{
			Central:     centralPosition,
			Nodes:       nodes,
			Connections: routes,
			Stats: common.LayoutStats{
				TotalNodes:       len(nodes) + 1,
				TotalConnections: len(routes),
				OrbitCount:       len(levels),
				HasOverflow:      hasOverflow,
			},
		},
		Meta: Meta{
			Focal:              focal,
			DiscoveredEntities: discovered,
			MergedGroups:       mergedGroups,
			Duration:           time.Since(start),
		},
	}

	logger.Info("[Explore] Exploration completed",
		"focal", focal,
		"nodes", len(nodes),
		"connections", len(routes),
		"orbits", len(levels),
		"merged_groups", mergedGroups,
		"duration", result.Meta.Duration,
	)

	return result, nil
}

func pickCentral(entities []common.Entity, focal string) (common.Entity, []common.Entity) {
	idx := -1
	for i, entity := range entities {
		if entity.IsRoot {
			idx = i
			break
		}
	}
	if idx == -1 {
		for i, entity := range entities {
			if entity.DisplayName() == focal {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		idx = 0
	}

	rest := make([]common.Entity, 0, len(entities)-1)
	rest = append(rest, entities[:idx]...)
	rest = append(rest, entities[idx+1:]...)
	return entities[idx], rest
}

// bucketByLevel groups non-central entities by their graph distance from
// the focal entity. Entities without a level land on the innermost orbit.
func bucketByLevel(entities []common.Entity) (map[int][]common.Entity, []int) {
	buckets := make(map[int][]common.Entity)
	for _, entity := range entities {
		level := entity.Level
		if level <= 0 {
			level = 1
		}
		buckets[level] = append(buckets[level], entity)
	}

	levels := make([]int, 0, len(buckets))
	for level := range buckets {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	return buckets, levels
}
