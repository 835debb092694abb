package explore

import (
	"github.com/OFFIS-RIT/orbit/internal/util"
	"github.com/OFFIS-RIT/orbit/pkg/layout"
	"github.com/OFFIS-RIT/orbit/pkg/match"
)

// Options configures one Explorer: the geometric layout knobs plus the
// entity-resolution thresholds. Start from DefaultOptions or OptionsFromEnv;
// NewExplorer validates the result and rejects unusable configurations.
type Options struct {
	layout.Config

	// AutoMergeThreshold is the match confidence at or above which two
	// discovered entities are merged without review.
	AutoMergeThreshold float64 `validate:"gte=0,lte=1"`
	// MinConfidence filters orbit entities whose effective confidence falls
	// below it. Zero keeps everything.
	MinConfidence float64 `validate:"gte=0,lte=1"`
	// SkipDedupe disables entity deduplication entirely.
	SkipDedupe bool
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Config:             layout.DefaultConfig(),
		AutoMergeThreshold: match.AutoMergeThreshold,
	}
}

// OptionsFromEnv returns DefaultOptions overlaid with any ORBIT_* values
// present in the environment, so the host application can tune the engine
// without code changes.
func OptionsFromEnv() Options {
	opts := DefaultOptions()

	opts.BaseRadius = util.GetEnvNumeric("ORBIT_BASE_RADIUS", opts.BaseRadius)
	opts.OrbitSpacing = util.GetEnvNumeric("ORBIT_SPACING", opts.OrbitSpacing)
	opts.MinNodeMargin = util.GetEnvNumeric("ORBIT_MIN_NODE_MARGIN", opts.MinNodeMargin)
	opts.MaxNodesPerOrbit = util.GetEnvInt("ORBIT_MAX_NODES_PER_ORBIT", opts.MaxNodesPerOrbit)
	opts.MinNodeWidth = util.GetEnvNumeric("ORBIT_MIN_NODE_WIDTH", opts.MinNodeWidth)
	opts.NodeHeight = util.GetEnvNumeric("ORBIT_NODE_HEIGHT", opts.NodeHeight)
	opts.OverflowStrategy = util.GetEnvString("ORBIT_OVERFLOW_STRATEGY", opts.OverflowStrategy)
	opts.CollisionIterations = util.GetEnvInt("ORBIT_COLLISION_ITERATIONS", opts.CollisionIterations)
	opts.CollisionForce = util.GetEnvNumeric("ORBIT_COLLISION_FORCE", opts.CollisionForce)
	opts.ConnectionRouting = util.GetEnvString("ORBIT_CONNECTION_ROUTING", opts.ConnectionRouting)
	opts.ConnectionCurvature = util.GetEnvNumeric("ORBIT_CONNECTION_CURVATURE", opts.ConnectionCurvature)
	opts.AutoMergeThreshold = util.GetEnvNumeric("ORBIT_AUTO_MERGE_THRESHOLD", opts.AutoMergeThreshold)
	opts.MinConfidence = util.GetEnvNumeric("ORBIT_MIN_CONFIDENCE", opts.MinConfidence)
	opts.SkipDedupe = util.GetEnvBool("ORBIT_SKIP_DEDUPE", opts.SkipDedupe)

	return opts
}
