package resolve

import (
	"github.com/OFFIS-RIT/orbit/pkg/match"
)

// Resolver deduplicates discovered entities by pairwise match scoring and
// folds duplicate groups into canonical entities.
//
// A Resolver is stateless apart from its configuration; it is safe to share
// across goroutines and should be created once via NewResolver.
type Resolver struct {
	autoMergeThreshold float64
}

// NewResolverParams defines the configuration for creating a Resolver.
//
// AutoMergeThreshold is the confidence at or above which two entities are
// merged without review. Non-positive values fall back to the default
// threshold of the match package.
type NewResolverParams struct {
	AutoMergeThreshold float64
}

// NewResolver creates a Resolver configured with the provided parameters.
func NewResolver(params NewResolverParams) *Resolver {
	threshold := params.AutoMergeThreshold
	if threshold <= 0 {
		threshold = match.AutoMergeThreshold
	}
	return &Resolver{
		autoMergeThreshold: threshold,
	}
}
