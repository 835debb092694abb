package explore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/resolve"
)

// Discoverer supplies the raw entity graph around a focal entity. It is the
// external collaborator that talks to knowledge bases; any concurrency or
// network handling lives entirely on its side, and the snapshot it returns
// must not be mutated afterwards.
type Discoverer interface {
	Discover(ctx context.Context, name string) (*common.DiscoveryResult, error)
}

// Explorer is the public entry point of the engine. It sequences discovery,
// deduplication, radial packing, collision resolution, and connection
// routing into one layout result.
//
// An Explorer is safe for concurrent use; independent explorations share no
// mutable state. Create one via NewExplorer.
type Explorer struct {
	discoverer Discoverer
	resolver   *resolve.Resolver
	options    Options
	maxRetries int
}

// NewExplorerParams defines the configuration parameters for creating a
// new Explorer.
//
// Discoverer is required. MaxRetries bounds how often a failing discovery
// call is retried and defaults to 3.
type NewExplorerParams struct {
	Discoverer Discoverer
	Options    Options
	MaxRetries int
}

// NewExplorer creates and returns a new Explorer configured with the
// provided parameters. Invalid layout options fail fast here; nothing else
// in the engine returns configuration errors.
func NewExplorer(params NewExplorerParams) (*Explorer, error) {
	if params.Discoverer == nil {
		return nil, errors.New("explore: discoverer is required")
	}
	if err := validator.New().Struct(params.Options); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &Explorer{
		discoverer: params.Discoverer,
		resolver: resolve.NewResolver(resolve.NewResolverParams{
			AutoMergeThreshold: params.Options.AutoMergeThreshold,
		}),
		options:    params.Options,
		maxRetries: maxRetries,
	}, nil
}
