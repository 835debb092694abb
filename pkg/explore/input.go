package explore

import (
	"sort"

	"github.com/OFFIS-RIT/orbit/pkg/common"
)

// FromGraph normalizes the multi-level graph form of a discovery result
// (a name-keyed node map plus an edge list) into the flat DiscoveryResult
// the engine consumes. Node order is made deterministic by sorting names;
// nodes without a name or label inherit their map key.
func FromGraph(nodes map[string]common.Entity, edges []common.Connection) *common.DiscoveryResult {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	entities := make([]common.Entity, 0, len(names))
	for _, name := range names {
		entity := nodes[name]
		if entity.Name == "" && entity.Label == "" {
			entity.Name = name
		}
		entities = append(entities, entity)
	}

	return &common.DiscoveryResult{
		Entities:    entities,
		Connections: edges,
	}
}
