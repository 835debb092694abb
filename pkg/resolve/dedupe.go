package resolve

import (
	"fmt"

	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/logger"
	"github.com/OFFIS-RIT/orbit/pkg/match"
)

// Deduplicate groups the entity list into equivalence classes and merges
// each class into one canonical entity. Connections are remapped onto the
// canonical names; self-loops produced by a merge are dropped and duplicate
// undirected connections are folded together with averaged confidence.
//
// Grouping is a single greedy left-to-right pass: each unprocessed entity is
// compared against all subsequent unprocessed entities, and any pair scoring
// at or above the auto-merge threshold joins the seed's group. This is not a
// full transitive closure: two entities that would each match a common third
// but not each other stay ungrouped when compared out of order. That is a
// known, accepted approximation.
//
// Entities lacking both name and label never take part in matching and pass
// through unchanged.
func (r *Resolver) Deduplicate(
	entities []common.Entity,
	connections []common.Connection,
) ([]common.Entity, []common.Connection, error) {
	deduped, remapped, _, err := r.dedupe(entities, connections)
	return deduped, remapped, err
}

// DeduplicateWithGroups behaves like Deduplicate but also returns the
// duplicate groups that were merged, for review and audit tooling.
func (r *Resolver) DeduplicateWithGroups(
	entities []common.Entity,
	connections []common.Connection,
) ([]common.Entity, []common.Connection, [][]common.Entity, error) {
	return r.dedupe(entities, connections)
}

func (r *Resolver) dedupe(
	entities []common.Entity,
	connections []common.Connection,
) ([]common.Entity, []common.Connection, [][]common.Entity, error) {
	if len(entities) == 0 {
		return entities, connections, nil, nil
	}

	logger.Debug("[Dedupe] Deduplicating entities", "count", len(entities), "threshold", r.autoMergeThreshold)

	processed := make([]bool, len(entities))
	deduped := make([]common.Entity, 0, len(entities))
	aliases := make(map[string]string)
	var groups [][]common.Entity

	for i := range entities {
		if processed[i] {
			continue
		}
		processed[i] = true

		if !entities[i].Matchable() {
			deduped = append(deduped, entities[i])
			continue
		}

		group := []common.Entity{entities[i]}
		for j := i + 1; j < len(entities); j++ {
			if processed[j] || !entities[j].Matchable() {
				continue
			}
			result := match.Score(entities[i], entities[j])
			if result.Confidence >= r.autoMergeThreshold {
				processed[j] = true
				group = append(group, entities[j])
			}
		}

		if len(group) == 1 {
			deduped = append(deduped, entities[i])
			continue
		}

		merged, err := mergeGroup(group)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to merge duplicate group: %w", err)
		}

		for _, member := range group {
			for _, name := range []string{member.Name, member.Label} {
				if name != "" && name != merged.Name {
					aliases[name] = merged.Name
				}
			}
		}

		groups = append(groups, group)
		deduped = append(deduped, merged)
	}

	if len(groups) > 0 {
		logger.Debug("[Dedupe] Merged duplicate groups", "groups", len(groups), "before", len(entities), "after", len(deduped))
	}

	return deduped, remapConnections(connections, aliases), groups, nil
}

// remapConnections rewrites connection endpoints onto canonical entity
// names. Connections that collapse into self-loops are dropped; duplicate
// undirected connections with the same relation are folded together with
// averaged confidence.
func remapConnections(connections []common.Connection, aliases map[string]string) []common.Connection {
	if len(connections) == 0 {
		return connections
	}

	resolveName := func(name string) string {
		if canonical, ok := aliases[name]; ok {
			return canonical
		}
		return name
	}

	remapped := make([]common.Connection, 0, len(connections))
	seen := make(map[string]int)

	for _, conn := range connections {
		conn.Source = resolveName(conn.Source)
		conn.Target = resolveName(conn.Target)
		if conn.Source == conn.Target {
			continue
		}

		a, b := conn.Source, conn.Target
		if b < a {
			a, b = b, a
		}
		key := a + "|" + b + "|" + conn.Relation

		if idx, ok := seen[key]; ok {
			remapped[idx].Confidence = (remapped[idx].Confidence + conn.Confidence) / 2
			continue
		}
		seen[key] = len(remapped)
		remapped = append(remapped, conn)
	}

	return remapped
}
