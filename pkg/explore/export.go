package explore

import (
	"github.com/OFFIS-RIT/orbit/pkg/common"
)

// FlatNode is one node of the generic visualization export: a flat record
// with group and level tags plus the computed position.
type FlatNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Group string  `json:"group"`
	Level int     `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// FlatEdge is one edge of the generic visualization export, weighted by the
// connection's confidence.
type FlatEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight"`
}

// FlatGraph is a layout flattened into the node/edge form most graph
// visualization tooling accepts.
type FlatGraph struct {
	Nodes []FlatNode `json:"nodes"`
	Edges []FlatEdge `json:"edges"`
}

// ExportFlatGraph flattens a layout into a generic node/edge graph. The
// central entity becomes a level-0 node; orbit nodes carry the whole orbit
// index they sit on (sub-orbits floor to their base orbit).
func ExportFlatGraph(result common.LayoutResult) FlatGraph {
	nodes := make([]FlatNode, 0, len(result.Nodes)+1)
	nodes = append(nodes, flatNode(result.Central))
	for _, position := range result.Nodes {
		nodes = append(nodes, flatNode(position))
	}

	edges := make([]FlatEdge, 0, len(result.Connections))
	for _, route := range result.Connections {
		edges = append(edges, FlatEdge{
			Source: route.Source,
			Target: route.Target,
			Label:  route.Relation,
			Weight: route.Confidence,
		})
	}

	return FlatGraph{Nodes: nodes, Edges: edges}
}

func flatNode(position common.OrbitPosition) FlatNode {
	id := position.Entity.ID
	if id == "" {
		id = position.Entity.DisplayName()
	}
	group := position.Entity.Source
	if group == "" {
		group = "unknown"
	}
	return FlatNode{
		ID:    id,
		Label: position.Entity.DisplayName(),
		Group: group,
		Level: int(position.OrbitIndex),
		X:     position.X,
		Y:     position.Y,
	}
}
