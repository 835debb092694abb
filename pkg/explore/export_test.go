package explore

import (
	"testing"

	"github.com/OFFIS-RIT/orbit/pkg/common"
)

func TestExportFlatGraph(t *testing.T) {
	layout := common.LayoutResult{
		Central: common.OrbitPosition{
			Entity: common.Entity{ID: "q1", Name: "Mario", Source: common.SourceWikidata},
		},
		Nodes: []common.OrbitPosition{
			{
				Entity:     common.Entity{Name: "Nintendo", Source: common.SourceDBpedia},
				OrbitIndex: 1,
				X:          200,
				Y:          0,
			},
			{
				Entity:     common.Entity{Label: "Sub-orbit node"},
				OrbitIndex: 2.1,
				X:          -170,
				Y:          10,
			},
		},
		Connections: []common.ConnectionRoute{
			{Source: "Mario", Target: "Nintendo", Relation: "developer", Confidence: 0.9},
		},
	}

	graph := ExportFlatGraph(layout)

	if len(graph.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(graph.Nodes))
	}

	central := graph.Nodes[0]
	if central.ID != "q1" || central.Label != "Mario" || central.Level != 0 {
		t.Fatalf("central export wrong: %+v", central)
	}
	if central.Group != common.SourceWikidata {
		t.Fatalf("central group = %q, want %q", central.Group, common.SourceWikidata)
	}

	orbit := graph.Nodes[1]
	if orbit.ID != "Nintendo" || orbit.Level != 1 || orbit.X != 200 {
		t.Fatalf("orbit export wrong: %+v", orbit)
	}

	sub := graph.Nodes[2]
	if sub.Level != 2 {
		t.Fatalf("sub-orbit level = %d, want floored 2", sub.Level)
	}
	if sub.Group != "unknown" {
		t.Fatalf("sourceless node group = %q, want unknown", sub.Group)
	}
	if sub.Label != "Sub-orbit node" {
		t.Fatalf("label-only node export wrong: %+v", sub)
	}

	if len(graph.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(graph.Edges))
	}
	edge := graph.Edges[0]
	if edge.Source != "Mario" || edge.Target != "Nintendo" || edge.Label != "developer" || edge.Weight != 0.9 {
		t.Fatalf("edge export wrong: %+v", edge)
	}
}
