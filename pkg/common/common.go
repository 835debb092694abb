package common

// Known entity sources, in merge-priority order. When entities from several
// sources are merged into one canonical entity, name and description are
// taken from the highest-priority source that provides them.
const (
	SourceWikidata  = "wikidata"
	SourceDBpedia   = "dbpedia"
	SourceWikipedia = "wikipedia"
)

// DefaultConfidence is assumed for entities that carry no confidence value.
const DefaultConfidence = 0.75

// Entity is a candidate real-world thing discovered from one source.
// Entities from independent sources may denote the same thing; the resolve
// package decides that and folds them into a single canonical entity.
//
// Name or Label must be non-empty for an entity to take part in matching.
// Entities lacking both are passed through deduplication untouched.
type Entity struct {
	ID            string              `json:"id,omitempty"`
	Name          string              `json:"name"`
	Label         string              `json:"label,omitempty"`
	Description   string              `json:"description,omitempty"`
	URI           string              `json:"uri,omitempty"`
	ExternalLinks []string            `json:"external_links,omitempty"`
	SameAsLinks   []string            `json:"same_as_links,omitempty"`
	Source        string              `json:"source,omitempty"`
	Sources       []string            `json:"sources,omitempty"`
	Types         []string            `json:"types,omitempty"`
	Properties    map[string][]string `json:"properties,omitempty"`
	Confidence    float64             `json:"confidence,omitempty"`
	Level         int                 `json:"level,omitempty"`
	IsRoot        bool                `json:"is_root,omitempty"`
	MergedFrom    []string            `json:"merged_from,omitempty"`
}

// DisplayName returns the entity's name, falling back to its label.
func (e Entity) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Label
}

// Matchable reports whether the entity carries enough naming information to
// take part in matching and deduplication.
func (e Entity) Matchable() bool {
	return e.DisplayName() != ""
}

// EffectiveConfidence returns the entity's confidence, substituting
// DefaultConfidence when no positive value is present.
func (e Entity) EffectiveConfidence() float64 {
	if e.Confidence > 0 {
		return e.Confidence
	}
	return DefaultConfidence
}

// Connection is a discovered relationship between two entities, referenced
// by name. Connections whose endpoints cannot be resolved against the
// positioned entities are dropped during routing, never treated as errors.
type Connection struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Relation   string  `json:"relation,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// DiscoveryResult is the raw output of the discovery collaborator: the
// entities found around a focal entity plus the relationships between them.
type DiscoveryResult struct {
	Entities    []Entity     `json:"entities"`
	Connections []Connection `json:"connections"`
}

// Dimensions is the estimated on-screen footprint of a node.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OrbitPosition is the placement record for one entity on a circular orbit
// around the focal entity.
//
// X and Y are always derived from Angle and Radius (x = r*cos a,
// y = r*sin a); whenever the angle changes both are recomputed together.
// OrbitIndex is fractional for sub-orbits produced by overflow subdivision
// (2.1, 2.2, ...), and 0 for the central entity.
type OrbitPosition struct {
	Entity      Entity     `json:"entity"`
	Angle       float64    `json:"angle"`
	Radius      float64    `json:"radius"`
	OrbitIndex  float64    `json:"orbit_index"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Dimensions  Dimensions `json:"dimensions"`
	HasOverflow bool       `json:"has_overflow,omitempty"`
}

// Path kinds emitted by the connection router.
const (
	PathLine      = "line"
	PathQuadratic = "quadratic"
)

// Path is a renderable connection path: either a straight segment or a
// quadratic curve with a single control point.
type Path struct {
	Kind string  `json:"kind"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	CX   float64 `json:"cx,omitempty"`
	CY   float64 `json:"cy,omitempty"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// ConnectionRoute is one renderable edge between two positioned entities.
type ConnectionRoute struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Relation   string  `json:"relation,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Path       Path    `json:"path"`
}

// LayoutStats summarizes a computed layout.
type LayoutStats struct {
	TotalNodes       int  `json:"total_nodes"`
	TotalConnections int  `json:"total_connections"`
	OrbitCount       int  `json:"orbit_count"`
	HasOverflow      bool `json:"has_overflow"`
}

// LayoutResult is the final output handed to the rendering collaborator:
// the central position, every positioned orbit node, the routed
// connections, and summary statistics.
type LayoutResult struct {
	Central     OrbitPosition     `json:"central"`
	Nodes       []OrbitPosition   `json:"nodes"`
	Connections []ConnectionRoute `json:"connections"`
	Stats       LayoutStats       `json:"stats"`
}
