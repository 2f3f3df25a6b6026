// Package elkgraph defines the in-memory graph description that layout
// providers read and mutate: containers (nodes that may themselves carry
// children), ports, labels, and edges. It mirrors the external graph
// description contract from spec.md §3 and §6: a tree of containers with
// ids, optional children/edges/ports/labels, optional size and layout
// options, and computed x/y written back by a provider.
package elkgraph

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Section is a serialized polyline segment of a routed edge.
type Section struct {
	ID         string  `json:"id,omitempty"`
	StartPoint Point   `json:"startPoint"`
	EndPoint   Point   `json:"endPoint"`
	BendPoints []Point `json:"bendPoints,omitempty"`
}

// Side is the side of a node a port sits on.
type Side string

const (
	SideNorth     Side = "NORTH"
	SideSouth     Side = "SOUTH"
	SideEast      Side = "EAST"
	SideWest      Side = "WEST"
	SideUndefined Side = "UNDEFINED"
)

// LayerConstraint pins a node to the first or last layer of a layered
// layout (spec.md §4.5 Phase 3).
type LayerConstraint string

const (
	LayerConstraintNone  LayerConstraint = ""
	LayerConstraintFirst LayerConstraint = "FIRST"
	LayerConstraintLast  LayerConstraint = "LAST"
)

// Port is a named attachment point on a container, as seen by the
// container's parent. An edge endpoint may reference a port id instead of
// a node id.
type Port struct {
	ID            string                 `json:"id"`
	Width         float64                `json:"width,omitempty"`
	Height        float64                `json:"height,omitempty"`
	X             float64                `json:"x,omitempty"`
	Y             float64                `json:"y,omitempty"`
	LayoutOptions map[string]interface{} `json:"layoutOptions,omitempty"`
	Properties    map[string]interface{} `json:"properties,omitempty"`
}

// GetLayoutOptions implements options.OptionHolder.
func (p *Port) GetLayoutOptions() map[string]interface{} { return p.LayoutOptions }

// GetProperties implements options.OptionHolder.
func (p *Port) GetProperties() map[string]interface{} { return p.Properties }

// Label is a text label attached to a node, port, or edge.
type Label struct {
	ID            string                 `json:"id,omitempty"`
	Text          string                 `json:"text,omitempty"`
	Width         float64                `json:"width,omitempty"`
	Height        float64                `json:"height,omitempty"`
	X             float64                `json:"x,omitempty"`
	Y             float64                `json:"y,omitempty"`
	LayoutOptions map[string]interface{} `json:"layoutOptions,omitempty"`
	Properties    map[string]interface{} `json:"properties,omitempty"`
}

// GetLayoutOptions implements options.OptionHolder.
func (l *Label) GetLayoutOptions() map[string]interface{} { return l.LayoutOptions }

// GetProperties implements options.OptionHolder.
func (l *Label) GetProperties() map[string]interface{} { return l.Properties }

// Edge connects a multiset of source endpoints to a multiset of target
// endpoints, each an id referencing either a node or a port. Source/Target
// (plus SourcePort/TargetPort) are the accepted primitive form; normalize
// rewrites them into Sources/Targets before any layout phase runs.
type Edge struct {
	ID         string   `json:"id"`
	Sources    []string `json:"sources,omitempty"`
	Targets    []string `json:"targets,omitempty"`
	Source     string   `json:"source,omitempty"`
	Target     string   `json:"target,omitempty"`
	SourcePort string   `json:"sourcePort,omitempty"`
	TargetPort string   `json:"targetPort,omitempty"`

	Labels        []*Label               `json:"labels,omitempty"`
	Sections      []Section              `json:"sections,omitempty"`
	LayoutOptions map[string]interface{} `json:"layoutOptions,omitempty"`
	Properties    map[string]interface{} `json:"properties,omitempty"`
}

// GetLayoutOptions implements options.OptionHolder.
func (e *Edge) GetLayoutOptions() map[string]interface{} { return e.LayoutOptions }

// GetProperties implements options.OptionHolder.
func (e *Edge) GetProperties() map[string]interface{} { return e.Properties }

// HasPrimitiveEndpoints reports whether the edge still carries the
// singular source/target form (pre-normalization).
func (e *Edge) HasPrimitiveEndpoints() bool {
	return len(e.Sources) == 0 && len(e.Targets) == 0 && (e.Source != "" || e.Target != "")
}

// LogNode is one entry of the logging tree optionally attached to the
// root container by a Layout call (spec.md §4.4 step 7).
type LogNode struct {
	Name          string     `json:"name"`
	Children      []*LogNode `json:"children"`
	ExecutionTime *float64   `json:"executionTime,omitempty"`
}

// Container is a node in the graph tree: it carries geometry, optional
// children (making it hierarchical), edges scoped to itself, ports as seen
// by its parent, and labels.
type Container struct {
	ID       string       `json:"id"`
	Children []*Container `json:"children,omitempty"`
	Edges    []*Edge      `json:"edges,omitempty"`
	Ports    []*Port      `json:"ports,omitempty"`
	Labels   []*Label     `json:"labels,omitempty"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`

	LayerConstraint LayerConstraint        `json:"-"`
	LayoutOptions   map[string]interface{} `json:"layoutOptions,omitempty"`
	Properties      map[string]interface{} `json:"properties,omitempty"`

	Logging *LogNode `json:"logging,omitempty"`
}

// GetLayoutOptions implements options.OptionHolder.
func (c *Container) GetLayoutOptions() map[string]interface{} { return c.LayoutOptions }

// GetProperties implements options.OptionHolder.
func (c *Container) GetProperties() map[string]interface{} { return c.Properties }

// IsHierarchical reports whether this container has its own children.
func (c *Container) IsHierarchical() bool { return len(c.Children) > 0 }
