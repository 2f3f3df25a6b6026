// Package elk implements the top-level layout driver: argument
// validation, per-call option resolution, recursive hierarchical
// dispatch to a provider.Provider per container, and optional
// logging/timing collection. Grounded on
// _examples/original_source/elkpy/elk.py's ELK class, adapted to Go's
// explicit error returns and an options-pattern constructor in the style
// of _examples/barnkob-dsl-diagram-tool/pkg/server.Server's functional
// options.
package elk

import (
	"context"
	"sort"
	"time"

	"github.com/mark/elkgo/pkg/elkerr"
	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
	"github.com/mark/elkgo/pkg/registry"
	"github.com/mark/elkgo/pkg/validate"
)

// AlgorithmInfo describes one registered algorithm.
type AlgorithmInfo struct {
	ID string
}

// OptionInfo describes one known layout option and a rough value kind.
type OptionInfo struct {
	ID   string
	Kind string // "string", "number", "padding", "vector", "vector-chain"
}

// CategoryInfo groups related algorithm ids under a display name.
type CategoryInfo struct {
	Name       string
	Algorithms []string
}

// knownOptionKinds classifies every option in options.Defaults plus the
// structured-value options the store knows how to parse.
var knownOptionKinds = map[string]string{
	"elk.direction":       "string",
	"elk.padding":         "padding",
	"elk.spacing.nodeNode": "number",
	"elk.layered.spacing.nodeNodeBetweenLayers": "number",
	"elk.spacing.edgeNode":                      "number",
	"elk.spacing.edgeEdge":                      "number",
	"elk.layered.spacing.edgeNodeBetweenLayers":  "number",
	"elk.layered.spacing.edgeEdgeBetweenLayers":  "number",
	"elk.nodeLabels.placement":                   "string",
	"elk.portConstraints":                        "string",
	"elk.layered.crossingMinimization.strategy":  "string",
	"elk.layered.layering.strategy":               "string",
	"elk.hierarchyHandling":                       "string",
	"elk.layered.layering.layerConstraint":        "string",
	"elk.algorithm":                               "string",
	"position":                                    "vector",
	"bendPoints":                                   "vector-chain",
}

var categories = []CategoryInfo{
	{Name: "Layered", Algorithms: []string{"org.eclipse.elk.layered"}},
	{Name: "Force", Algorithms: []string{"org.eclipse.elk.force", "org.eclipse.elk.stress"}},
	{Name: "Tree", Algorithms: []string{"org.eclipse.elk.mrtree", "org.eclipse.elk.radial"}},
	{Name: "Packing", Algorithms: []string{"org.eclipse.elk.rectpacking", "org.eclipse.elk.sporeCompaction", "org.eclipse.elk.sporeOverlap"}},
	{Name: "Fixed", Algorithms: []string{"org.eclipse.elk.fixed"}},
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithDefaultLayoutOptions seeds the driver's baseline option map,
// merged under any per-call layoutOptions (per-call wins).
func WithDefaultLayoutOptions(defaults map[string]interface{}) Option {
	return func(d *Driver) {
		for k, v := range defaults {
			d.defaultLayoutOptions[k] = v
		}
	}
}

// WithAlgorithms records an informational list of algorithm ids the
// caller intends to use. It does not restrict dispatch — algorithm
// resolution and provider lookup are unaffected — it only changes what
// KnownAlgorithms reports first.
func WithAlgorithms(ids []string) Option {
	return func(d *Driver) { d.preferredAlgorithms = ids }
}

// Driver is the top-level entry point: construct one with New, then call
// Layout.
type Driver struct {
	registry             *registry.Registry
	defaultLayoutOptions map[string]interface{}
	preferredAlgorithms  []string
}

// New builds a Driver with the builtin provider registry and, by
// default, no baseline layout options.
func New(opts ...Option) *Driver {
	d := &Driver{
		registry:             registry.New(),
		defaultLayoutOptions: map[string]interface{}{},
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Layout runs the full driver pipeline over graph (spec.md §4.4):
// argument check, logging reset, validation, normalization, recursive
// per-container dispatch, and optional logging/timing attachment.
func (d *Driver) Layout(ctx context.Context, graph *elkgraph.Container, layoutOptions map[string]interface{}, logging, measureExecutionTime bool) (*elkgraph.Container, error) {
	if graph == nil {
		return nil, elkerr.NewMissingArgument("graph argument is required")
	}

	graph.Logging = nil

	var start time.Time
	if measureExecutionTime {
		start = time.Now()
	}

	if err := validate.Validate(graph); err != nil {
		return nil, err
	}
	validate.NormalizeEdges(graph)

	global := make(map[string]interface{}, len(d.defaultLayoutOptions)+len(layoutOptions))
	for k, v := range d.defaultLayoutOptions {
		global[k] = v
	}
	for k, v := range layoutOptions {
		global[k] = v
	}

	var root *elkgraph.LogNode
	if logging || measureExecutionTime {
		root = &elkgraph.LogNode{Name: "layout"}
	}

	if err := d.layoutRecursive(ctx, graph, global, nil, root); err != nil {
		return nil, err
	}

	if root != nil {
		if measureExecutionTime {
			elapsed := float64(time.Since(start)) / float64(time.Millisecond)
			root.ExecutionTime = &elapsed
		}
		graph.Logging = root
	}

	return graph, nil
}

func (d *Driver) layoutRecursive(ctx context.Context, c *elkgraph.Container, global, parentEffective map[string]interface{}, logNode *elkgraph.LogNode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	effective := options.EffectiveOptions(c, global, parentEffective)

	hierarchyHandling := options.GetString(c, "elk.hierarchyHandling", "")
	if hierarchyHandling == "" {
		if v, ok := effective["elk.hierarchyHandling"]; ok {
			hierarchyHandling, _ = v.(string)
		}
	}
	if hierarchyHandling == "" {
		hierarchyHandling = "SEPARATE_CHILDREN"
	}

	if hierarchyHandling == "SEPARATE_CHILDREN" {
		if err := checkSeparateChildren(c); err != nil {
			return err
		}
		for _, child := range c.Children {
			if child.IsHierarchical() {
				childLog := childLogNode(logNode, child)
				if err := d.layoutRecursive(ctx, child, global, effective, childLog); err != nil {
					return err
				}
			}
		}
	}

	algID := options.GetAlgorithm(c, effective)
	prov, ok := d.registry.Get(algID)
	if !ok {
		return elkerr.NewUnsupportedConfiguration("Unknown layout algorithm: " + algID)
	}

	if logNode != nil {
		logNode.Children = append(logNode.Children, &elkgraph.LogNode{Name: algID + " on " + c.ID})
	}

	if err := prov.Layout(ctx, c, effective); err != nil {
		return err
	}

	if hierarchyHandling == "INCLUDE_CHILDREN" {
		return d.layoutIncludeChildren(ctx, c, global, effective)
	}

	return nil
}

// layoutIncludeChildren re-runs the parent's provider over every
// descendant container that has children, then routes any edge
// referencing that descendant (or its ports) with a straight
// center-to-center segment, recursing into grandchildren (spec.md
// §4.4.g).
func (d *Driver) layoutIncludeChildren(ctx context.Context, c *elkgraph.Container, global, effective map[string]interface{}) error {
	for _, child := range c.Children {
		if !child.IsHierarchical() {
			continue
		}
		algID := options.GetAlgorithm(child, effective)
		prov, ok := d.registry.Get(algID)
		if !ok {
			return elkerr.NewUnsupportedConfiguration("Unknown layout algorithm: " + algID)
		}
		childEffective := options.EffectiveOptions(child, global, effective)
		if err := prov.Layout(ctx, child, childEffective); err != nil {
			return err
		}

		routeContainerEdges(c, child)

		if err := d.layoutIncludeChildren(ctx, child, global, childEffective); err != nil {
			return err
		}
	}
	return nil
}

func routeContainerEdges(parent, descendant *elkgraph.Container) {
	ids := map[string]bool{descendant.ID: true}
	for _, p := range descendant.Ports {
		ids[p.ID] = true
	}
	for _, e := range allEdges(parent) {
		if len(e.Sections) > 0 {
			continue
		}
		src, tgt, ok := provider.EndpointIDs(e)
		if !ok {
			continue
		}
		if !ids[src] && !ids[tgt] {
			continue
		}
		sx, sy, sOK := centerOf(parent, src)
		tx, ty, tOK := centerOf(parent, tgt)
		if !sOK || !tOK {
			continue
		}
		e.Sections = []elkgraph.Section{{
			ID:         e.ID + "_s0",
			StartPoint: elkgraph.Point{X: sx, Y: sy},
			EndPoint:   elkgraph.Point{X: tx, Y: ty},
		}}
	}
}

func allEdges(c *elkgraph.Container) []*elkgraph.Edge {
	var edges []*elkgraph.Edge
	edges = append(edges, c.Edges...)
	for _, child := range c.Children {
		edges = append(edges, allEdges(child)...)
	}
	return edges
}

func centerOf(root *elkgraph.Container, id string) (x, y float64, ok bool) {
	var found *elkgraph.Container
	var search func(c *elkgraph.Container)
	search = func(c *elkgraph.Container) {
		if found != nil {
			return
		}
		if c.ID == id {
			found = c
			return
		}
		for _, p := range c.Ports {
			if p.ID == id {
				found = c
				return
			}
		}
		for _, child := range c.Children {
			search(child)
		}
	}
	search(root)
	if found == nil {
		return 0, 0, false
	}
	return found.X + found.Width/2, found.Y + found.Height/2, true
}

// checkSeparateChildren enforces spec.md §4.4.c: no edge inside any
// direct child of c may reference that child's own id,
// or any id outside its descendants (descendants include
// grandchildren-and-deeper plus ports of any descendant, plus the
// subcontainer's own ports).
func checkSeparateChildren(c *elkgraph.Container) error {
	for _, child := range c.Children {
		allowed := map[string]bool{}
		for _, p := range child.Ports {
			allowed[p.ID] = true
		}
		for _, grandchild := range child.Children {
			collectDescendantIDsInclusive(grandchild, allowed)
		}

		for _, e := range child.Edges {
			src, tgt, ok := provider.EndpointIDs(e)
			if !ok {
				continue
			}
			if src == child.ID || !allowed[src] {
				return elkerr.NewUnsupportedGraph("Edge references an id outside its container's scope: " + src)
			}
			if tgt == child.ID || !allowed[tgt] {
				return elkerr.NewUnsupportedGraph("Edge references an id outside its container's scope: " + tgt)
			}
		}
	}
	return nil
}

// collectDescendantIDsInclusive adds node's own id, its ports' ids, and
// recurses into its children — mirroring
// _examples/original_source/elkpy/elk.py's _collect_descendant_ids,
// which (unlike its name suggests) includes the node passed to it.
func collectDescendantIDsInclusive(node *elkgraph.Container, into map[string]bool) {
	into[node.ID] = true
	for _, p := range node.Ports {
		into[p.ID] = true
	}
	for _, child := range node.Children {
		collectDescendantIDsInclusive(child, into)
	}
}

func childLogNode(parent *elkgraph.LogNode, child *elkgraph.Container) *elkgraph.LogNode {
	if parent == nil {
		return nil
	}
	node := &elkgraph.LogNode{Name: "recurse into " + child.ID}
	parent.Children = append(parent.Children, node)
	return node
}

// KnownAlgorithms enumerates every algorithm id the registry knows,
// preferred ids (from WithAlgorithms) listed first.
func (d *Driver) KnownAlgorithms() []AlgorithmInfo {
	seen := map[string]bool{}
	var out []AlgorithmInfo
	for _, id := range d.preferredAlgorithms {
		resolved := options.ResolveAlgorithm(id)
		if !seen[resolved] {
			out = append(out, AlgorithmInfo{ID: resolved})
			seen[resolved] = true
		}
	}
	for _, id := range d.registry.Known() {
		if !seen[id] {
			out = append(out, AlgorithmInfo{ID: id})
			seen[id] = true
		}
	}
	return out
}

// KnownOptions enumerates every layout option this engine understands,
// sorted by id.
func (d *Driver) KnownOptions() []OptionInfo {
	ids := make([]string, 0, len(knownOptionKinds))
	for id := range knownOptionKinds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]OptionInfo, len(ids))
	for i, id := range ids {
		out[i] = OptionInfo{ID: id, Kind: knownOptionKinds[id]}
	}
	return out
}

// KnownCategories groups algorithms into display categories.
func (d *Driver) KnownCategories() []CategoryInfo {
	return categories
}
