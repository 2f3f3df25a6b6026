// Package validate implements the graph validator and edge normalizer
// (spec.md §4.2), grounded on _examples/original_source/pyelk/graph.py's
// validate_graph/normalize_edges, and on the structural-check style of
// _examples/barnkob-dsl-diagram-tool/pkg/ir/validation.go. Validation
// returns the first failure it finds.
package validate

import (
	"github.com/mark/elkgo/pkg/elkerr"
	"github.com/mark/elkgo/pkg/elkgraph"
)

// Validate enforces spec.md §4.2's validate_graph: the root must carry a
// ("present") id field, and every element (recursively) that carries an id
// must have a valid one. Id coercion, and rejection of non-coercible ids,
// for JSON-decoded graphs already happened in elkgraph.Decode; Validate
// only enforces that the root id is non-empty. Its walk over the children
// rejects nothing: any child id string, including the empty one, passes,
// and port ids are not visited.
// Failures carry elkerr.InvalidGraph, per spec.md §7.
func Validate(root *elkgraph.Container) error {
	if root == nil {
		return elkerr.NewInvalidGraph("graph must not be nil")
	}
	if root.ID == "" {
		return elkerr.NewInvalidGraph("graph must have an id field")
	}
	return validateChildren(root)
}

func validateChildren(node *elkgraph.Container) error {
	for _, child := range node.Children {
		if err := validateChildren(child); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeEdges rewrites every edge's primitive source/target (plus
// optional sourcePort/targetPort) form into the sources/targets multiset
// form, recursively over the whole container tree. Extended-form edges
// (already carrying sources/targets) are left untouched. This must run
// before any layout phase (spec.md §3: "the normalizer rewrites these into
// the multiset form before anything else runs").
func NormalizeEdges(root *elkgraph.Container) {
	for _, edge := range root.Edges {
		normalizeEdge(edge)
	}
	for _, child := range root.Children {
		NormalizeEdges(child)
	}
}

func normalizeEdge(edge *elkgraph.Edge) {
	if len(edge.Sources) == 0 && edge.Source != "" {
		if edge.SourcePort != "" {
			edge.Sources = []string{edge.SourcePort}
		} else {
			edge.Sources = []string{edge.Source}
		}
	}
	if len(edge.Targets) == 0 && edge.Target != "" {
		if edge.TargetPort != "" {
			edge.Targets = []string{edge.TargetPort}
		} else {
			edge.Targets = []string{edge.Target}
		}
	}
}
