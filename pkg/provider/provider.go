// Package provider defines the layout provider contract (spec.md §4.3)
// shared by the layered engine and every auxiliary algorithm, plus the
// routing/sizing helpers common to all of them. Grounded on the common
// tail shared by every algorithm in
// _examples/original_source/pyelk/algorithms/*.py (each ends with a
// straight-line _route_edge and a compute-graph-size step).
package provider

import (
	"context"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
)

// Provider lays out the direct children (and edges) of a single
// container. On return, every direct child has x/y/width/height set and
// every edge in container.Edges has a Sections list of length >= 1;
// container.Width/Height enclose all children plus right/bottom padding
// (spec.md §4.3).
type Provider interface {
	Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error
}

// NodeIndex maps a node/port id to its owning container, for edges whose
// endpoints are either node or port ids.
func NodeIndex(container *elkgraph.Container) map[string]*elkgraph.Container {
	idx := make(map[string]*elkgraph.Container, len(container.Children))
	for _, child := range container.Children {
		idx[child.ID] = child
		for _, port := range child.Ports {
			idx[port.ID] = child
		}
	}
	return idx
}

// EndpointIDs returns the first source id and first target id of an edge,
// tolerating either the normalized (sources/targets) or primitive
// (source/target) form.
func EndpointIDs(edge *elkgraph.Edge) (src, tgt string, ok bool) {
	sources := edge.Sources
	if len(sources) == 0 && edge.Source != "" {
		sources = []string{edge.Source}
	}
	targets := edge.Targets
	if len(targets) == 0 && edge.Target != "" {
		targets = []string{edge.Target}
	}
	if len(sources) == 0 || len(targets) == 0 {
		return "", "", false
	}
	return sources[0], targets[0], true
}

// RouteStraightEdges routes every edge in container.Edges that has no
// sections yet as a single center-to-center segment between its resolved
// endpoints, as every auxiliary provider in the pack does for its
// fallback routing.
func RouteStraightEdges(container *elkgraph.Container) {
	idx := NodeIndex(container)
	for _, edge := range container.Edges {
		if len(edge.Sections) > 0 {
			continue
		}
		srcID, tgtID, ok := EndpointIDs(edge)
		if !ok {
			continue
		}
		src, tgtOK := idx[srcID]
		tgt, srcOK := idx[tgtID]
		if !tgtOK || !srcOK || src == nil || tgt == nil {
			continue
		}
		sx := src.X + src.Width/2
		sy := src.Y + src.Height/2
		tx := tgt.X + tgt.Width/2
		ty := tgt.Y + tgt.Height/2
		edge.Sections = []elkgraph.Section{{
			ID:         edge.ID + "_s0",
			StartPoint: elkgraph.Point{X: sx, Y: sy},
			EndPoint:   elkgraph.Point{X: tx, Y: ty},
		}}
	}
}

// FinalizeSize computes container.Width/Height as the bounding box of all
// direct children plus right/bottom padding, the shared tail of every
// provider's layout pass (spec.md §4.3).
func FinalizeSize(container *elkgraph.Container, padding options.Padding) {
	if len(container.Children) == 0 {
		container.Width = padding.Left + padding.Right
		container.Height = padding.Top + padding.Bottom
		return
	}
	var maxX, maxY float64
	for _, child := range container.Children {
		if cx := child.X + child.Width; cx > maxX {
			maxX = cx
		}
		if cy := child.Y + child.Height; cy > maxY {
			maxY = cy
		}
	}
	container.Width = maxX + padding.Right
	container.Height = maxY + padding.Bottom
}

// EffectivePadding resolves the padding option for a container, falling
// back silently to the zero Padding on a parse error; a malformed padding
// string is not reported as an error.
func EffectivePadding(container *elkgraph.Container, global map[string]interface{}) options.Padding {
	p, err := options.GetPadding(container, global)
	if err != nil {
		return options.Padding{}
	}
	return p
}
