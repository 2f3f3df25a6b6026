// Package layered implements the layered (Sugiyama-style) layout engine —
// the core of the engine (spec.md §4.5), grounded on
// _examples/original_source/pyelk/algorithms/layered/layered.py's
// LayeredLayoutProvider, translated phase-by-phase into Go with a flat
// pointer-linked internal graph (lnode/lport/ledge) in place of Python's
// dynamically-typed mappings, matching the style of
// _examples/barnkob-dsl-diagram-tool/pkg/layout's small single-purpose
// pass functions chained by a top-level Layout method.
package layered

import (
	"context"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// Provider is the layered engine's provider.Provider implementation.
type Provider struct{}

// New returns a fresh layered layout Provider.
func New() *Provider { return &Provider{} }

// Layout runs all ten phases over container's direct children and edges,
// writing positions, sizes, and edge sections back in place.
func (p *Provider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	nodes, edges, _, _ := build(container)

	if err := checkFirstConstraintCycle(nodes); err != nil {
		return err
	}

	breakCycles(nodes)

	strategy := options.GetString(container, "elk.layered.layering.strategy", "LONGEST_PATH")
	assignLayers(nodes, strategy)

	insertDummyNodes(&nodes, edges)
	layers := organizeLayers(nodes)

	minimizeCrossings(layers)

	direction := options.GetDirection(container, global)
	horizontal := direction == "LEFT" || direction == "RIGHT"

	nodeSpacing := options.GetSpacing(container, "elk.spacing.nodeNode", global, 20)
	layerSpacing := options.GetSpacing(container, "elk.layered.spacing.nodeNodeBetweenLayers", global, 20)
	padding, err := options.GetPadding(container, global)
	if err != nil {
		padding = options.Padding{}
	}

	placeNodes(layers, nodeSpacing, layerSpacing, padding, horizontal)

	placePorts(nodes)
	writeBackPorts(nodes)

	routeEdges(edges, horizontal, direction)

	placeLabels(nodes, global)

	writeBack(container, nodes, edges, padding)

	provider.RouteStraightEdges(container)

	return nil
}
