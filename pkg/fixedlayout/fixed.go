// Package fixedlayout implements the fixed layout algorithm: nodes keep
// their caller-supplied position (or the padding origin), and edges
// carrying an explicit bendPoints option get their sections from it
// verbatim. Grounded on
// _examples/original_source/pyelk/algorithms/fixed.py's
// FixedLayoutProvider.
package fixedlayout

import (
	"context"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// Provider places nodes at their specified position option, or the
// padding origin when absent.
type Provider struct{}

// New returns a fresh fixed layout Provider.
func New() *Provider { return &Provider{} }

// Layout implements provider.Provider.
func (p *Provider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	padding := provider.EffectivePadding(container, global)

	for _, child := range container.Children {
		if v := options.GetString(child, "position", ""); v != "" {
			if vec, err := options.ParseVector(v); err == nil {
				child.X, child.Y = vec.X, vec.Y
				continue
			}
		}
		if child.X == 0 {
			child.X = padding.Left
		}
		if child.Y == 0 {
			child.Y = padding.Top
		}
	}

	for _, edge := range container.Edges {
		bp := options.GetString(edge, "bendPoints", "")
		if bp == "" {
			continue
		}
		points, err := options.ParseVectorChain(bp)
		if err != nil || len(points) < 2 {
			continue
		}
		section := elkgraph.Section{
			ID:         edge.ID + "_s0",
			StartPoint: elkgraph.Point{X: points[0].X, Y: points[0].Y},
			EndPoint:   elkgraph.Point{X: points[len(points)-1].X, Y: points[len(points)-1].Y},
		}
		for _, v := range points[1 : len(points)-1] {
			section.BendPoints = append(section.BendPoints, elkgraph.Point{X: v.X, Y: v.Y})
		}
		edge.Sections = []elkgraph.Section{section}
	}

	provider.RouteStraightEdges(container)
	provider.FinalizeSize(container, padding)
	return nil
}
