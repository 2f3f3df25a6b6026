// Package rectpack implements a shelf-based rectangle packing layout:
// children sorted tallest-first are packed into rows up to a target
// width derived from total area, wrapping to a new row when a rectangle
// would overflow. Grounded on
// _examples/original_source/elkpy/algorithms/rectpacking.py's
// RectPackingProvider.
package rectpack

import (
	"context"
	"math"
	"sort"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// Provider packs the container's direct children into shelves.
type Provider struct{}

// New returns a fresh rectangle packing Provider.
func New() *Provider { return &Provider{} }

// Layout implements provider.Provider.
func (p *Provider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	children := container.Children
	if len(children) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	padding := provider.EffectivePadding(container, global)
	nodeSpacing := options.GetSpacing(container, "elk.spacing.nodeNode", global, 15.0)

	sorted := append([]*elkgraph.Container(nil), children...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Height > sorted[j].Height })

	totalArea := 0.0
	maxWidth := 0.0
	for _, c := range children {
		totalArea += (c.Width + nodeSpacing) * (c.Height + nodeSpacing)
		if c.Width > maxWidth {
			maxWidth = c.Width
		}
	}
	targetWidth := math.Max(math.Sqrt(totalArea), maxWidth+2*nodeSpacing)

	currentX := padding.Left
	rowStartY := padding.Top
	shelfHeight := 0.0

	for _, c := range sorted {
		if currentX+c.Width > targetWidth && currentX > padding.Left {
			currentX = padding.Left
			rowStartY += shelfHeight + nodeSpacing
			shelfHeight = 0.0
		}
		c.X, c.Y = currentX, rowStartY
		if c.Height > shelfHeight {
			shelfHeight = c.Height
		}
		currentX += c.Width + nodeSpacing
	}

	provider.RouteStraightEdges(container)
	provider.FinalizeSize(container, padding)
	return nil
}
