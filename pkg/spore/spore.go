// Package spore implements the SPOrE overlap-removal and compaction
// layouts: nodes are sorted by distance from the centroid of the current
// arrangement and placed, closest first, along their original ray from
// the centroid at the minimum distance that clears every already-placed
// node. Grounded on
// _examples/original_source/pyelk/algorithms/spore.py's
// SporeCompactionProvider/SporeOverlapProvider (both delegate to the same
// _spore_layout helper; in this engine they are one function invoked by
// two Provider types since neither varies the algorithm by
// is_compaction — the distinction in the pack is a naming one for two
// registry entries, not a behavioral one).
package spore

import (
	"context"
	"math"
	"sort"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// CompactionProvider compacts a graph toward its centroid while
// maintaining relative direction and minimum spacing.
type CompactionProvider struct{}

// NewCompaction returns a fresh SPOrE compaction Provider.
func NewCompaction() *CompactionProvider { return &CompactionProvider{} }

// Layout implements provider.Provider.
func (p *CompactionProvider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	return layout(ctx, container, global)
}

// OverlapProvider removes overlaps between nodes while preserving
// relative positions.
type OverlapProvider struct{}

// NewOverlap returns a fresh SPOrE overlap-removal Provider.
func NewOverlap() *OverlapProvider { return &OverlapProvider{} }

// Layout implements provider.Provider.
func (p *OverlapProvider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	return layout(ctx, container, global)
}

type placedNode struct {
	node    *elkgraph.Container
	dx, dy  float64
}

func layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	children := container.Children
	if len(children) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	padding := provider.EffectivePadding(container, global)
	nodeSpacing := options.GetSpacing(container, "elk.spacing.nodeNode", global, 20.0)

	if len(children) == 1 {
		children[0].X, children[0].Y = padding.Left, padding.Top
		provider.RouteStraightEdges(container)
		provider.FinalizeSize(container, padding)
		return nil
	}

	n := float64(len(children))
	var cx, cy float64
	for _, c := range children {
		cx += c.X + c.Width/2
		cy += c.Y + c.Height/2
	}
	cx /= n
	cy /= n

	type info struct {
		node     *elkgraph.Container
		dx, dy   float64
		distance float64
	}
	infos := make([]info, len(children))
	for i, c := range children {
		ncx := c.X + c.Width/2
		ncy := c.Y + c.Height/2
		dx, dy := ncx-cx, ncy-cy
		dist := math.Hypot(dx, dy)
		if dist < 1e-10 {
			dx, dy, dist = 1.0, 0.0, 1.0
		} else {
			dx /= dist
			dy /= dist
		}
		infos[i] = info{c, dx, dy, dist}
	}
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].distance < infos[j].distance })

	var placed []placedNode
	for _, it := range infos {
		if len(placed) == 0 {
			it.node.X, it.node.Y = 0, 0
			placed = append(placed, placedNode{it.node, 0, 0})
			continue
		}
		maxT := 0.0
		for _, pl := range placed {
			if t := minClearDistance(pl.node, it.node, it.dx, it.dy, nodeSpacing); t > maxT {
				maxT = t
			}
		}
		it.node.X = maxT * it.dx
		it.node.Y = maxT * it.dy
		placed = append(placed, placedNode{it.node, it.node.X, it.node.Y})
	}

	minX, minY := children[0].X, children[0].Y
	for _, c := range children {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	for _, c := range children {
		c.X = c.X - minX + padding.Left
		c.Y = c.Y - minY + padding.Top
	}

	provider.RouteStraightEdges(container)
	provider.FinalizeSize(container, padding)
	return nil
}

// minClearDistance computes the minimum t > 0 such that placing newNode
// at t*(dx,dy) (relative to placedNode's own origin-relative frame)
// separates the two rectangles (including spacing) along at least one
// axis.
func minClearDistance(placed, newNode *elkgraph.Container, dx, dy, spacing float64) float64 {
	pw, ph := placed.Width, placed.Height
	nw, nh := newNode.Width, newNode.Height
	px, py := placed.X, placed.Y

	var candidates []float64
	const eps = 1e-10

	switch {
	case dx > eps:
		candidates = append(candidates, (px+pw+spacing)/dx)
	case dx < -eps:
		candidates = append(candidates, (px-nw-spacing)/dx)
	}
	switch {
	case dy > eps:
		candidates = append(candidates, (py+ph+spacing)/dy)
	case dy < -eps:
		candidates = append(candidates, (py-nh-spacing)/dy)
	}

	min := 0.0
	found := false
	for _, t := range candidates {
		if t > 0 && (!found || t < min) {
			min = t
			found = true
		}
	}
	return min
}
