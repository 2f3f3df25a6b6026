// Package radial implements radial layout: a BFS from the most-connected
// node groups nodes into concentric rings by graph distance, and each
// ring distributes its nodes evenly by polar angle. Grounded on
// _examples/original_source/elkpy/algorithms/radial.py's
// RadialLayoutProvider.
package radial

import (
	"context"
	"math"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// Provider lays out the container's direct children in concentric rings.
type Provider struct{}

// New returns a fresh radial layout Provider.
func New() *Provider { return &Provider{} }

// Layout implements provider.Provider.
func (p *Provider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	children := container.Children
	n := len(children)
	if n == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	padding := provider.EffectivePadding(container, global)
	nodeSpacing := options.GetSpacing(container, "elk.spacing.nodeNode", global, 50.0)

	idx := make(map[string]int, n)
	for i, c := range children {
		idx[c.ID] = i
	}
	adj := make([][]int, n)
	for _, e := range container.Edges {
		src, tgt, ok := provider.EndpointIDs(e)
		if !ok {
			continue
		}
		si, sOK := idx[src]
		ti, tOK := idx[tgt]
		if sOK && tOK && si != ti {
			adj[si] = append(adj[si], ti)
			adj[ti] = append(adj[ti], si)
		}
	}

	root := 0
	for i := 1; i < n; i++ {
		if len(adj[i]) > len(adj[root]) {
			root = i
		}
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[root] = 0
	queue := []int{root}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range adj[u] {
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	maxKnown := 0
	for _, d := range dist {
		if d > maxKnown {
			maxKnown = d
		}
	}
	for i, d := range dist {
		if d == -1 {
			dist[i] = maxKnown + 1
		}
	}

	maxLevel := 0
	for _, d := range dist {
		if d > maxLevel {
			maxLevel = d
		}
	}
	levels := make([][]int, maxLevel+1)
	for i, d := range dist {
		levels[d] = append(levels[d], i)
	}

	radiusStep := nodeSpacing * 2

	for level, atLevel := range levels {
		if level == 0 {
			for _, i := range atLevel {
				children[i].X, children[i].Y = 0, 0
			}
			continue
		}
		radius := float64(level) * radiusStep
		count := len(atLevel)
		for j, i := range atLevel {
			angle := 2 * math.Pi * float64(j) / float64(count)
			children[i].X = radius * math.Cos(angle)
			children[i].Y = radius * math.Sin(angle)
		}
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
