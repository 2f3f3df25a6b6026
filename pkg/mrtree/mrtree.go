// Package mrtree implements a tree layout: each node's subtree occupies a
// contiguous band along the intra-layer axis, centered under its parent,
// with depth advancing along the layer axis. Grounded on
// _examples/original_source/pyelk/algorithms/mrtree.py's
// MrTreeLayoutProvider.
package mrtree

import (
	"context"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

// Provider lays out a forest rooted at every in-degree-zero node (falling
// back to the first child when every node has a parent, e.g. a cycle).
type Provider struct{}

// New returns a fresh tree layout Provider.
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
	nodeSpacing := options.GetSpacing(container, "elk.spacing.nodeNode", global, 20.0)
	layerSpacing := options.GetSpacing(container, "elk.layered.spacing.nodeNodeBetweenLayers", global, 20.0)
	direction := options.GetDirection(container, global)
	horizontal := direction == "LEFT" || direction == "RIGHT"

	n := len(children)
	idx := make(map[string]int, n)
	for i, c := range children {
		idx[c.ID] = i
	}

	childrenOf := make([][]int, n)
	hasParent := make([]bool, n)
	for _, e := range container.Edges {
		src, tgt, ok := provider.EndpointIDs(e)
		if !ok {
			continue
		}
		si, sOK := idx[src]
		ti, tOK := idx[tgt]
		if sOK && tOK && si != ti {
			childrenOf[si] = append(childrenOf[si], ti)
			hasParent[ti] = true
		}
	}

	var roots []int
	for i := 0; i < n; i++ {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	if len(roots) == 0 {
		roots = []int{0}
	}

	maxWidth, maxHeight := 0.0, 0.0
	for _, c := range children {
		if c.Width > maxWidth {
			maxWidth = c.Width
		}
		if c.Height > maxHeight {
			maxHeight = c.Height
		}
	}

	subtreeSize := make([]float64, n)
	onPath := make([]bool, n)
	var computeSubtree func(i, level int)
	computeSubtree = func(i, level int) {
		if onPath[i] {
			return
		}
		onPath[i] = true
		defer func() { onPath[i] = false }()
		kids := childrenOf[i]
		if len(kids) == 0 {
			if horizontal {
				subtreeSize[i] = children[i].Height
			} else {
				subtreeSize[i] = children[i].Width
			}
			return
		}
		total := 0.0
		for _, ci := range kids {
			computeSubtree(ci, level+1)
			total += subtreeSize[ci]
		}
		total += nodeSpacing * float64(len(kids)-1)

		own := children[i].Width
		if horizontal {
			own = children[i].Height
		}
		if total > own {
			subtreeSize[i] = total
		} else {
			subtreeSize[i] = own
		}
	}
	for _, r := range roots {
		computeSubtree(r, 0)
	}

	var placeNode func(i int, offset float64, depth int)
	placeNode = func(i int, offset float64, depth int) {
		if onPath[i] {
			return
		}
		onPath[i] = true
		defer func() { onPath[i] = false }()
		c := children[i]
		if horizontal {
			c.X = padding.Left + float64(depth)*(maxWidth+layerSpacing)
			c.Y = offset + (subtreeSize[i]-c.Height)/2
		} else {
			c.X = offset + (subtreeSize[i]-c.Width)/2
			c.Y = padding.Top + float64(depth)*(maxHeight+layerSpacing)
		}

		cur := offset
		for _, ci := range childrenOf[i] {
			placeNode(ci, cur, depth+1)
			cur += subtreeSize[ci] + nodeSpacing
		}
	}

	cur := padding.Top
	if !horizontal {
		cur = padding.Left
	}
	for _, r := range roots {
		placeNode(r, cur, 0)
		cur += subtreeSize[r] + nodeSpacing
	}

	provider.RouteStraightEdges(container)
	provider.FinalizeSize(container, padding)
	return nil
}
