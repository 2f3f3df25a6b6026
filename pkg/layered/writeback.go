package layered

import (
	"fmt"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
)

// writeBack implements Phase 10: non-dummy node coordinates and each
// edge's single section (with bend points) are written onto the original
// graph, then the container's size is computed from the children's
// bounding box plus padding.
func writeBack(container *elkgraph.Container, nodes []*lnode, edges []*ledge, padding options.Padding) {
	for _, n := range nodes {
		if n.isDummy || n.original == nil {
			continue
		}
		n.original.X = n.x
		n.original.Y = n.y
	}

	sectionSeq := 0
	seen := make(map[*elkgraph.Edge]bool)
	for _, e := range edges {
		if e.original == nil || len(e.bendPoints) < 2 {
			continue
		}
		if !seen[e.original] {
			e.original.Sections = nil
			seen[e.original] = true
		}
		start := e.bendPoints[0]
		end := e.bendPoints[len(e.bendPoints)-1]
		mid := e.bendPoints[1 : len(e.bendPoints)-1]

		section := elkgraph.Section{
			ID:         fmt.Sprintf("%s_s%d", e.id, sectionSeq),
			StartPoint: start,
			EndPoint:   end,
			BendPoints: mid,
		}
		sectionSeq++
		e.original.Sections = []elkgraph.Section{section}
	}

	computeSize(container, padding)
}

// computeSize sets the container's width/height to the bounding box of
// its children (accounting for port protrusion) plus right/bottom
// padding.
func computeSize(container *elkgraph.Container, padding options.Padding) {
	maxX, maxY := 0.0, 0.0
	for _, child := range container.Children {
		right := child.X + child.Width
		bottom := child.Y + child.Height
		for _, p := range child.Ports {
			if child.X+p.X+p.Width > right {
				right = child.X + p.X + p.Width
			}
			if child.Y+p.Y+p.Height > bottom {
				bottom = child.Y + p.Y + p.Height
			}
		}
		if right > maxX {
			maxX = right
		}
		if bottom > maxY {
			maxY = bottom
		}
	}
	container.Width = maxX + padding.Right
	container.Height = maxY + padding.Bottom
}
