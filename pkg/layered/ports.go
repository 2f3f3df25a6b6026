package layered

import (
	"sort"

	"github.com/mark/elkgo/pkg/elkgraph"
)

// placePorts implements Phase 8: ports are grouped by side, sorted by
// index, and distributed evenly along that side. UNDEFINED-sided ports
// are pinned to (0,0).
func placePorts(nodes []*lnode) {
	for _, n := range nodes {
		if n.isDummy {
			continue
		}
		bySide := map[elkgraph.Side][]*lport{}
		for _, p := range n.ports {
			bySide[p.side] = append(bySide[p.side], p)
		}
		for side, ports := range bySide {
			if side == elkgraph.SideUndefined || side == "" {
				for _, p := range ports {
					p.x, p.y = 0, 0
				}
				continue
			}
			sort.SliceStable(ports, func(i, j int) bool { return ports[i].index < ports[j].index })
			count := len(ports)
			for i, p := range ports {
				frac := float64(i+1) / float64(count+1)
				switch side {
				case elkgraph.SideNorth:
					p.x = n.width*frac - p.width/2
					p.y = 0
				case elkgraph.SideSouth:
					p.x = n.width*frac - p.width/2
					p.y = n.height
				case elkgraph.SideWest:
					p.y = n.height*frac - p.height/2
					p.x = 0
				case elkgraph.SideEast:
					p.y = n.height*frac - p.height/2
					p.x = n.width
				}
			}
		}
	}
}

// writeBackPorts copies each lport's computed coordinates onto its
// original elkgraph.Port.
func writeBackPorts(nodes []*lnode) {
	for _, n := range nodes {
		for _, p := range n.ports {
			if p.original != nil {
				p.original.X = p.x
				p.original.Y = p.y
			}
		}
	}
}
