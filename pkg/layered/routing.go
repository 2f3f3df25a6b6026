package layered

import "github.com/mark/elkgo/pkg/elkgraph"

// routeEdges implements Phase 7: connection points are derived from port
// side (or a direction-inferred side without a port), bend points are the
// dummy-node centers in source-to-target order, and reversed edges swap
// start/end only after both points are computed.
func routeEdges(edges []*ledge, horizontal bool, direction string) {
	for _, e := range edges {
		if e.isSelfLoop {
			e.bendPoints = selfLoopRoute(e.source)
			continue
		}

		start := connectionPoint(e.source, e.sourcePort, true, horizontal, direction)
		end := connectionPoint(e.target, e.targetPort, false, horizontal, direction)

		var bends []elkgraph.Point
		for _, d := range e.dummyNodes {
			bends = append(bends, elkgraph.Point{X: d.x, Y: d.y})
		}

		if e.reversed {
			start, end = end, start
		}

		e.bendPoints = append([]elkgraph.Point{start}, append(bends, end)...)
	}
}

func connectionPoint(n *lnode, port *lport, isSource, horizontal bool, direction string) elkgraph.Point {
	side := elkgraph.SideUndefined
	if port != nil {
		side = port.side
	}
	if side == elkgraph.SideUndefined || side == "" {
		side = inferredSide(isSource, horizontal, direction)
	}

	if port != nil {
		return portSidePoint(n, port, side)
	}
	return boundarySidePoint(n, side)
}

func inferredSide(isSource, horizontal bool, direction string) elkgraph.Side {
	if horizontal {
		if isSource {
			return elkgraph.SideEast
		}
		return elkgraph.SideWest
	}
	if isSource {
		return elkgraph.SideSouth
	}
	return elkgraph.SideNorth
}

func portSidePoint(n *lnode, p *lport, side elkgraph.Side) elkgraph.Point {
	switch side {
	case elkgraph.SideEast:
		return elkgraph.Point{X: n.x + n.width, Y: n.y + p.y + p.height/2}
	case elkgraph.SideWest:
		return elkgraph.Point{X: n.x, Y: n.y + p.y + p.height/2}
	case elkgraph.SideNorth:
		return elkgraph.Point{X: n.x + p.x + p.width/2, Y: n.y}
	case elkgraph.SideSouth:
		return elkgraph.Point{X: n.x + p.x + p.width/2, Y: n.y + n.height}
	default:
		return elkgraph.Point{X: n.x + n.width/2, Y: n.y + n.height/2}
	}
}

func boundarySidePoint(n *lnode, side elkgraph.Side) elkgraph.Point {
	switch side {
	case elkgraph.SideEast:
		return elkgraph.Point{X: n.x + n.width, Y: n.y + n.height/2}
	case elkgraph.SideWest:
		return elkgraph.Point{X: n.x, Y: n.y + n.height/2}
	case elkgraph.SideNorth:
		return elkgraph.Point{X: n.x + n.width/2, Y: n.y}
	case elkgraph.SideSouth:
		return elkgraph.Point{X: n.x + n.width/2, Y: n.y + n.height}
	default:
		return elkgraph.Point{X: n.x + n.width/2, Y: n.y + n.height/2}
	}
}

// selfLoopRoute emits a two-bend routing from the node's top-right corner
// out by 20 units, down by the node's height, and back below the start.
func selfLoopRoute(n *lnode) []elkgraph.Point {
	const out = 20.0
	start := elkgraph.Point{X: n.x + n.width, Y: n.y}
	bend1 := elkgraph.Point{X: n.x + n.width + out, Y: n.y}
	bend2 := elkgraph.Point{X: n.x + n.width + out, Y: n.y + n.height}
	end := elkgraph.Point{X: n.x + n.width, Y: n.y + n.height}
	return []elkgraph.Point{start, bend1, bend2, end}
}
