package layered

import "github.com/mark/elkgo/pkg/elkerr"

// checkFirstConstraintCycle implements Phase 1 (spec.md §4.5): if two or
// more nodes carry FIRST and participate in a directed cycle restricted to
// the FIRST-constrained subgraph (ignoring self-loops), layout fails.
func checkFirstConstraintCycle(nodes []*lnode) error {
	var firstNodes []*lnode
	for _, n := range nodes {
		if n.layerConstraint == "FIRST" {
			firstNodes = append(firstNodes, n)
		}
	}
	if len(firstNodes) < 2 {
		return nil
	}
	firstSet := make(map[*lnode]bool, len(firstNodes))
	for _, n := range firstNodes {
		firstSet[n] = true
	}
	if hasCycleAmong(firstNodes, firstSet) {
		return elkerr.NewUnsupportedConfiguration("Cycle among nodes with FIRST layer constraint")
	}
	return nil
}

func hasCycleAmong(nodes []*lnode, inSet map[*lnode]bool) bool {
	const white, gray, black = 0, 1, 2
	color := make(map[*lnode]int, len(nodes))
	for _, n := range nodes {
		color[n] = white
	}

	adj := make(map[*lnode][]*lnode, len(nodes))
	for _, n := range nodes {
		for _, e := range n.outgoing {
			if e.isSelfLoop || !inSet[e.target] {
				continue
			}
			adj[n] = append(adj[n], e.target)
		}
	}

	var dfs func(u *lnode) bool
	dfs = func(u *lnode) bool {
		color[u] = gray
		for _, v := range adj[u] {
			if color[v] == gray {
				return true
			}
			if color[v] == white && dfs(v) {
				return true
			}
		}
		color[u] = black
		return false
	}

	for _, n := range nodes {
		if color[n] == white {
			if dfs(n) {
				return true
			}
		}
	}
	return false
}

// breakCycles implements Phase 2: a DFS over non-self-loop edges reverses
// every back-edge (an edge to a currently gray node), making the non-
// self-loop subgraph acyclic.
func breakCycles(nodes []*lnode) {
	const white, gray, black = 0, 1, 2
	color := make(map[*lnode]int, len(nodes))
	for _, n := range nodes {
		color[n] = white
	}

	var dfs func(u *lnode)
	dfs = func(u *lnode) {
		color[u] = gray
		// Copy outgoing since reverseEdge mutates it in place.
		out := append([]*ledge(nil), u.outgoing...)
		for _, e := range out {
			if e.isSelfLoop {
				continue
			}
			v := e.target
			switch color[v] {
			case gray:
				reverseEdge(e)
			case white:
				dfs(v)
			}
		}
		color[u] = black
	}

	for _, n := range nodes {
		if color[n] == white {
			dfs(n)
		}
	}
}

func reverseEdge(e *ledge) {
	removeEdge(&e.source.outgoing, e)
	removeEdge(&e.target.incoming, e)

	e.source, e.target = e.target, e.source
	e.sourcePort, e.targetPort = e.targetPort, e.sourcePort

	e.source.outgoing = append(e.source.outgoing, e)
	e.target.incoming = append(e.target.incoming, e)
	e.reversed = !e.reversed
}

func removeEdge(list *[]*ledge, e *ledge) {
	for i, cur := range *list {
		if cur == e {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// assignLayers implements Phase 3: layer assignment by the selected
// strategy, followed by FIRST/LAST constraint snapping.
func assignLayers(nodes []*lnode, strategy string) {
	switch strategy {
	case "NETWORK_SIMPLEX":
		networkSimplexLayering(nodes)
	case "COFFMAN_GRAHAM":
		coffmanGrahamLayering(nodes)
	default:
		longestPathLayering(nodes)
	}
	applyLayerConstraints(nodes)
}

func longestPathLayering(nodes []*lnode) {
	inDegree := make(map[*lnode]int, len(nodes))
	for _, n := range nodes {
		inDegree[n] = 0
	}
	for _, n := range nodes {
		for _, e := range n.outgoing {
			if !e.isSelfLoop {
				inDegree[e.target]++
			}
		}
	}

	queue := make([]*lnode, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	order := make([]*lnode, 0, len(nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, e := range n.outgoing {
			if e.isSelfLoop {
				continue
			}
			inDegree[e.target]--
			if inDegree[e.target] == 0 {
				queue = append(queue, e.target)
			}
		}
	}

	ordered := make(map[*lnode]bool, len(order))
	for _, n := range order {
		ordered[n] = true
	}
	for _, n := range nodes {
		if !ordered[n] {
			order = append(order, n)
		}
	}

	layerOf := make(map[*lnode]int, len(nodes))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		maxTargetLayer := -1
		for _, e := range n.outgoing {
			if e.isSelfLoop {
				continue
			}
			if l, ok := layerOf[e.target]; ok && l > maxTargetLayer {
				maxTargetLayer = l
			}
		}
		layerOf[n] = maxTargetLayer + 1
	}

	if len(layerOf) == 0 {
		return
	}
	maxLayer := 0
	for _, l := range layerOf {
		if l > maxLayer {
			maxLayer = l
		}
	}
	for _, n := range nodes {
		n.layer = maxLayer - layerOf[n]
	}
}

func networkSimplexLayering(nodes []*lnode) {
	longestPathLayering(nodes)

	var nonSelf []*ledge
	for _, n := range nodes {
		for _, e := range n.outgoing {
			if !e.isSelfLoop {
				nonSelf = append(nonSelf, e)
			}
		}
	}

	for round := 0; round < 50; round++ {
		improved := false

		for _, e := range nonSelf {
			if slack := e.target.layer - e.source.layer - 1; slack < 0 {
				e.target.layer = e.source.layer + 1
				improved = true
			}
		}

		for _, n := range nodes {
			if len(n.incoming) == 0 && len(n.outgoing) == 0 {
				continue
			}

			var targetLayers, sourceLayers []int
			for _, e := range n.outgoing {
				if !e.isSelfLoop {
					targetLayers = append(targetLayers, e.target.layer)
				}
			}
			for _, e := range n.incoming {
				if !e.isSelfLoop {
					sourceLayers = append(sourceLayers, e.source.layer)
				}
			}

			var ideal int
			switch {
			case len(targetLayers) > 0:
				ideal = min(targetLayers) - 1
			case len(sourceLayers) > 0:
				ideal = max(sourceLayers) + 1
			default:
				continue
			}

			feasible := true
			for _, e := range n.incoming {
				if !e.isSelfLoop && e.source.layer >= ideal {
					feasible = false
					break
				}
			}
			if feasible {
				for _, e := range n.outgoing {
					if !e.isSelfLoop && e.target.layer <= ideal {
						feasible = false
						break
					}
				}
			}

			if feasible && ideal != n.layer {
				n.layer = ideal
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	if len(nodes) == 0 {
		return
	}
	minLayer := nodes[0].layer
	for _, n := range nodes {
		if n.layer < minLayer {
			minLayer = n.layer
		}
	}
	for _, n := range nodes {
		n.layer -= minLayer
	}
}

// coffmanGrahamLayering falls back to longest-path. A faithful
// implementation is left as future work (spec.md §9 open question: "do
// not replicate the stub silently" — this is the declared alias, not a
// silent divergence).
func coffmanGrahamLayering(nodes []*lnode) {
	longestPathLayering(nodes)
}

func applyLayerConstraints(nodes []*lnode) {
	if len(nodes) == 0 {
		return
	}
	minLayer, maxLayer := nodes[0].layer, nodes[0].layer
	for _, n := range nodes {
		if n.layer < minLayer {
			minLayer = n.layer
		}
		if n.layer > maxLayer {
			maxLayer = n.layer
		}
	}
	for _, n := range nodes {
		switch n.layerConstraint {
		case "FIRST":
			n.layer = minLayer
		case "LAST":
			n.layer = maxLayer
		}
	}
}

func min(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func max(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
