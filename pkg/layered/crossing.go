package layered

import (
	"math"
	"sort"
)

// minimizeCrossings implements Phase 5: a forward sweep over positions
// relative to predecessors, then a backward sweep relative to successors,
// each re-sorting every layer by barycenter. Final per-layer order is
// written back to each node's position.
func minimizeCrossings(layers [][]*lnode) {
	if len(layers) == 0 {
		return
	}

	for l := 1; l < len(layers); l++ {
		refPos := layerIndex(layers[l-1])
		sortByBarycenter(layers[l], func(n *lnode) []int {
			return neighborPositions(n, true, refPos)
		})
	}
	for l := len(layers) - 2; l >= 0; l-- {
		refPos := layerIndex(layers[l+1])
		sortByBarycenter(layers[l], func(n *lnode) []int {
			return neighborPositions(n, false, refPos)
		})
	}

	for _, layer := range layers {
		for pos, n := range layer {
			n.position = pos
		}
	}
}

// layerIndex maps each node in layer to its current slice index, so a
// reference layer's order can be read live even after it has just been
// re-sorted in the same sweep.
func layerIndex(layer []*lnode) map[*lnode]int {
	idx := make(map[*lnode]int, len(layer))
	for i, n := range layer {
		idx[n] = i
	}
	return idx
}

// neighborPositions returns the current positions, within refPos, of n's
// predecessors (incoming) or successors (outgoing), ignoring self-loops.
func neighborPositions(n *lnode, predecessors bool, refPos map[*lnode]int) []int {
	var out []int
	edges := n.outgoing
	if predecessors {
		edges = n.incoming
	}
	for _, e := range edges {
		if e.isSelfLoop {
			continue
		}
		var other *lnode
		if predecessors {
			other = e.source
		} else {
			other = e.target
		}
		if p, ok := refPos[other]; ok {
			out = append(out, p)
		}
	}
	return out
}

func sortByBarycenter(layer []*lnode, neighbors func(*lnode) []int) {
	barycenter := make(map[*lnode]float64, len(layer))
	for _, n := range layer {
		positions := neighbors(n)
		if len(positions) == 0 {
			barycenter[n] = math.Inf(1)
			continue
		}
		sum := 0
		for _, p := range positions {
			sum += p
		}
		barycenter[n] = float64(sum) / float64(len(positions))
	}
	sort.SliceStable(layer, func(i, j int) bool {
		return barycenter[layer[i]] < barycenter[layer[j]]
	})
}
