package layered

import "fmt"

// insertDummyNodes implements Phase 4: every edge spanning more than one
// layer gets a chain of dummy nodes, one per intermediate layer, so that
// no edge in the organized-layers view skips a layer. Dummy nodes carry
// zero size and no original container.
func insertDummyNodes(nodes *[]*lnode, edges []*ledge) {
	dummyCount := 0
	for _, e := range edges {
		if e.isSelfLoop {
			continue
		}
		span := e.target.layer - e.source.layer
		if span <= 1 {
			continue
		}

		prev := e.source
		for l := e.source.layer + 1; l < e.target.layer; l++ {
			d := newLNode(fmt.Sprintf("$dummy_%d", dummyCount), 0, 0, nil)
			dummyCount++
			d.isDummy = true
			d.layer = l
			*nodes = append(*nodes, d)
			e.dummyNodes = append(e.dummyNodes, d)
			prev = d
		}
		_ = prev
	}
}

// organizeLayers groups nodes by their assigned layer index into an
// ordered slice of layers (spec.md §4.5 Phase "organize").
func organizeLayers(nodes []*lnode) [][]*lnode {
	if len(nodes) == 0 {
		return nil
	}
	maxLayer := 0
	for _, n := range nodes {
		if n.layer > maxLayer {
			maxLayer = n.layer
		}
	}
	layers := make([][]*lnode, maxLayer+1)
	for _, n := range nodes {
		layers[n.layer] = append(layers[n.layer], n)
	}
	for i, layer := range layers {
		for pos, n := range layer {
			n.position = pos
		}
		_ = i
	}
	return layers
}
