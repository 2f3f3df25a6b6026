package layered

import "testing"

func TestMinimizeCrossingsUncrossesSimpleSwap(t *testing.T) {
	a := newLNode("a", 10, 10, nil)
	b := newLNode("b", 10, 10, nil)
	c := newLNode("c", 10, 10, nil)
	d := newLNode("d", 10, 10, nil)
	a.layer, b.layer = 0, 0
	c.layer, d.layer = 1, 1
	a.position, b.position = 0, 1

	// a -> d, b -> c: drawn in initial order (c, d) this crosses.
	eAD := &ledge{source: a, target: d}
	eBC := &ledge{source: b, target: c}
	a.outgoing = []*ledge{eAD}
	b.outgoing = []*ledge{eBC}
	d.incoming = []*ledge{eAD}
	c.incoming = []*ledge{eBC}

	layers := [][]*lnode{{a, b}, {c, d}}
	minimizeCrossings(layers)

	if layers[1][0] != d || layers[1][1] != c {
		t.Errorf("expected layer 1 order [d, c] after uncrossing, got [%s, %s]", layers[1][0].id, layers[1][1].id)
	}
}

func TestMinimizeCrossingsUsesLiveOrderAcrossThreeLayers(t *testing.T) {
	a := newLNode("a", 10, 10, nil)
	b := newLNode("b", 10, 10, nil)
	x := newLNode("x", 10, 10, nil)
	y := newLNode("y", 10, 10, nil)
	p := newLNode("p", 10, 10, nil)
	q := newLNode("q", 10, 10, nil)
	a.layer, b.layer = 0, 0
	x.layer, y.layer = 1, 1
	p.layer, q.layer = 2, 2
	a.position, b.position = 0, 1
	x.position, y.position = 0, 1
	p.position, q.position = 0, 1

	// a -> y, b -> x: forces layer1 to re-sort from [x, y] to [y, x].
	eAY := &ledge{source: a, target: y}
	eBX := &ledge{source: b, target: x}
	a.outgoing = []*ledge{eAY}
	b.outgoing = []*ledge{eBX}
	y.incoming = []*ledge{eAY}
	x.incoming = []*ledge{eBX}

	// x -> p, y -> q: layer2's barycenter must read layer1's live order
	// ([y, x], not the stale initial [x, y]) to sort correctly to [q, p].
	eXP := &ledge{source: x, target: p}
	eYQ := &ledge{source: y, target: q}
	x.outgoing = append(x.outgoing, eXP)
	y.outgoing = append(y.outgoing, eYQ)
	p.incoming = []*ledge{eXP}
	q.incoming = []*ledge{eYQ}

	layers := [][]*lnode{{a, b}, {x, y}, {p, q}}
	minimizeCrossings(layers)

	if layers[2][0] != q || layers[2][1] != p {
		t.Errorf("expected layer 2 order [q, p] using live layer-1 order, got [%s, %s]", layers[2][0].id, layers[2][1].id)
	}
}

func TestOrganizeLayersGroupsByLayerAndAssignsPosition(t *testing.T) {
	a := newLNode("a", 10, 10, nil)
	b := newLNode("b", 10, 10, nil)
	c := newLNode("c", 10, 10, nil)
	a.layer, b.layer, c.layer = 0, 1, 0

	layers := organizeLayers([]*lnode{a, b, c})

	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}
	if len(layers[0]) != 2 || len(layers[1]) != 1 {
		t.Fatalf("layer sizes = %d,%d, want 2,1", len(layers[0]), len(layers[1]))
	}
	for pos, n := range layers[0] {
		if n.position != pos {
			t.Errorf("node %s position = %d, want %d", n.id, n.position, pos)
		}
	}
}
