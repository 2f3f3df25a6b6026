package layered

import "testing"

func TestRouteEdgesBoundaryWithoutPorts(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n1.x, n1.y = 0, 0
	n2 := newLNode("n2", 10, 10, nil)
	n2.x, n2.y = 30, 0
	e := &ledge{source: n1, target: n2}

	routeEdges([]*ledge{e}, true, "RIGHT")

	if len(e.bendPoints) != 2 {
		t.Fatalf("expected 2 points (no dummy nodes), got %d", len(e.bendPoints))
	}
	start, end := e.bendPoints[0], e.bendPoints[1]
	if start.X != 10 || start.Y != 5 {
		t.Errorf("start = %+v, want east face of n1 (10,5)", start)
	}
	if end.X != 30 || end.Y != 5 {
		t.Errorf("end = %+v, want west face of n2 (30,5)", end)
	}
}

func TestRouteEdgesSwapsReversedAfterComputingPoints(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n2 := newLNode("n2", 10, 10, nil)
	n2.x = 30
	e := &ledge{source: n1, target: n2, reversed: true}

	routeEdges([]*ledge{e}, true, "RIGHT")

	if e.bendPoints[0].X != 30 || e.bendPoints[1].X != 10 {
		t.Errorf("reversed edge should swap start/end: %+v", e.bendPoints)
	}
}

func TestRouteEdgesIncludesDummyNodeBends(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n2 := newLNode("n2", 10, 10, nil)
	n2.x = 60
	d := newLNode("$dummy_0", 0, 0, nil)
	d.isDummy = true
	d.x, d.y = 35, 5
	e := &ledge{source: n1, target: n2, dummyNodes: []*lnode{d}}

	routeEdges([]*ledge{e}, true, "RIGHT")

	if len(e.bendPoints) != 3 {
		t.Fatalf("expected 3 points (start, dummy, end), got %d", len(e.bendPoints))
	}
	if e.bendPoints[1].X != 35 || e.bendPoints[1].Y != 5 {
		t.Errorf("middle bend = %+v, want dummy center (35,5)", e.bendPoints[1])
	}
}

func TestSelfLoopRouteProducesFourPoints(t *testing.T) {
	n := newLNode("n1", 10, 10, nil)
	pts := selfLoopRoute(n)
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	if pts[0].X != 10 || pts[0].Y != 0 {
		t.Errorf("start = %+v, want (10,0)", pts[0])
	}
	if pts[1].X != 30 {
		t.Errorf("first bend x = %v, want 30 (10 + 20 out)", pts[1].X)
	}
}
