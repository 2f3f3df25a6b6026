package layered

import (
	"context"
	"math"
	"testing"

	"github.com/mark/elkgo/pkg/elkerr"
	"github.com/mark/elkgo/pkg/elkgraph"
)

func TestLayoutTwoNodeHorizontalSpacing(t *testing.T) {
	c := &elkgraph.Container{
		ID:            "root",
		LayoutOptions: map[string]interface{}{"elk.direction": "RIGHT"},
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10},
			{ID: "n2", Width: 10, Height: 10},
		},
		Edges: []*elkgraph.Edge{{ID: "e1", Source: "n1", Target: "n2"}},
	}
	global := map[string]interface{}{"elk.layered.spacing.nodeNodeBetweenLayers": 11.0}

	if err := New().Layout(context.Background(), c, global); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n1, n2 := c.Children[0], c.Children[1]
	if n1.Y != n2.Y {
		t.Errorf("n1.Y=%v n2.Y=%v, want equal", n1.Y, n2.Y)
	}
	if diff := math.Abs(n1.X - n2.X); diff != 21 {
		t.Errorf("|n1.X-n2.X| = %v, want 21", diff)
	}
}

func TestLayoutAppliesPaddingAndSizesContainer(t *testing.T) {
	c := &elkgraph.Container{
		ID:            "root",
		LayoutOptions: map[string]interface{}{"elk.padding": "[left=2, top=3, right=3, bottom=2]"},
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10},
		},
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n1 := c.Children[0]
	if n1.X != 2 || n1.Y != 3 {
		t.Errorf("n1 = (%v,%v), want (2,3)", n1.X, n1.Y)
	}
	if c.Width != 15 || c.Height != 15 {
		t.Errorf("container size = %vx%v, want 15x15", c.Width, c.Height)
	}
}

func TestLayoutLabelPlacement(t *testing.T) {
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{
				ID: "n1", Width: 100, Height: 100,
				Labels: []*elkgraph.Label{{ID: "l1"}},
			},
			{
				ID: "n2", Width: 100, Height: 100,
				Labels:        []*elkgraph.Label{{ID: "l2"}},
				LayoutOptions: map[string]interface{}{"elk.nodeLabels.placement": "INSIDE V_CENTER H_CENTER"},
			},
		},
		Edges: []*elkgraph.Edge{{ID: "e1", Source: "n1", Target: "n2"}},
	}
	global := map[string]interface{}{"elk.nodeLabels.placement": "OUTSIDE V_TOP H_CENTER"}

	if err := New().Layout(context.Background(), c, global); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l1 := c.Children[0].Labels[0]
	if l1.X != 50 || l1.Y != -5 {
		t.Errorf("l1 = (%v,%v), want (50,-5)", l1.X, l1.Y)
	}
	l2 := c.Children[1].Labels[0]
	if l2.X != 50 || l2.Y != 50 {
		t.Errorf("l2 = (%v,%v), want (50,50); element option should override global", l2.X, l2.Y)
	}
}

func TestLayoutToleratesSelfLoopWithCoffmanGraham(t *testing.T) {
	c := &elkgraph.Container{
		ID:            "root",
		LayoutOptions: map[string]interface{}{"elk.layered.layering.strategy": "COFFMAN_GRAHAM"},
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10},
			{ID: "n2", Width: 10, Height: 10},
			{ID: "n3", Width: 10, Height: 10},
		},
		Edges: []*elkgraph.Edge{
			{ID: "e1", Source: "n1", Target: "n2"},
			{ID: "e2", Source: "n2", Target: "n3"},
			{ID: "e3", Source: "n1", Target: "n1"},
		},
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("self-loop should not cause an error: %v", err)
	}
}

func TestLayoutRejectsFirstConstraintCycle(t *testing.T) {
	opts := map[string]interface{}{"layerConstraint": "FIRST"}
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10, LayoutOptions: opts},
			{ID: "n2", Width: 10, Height: 10, LayoutOptions: opts},
			{ID: "n3", Width: 10, Height: 10, LayoutOptions: opts},
		},
		Edges: []*elkgraph.Edge{
			{ID: "e1", Source: "n1", Target: "n2"},
			{ID: "e2", Source: "n2", Target: "n3"},
			{ID: "e3", Source: "n3", Target: "n1"},
		},
	}
	err := New().Layout(context.Background(), c, nil)
	if err == nil {
		t.Fatal("expected an error for a cycle among FIRST-constrained nodes")
	}
	elkErr, ok := err.(*elkerr.Error)
	if !ok || elkErr.Kind != elkerr.UnsupportedConfiguration {
		t.Errorf("err = %v, want UnsupportedConfiguration", err)
	}
}

func TestLongestPathLayeringOrdersByDependency(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n2 := newLNode("n2", 10, 10, nil)
	n3 := newLNode("n3", 10, 10, nil)
	e1 := &ledge{source: n1, target: n2}
	e2 := &ledge{source: n2, target: n3}
	n1.outgoing = []*ledge{e1}
	n2.incoming = []*ledge{e1}
	n2.outgoing = []*ledge{e2}
	n3.incoming = []*ledge{e2}

	longestPathLayering([]*lnode{n1, n2, n3})

	if n1.layer != 0 || n2.layer != 1 || n3.layer != 2 {
		t.Errorf("layers = %d,%d,%d, want 0,1,2", n1.layer, n2.layer, n3.layer)
	}
}

func TestBreakCyclesMakesGraphAcyclic(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n2 := newLNode("n2", 10, 10, nil)
	e1 := &ledge{source: n1, target: n2}
	e2 := &ledge{source: n2, target: n1}
	n1.outgoing = []*ledge{e1}
	n2.incoming = []*ledge{e1}
	n2.outgoing = []*ledge{e2}
	n1.incoming = []*ledge{e2}

	nodes := []*lnode{n1, n2}
	breakCycles(nodes)

	if hasCycleAmong(nodes, map[*lnode]bool{n1: true, n2: true}) {
		t.Error("breakCycles should leave no cycle")
	}
}

func TestInsertDummyNodesSpansMultipleLayers(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n1.layer = 0
	n2 := newLNode("n2", 10, 10, nil)
	n2.layer = 3
	e := &ledge{source: n1, target: n2}
	n1.outgoing = []*ledge{e}
	n2.incoming = []*ledge{e}

	nodes := []*lnode{n1, n2}
	insertDummyNodes(&nodes, []*ledge{e})

	if len(e.dummyNodes) != 2 {
		t.Fatalf("expected 2 dummy nodes for a span of 3, got %d", len(e.dummyNodes))
	}
	if e.dummyNodes[0].layer != 1 || e.dummyNodes[1].layer != 2 {
		t.Errorf("dummy layers = %d,%d, want 1,2", e.dummyNodes[0].layer, e.dummyNodes[1].layer)
	}
	if len(nodes) != 4 {
		t.Errorf("len(nodes) = %d, want 4 (2 real + 2 dummy)", len(nodes))
	}
}

func TestInsertDummyNodesSkipsSelfLoops(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	e := &ledge{source: n1, target: n1, isSelfLoop: true}
	nodes := []*lnode{n1}
	insertDummyNodes(&nodes, []*ledge{e})
	if len(e.dummyNodes) != 0 || len(nodes) != 1 {
		t.Errorf("self-loop should not get dummy nodes: %+v, nodes=%d", e.dummyNodes, len(nodes))
	}
}

func TestLayoutTwiceIsIdempotentOnSections(t *testing.T) {
	newGraph := func() *elkgraph.Container {
		return &elkgraph.Container{
			ID: "root",
			Children: []*elkgraph.Container{
				{ID: "n1", Width: 10, Height: 10},
				{ID: "n2", Width: 10, Height: 10},
			},
			Edges: []*elkgraph.Edge{{ID: "e1", Source: "n1", Target: "n2"}},
		}
	}
	c := newGraph()
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("first layout: unexpected error: %v", err)
	}
	if len(c.Edges[0].Sections) != 1 {
		t.Fatalf("after first layout, len(Sections) = %d, want 1", len(c.Edges[0].Sections))
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("second layout: unexpected error: %v", err)
	}
	if len(c.Edges[0].Sections) != 1 {
		t.Errorf("after second layout, len(Sections) = %d, want 1 (sections should not accumulate)", len(c.Edges[0].Sections))
	}
}

func TestApplyLayerConstraintsSnapsFirstAndLast(t *testing.T) {
	n1 := newLNode("n1", 10, 10, nil)
	n1.layer = 1
	n1.layerConstraint = elkgraph.LayerConstraintFirst
	n2 := newLNode("n2", 10, 10, nil)
	n2.layer = 1
	n3 := newLNode("n3", 10, 10, nil)
	n3.layer = 0
	n3.layerConstraint = elkgraph.LayerConstraintLast

	applyLayerConstraints([]*lnode{n1, n2, n3})

	if n1.layer != 0 {
		t.Errorf("FIRST node layer = %d, want 0 (min)", n1.layer)
	}
	if n3.layer != 1 {
		t.Errorf("LAST node layer = %d, want 1 (max)", n3.layer)
	}
}
