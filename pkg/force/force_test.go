package force

import (
	"context"
	"testing"

	"github.com/mark/elkgo/pkg/elkgraph"
)

func TestLayoutPlacesAllChildrenWithoutOverlapAndRoutesEdges(t *testing.T) {
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10},
			{ID: "n2", Width: 10, Height: 10},
			{ID: "n3", Width: 10, Height: 10},
		},
		Edges: []*elkgraph.Edge{
			{ID: "e1", Source: "n1", Target: "n2"},
			{ID: "e2", Source: "n2", Target: "n3"},
		},
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, child := range c.Children {
		if child.X < 0 || child.Y < 0 {
			t.Errorf("child %s placed outside padding origin: (%v,%v)", child.ID, child.X, child.Y)
		}
	}
	for _, e := range c.Edges {
		if len(e.Sections) != 1 {
			t.Errorf("edge %s should have exactly one routed section, got %d", e.ID, len(e.Sections))
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		t.Errorf("container size = %vx%v, want positive", c.Width, c.Height)
	}
}

func TestLayoutIsDeterministicWithCustomSeed(t *testing.T) {
	seed := func(i, n int) (float64, float64) { return float64(i) * 100, 0 }
	mk := func() *elkgraph.Container {
		return &elkgraph.Container{
			ID: "root",
			Children: []*elkgraph.Container{
				{ID: "n1", Width: 10, Height: 10},
				{ID: "n2", Width: 10, Height: 10},
			},
		}
	}
	c1, c2 := mk(), mk()
	p1 := &Provider{Seed: seed}
	p2 := &Provider{Seed: seed}
	if err := p1.Layout(context.Background(), c1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p2.Layout(context.Background(), c2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range c1.Children {
		if c1.Children[i].X != c2.Children[i].X || c1.Children[i].Y != c2.Children[i].Y {
			t.Errorf("expected identical runs with the same seed: %+v vs %+v", c1.Children[i], c2.Children[i])
		}
	}
}

func TestLayoutEmptyContainerNoop(t *testing.T) {
	c := &elkgraph.Container{ID: "root"}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error on empty container: %v", err)
	}
}
