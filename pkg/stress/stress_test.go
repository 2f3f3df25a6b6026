package stress

import (
	"context"
	"testing"

	"github.com/mark/elkgo/pkg/elkgraph"
)

func TestLayoutConnectedTriangleConverges(t *testing.T) {
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
			{ID: "e3", Source: "n3", Target: "n1"},
		},
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, child := range c.Children {
		if child.X < 0 || child.Y < 0 {
			t.Errorf("child %s outside padding origin: (%v,%v)", child.ID, child.X, child.Y)
		}
	}
	for _, e := range c.Edges {
		if len(e.Sections) != 1 {
			t.Errorf("edge %s should be routed, got %d sections", e.ID, len(e.Sections))
		}
	}
}

func TestLayoutDisconnectedNodesStillPlaced(t *testing.T) {
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{ID: "n1", Width: 10, Height: 10},
			{ID: "n2", Width: 10, Height: 10},
		},
	}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Children[0].X == c.Children[1].X && c.Children[0].Y == c.Children[1].Y {
		t.Error("disconnected nodes collapsed onto the same point")
	}
}

func TestLayoutEmptyContainerNoop(t *testing.T) {
	c := &elkgraph.Container{ID: "root"}
	if err := New().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error on empty container: %v", err)
	}
}
