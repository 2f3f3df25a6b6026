package spore

import (
	"context"
	"math"
	"testing"

	"github.com/mark/elkgo/pkg/elkgraph"
)

func rectsOverlap(a, b *elkgraph.Container) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func TestCompactionRemovesOverlap(t *testing.T) {
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{ID: "n1", X: 0, Y: 0, Width: 20, Height: 20},
			{ID: "n2", X: 5, Y: 5, Width: 20, Height: 20},
			{ID: "n3", X: -5, Y: 10, Width: 20, Height: 20},
		},
	}
	if err := NewCompaction().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < len(c.Children); i++ {
		for j := i + 1; j < len(c.Children); j++ {
			if rectsOverlap(c.Children[i], c.Children[j]) {
				t.Errorf("%s and %s still overlap: %+v, %+v", c.Children[i].ID, c.Children[j].ID, c.Children[i], c.Children[j])
			}
		}
	}
}

func TestOverlapProviderAlsoRemovesOverlap(t *testing.T) {
	c := &elkgraph.Container{
		ID: "root",
		Children: []*elkgraph.Container{
			{ID: "n1", X: 0, Y: 0, Width: 10, Height: 10},
			{ID: "n2", X: 2, Y: 2, Width: 10, Height: 10},
		},
	}
	if err := NewOverlap().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rectsOverlap(c.Children[0], c.Children[1]) {
		t.Errorf("n1 and n2 still overlap: %+v, %+v", c.Children[0], c.Children[1])
	}
}

func TestSingleChildPlacedAtPaddingOrigin(t *testing.T) {
	c := &elkgraph.Container{
		ID:            "root",
		LayoutOptions: map[string]interface{}{"elk.padding": "[left=4, top=5, right=0, bottom=0]"},
		Children:      []*elkgraph.Container{{ID: "n1", Width: 10, Height: 10}},
	}
	if err := NewCompaction().Layout(context.Background(), c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n1 := c.Children[0]
	if n1.X != 4 || n1.Y != 5 {
		t.Errorf("n1 = (%v,%v), want (4,5)", n1.X, n1.Y)
	}
}

func TestMinClearDistanceSeparatesAlongRay(t *testing.T) {
	placed := &elkgraph.Container{X: 0, Y: 0, Width: 10, Height: 10}
	newNode := &elkgraph.Container{Width: 10, Height: 10}
	dist := minClearDistance(placed, newNode, 1, 0, 5)
	if math.Abs(dist-15) > 1e-9 {
		t.Errorf("minClearDistance = %v, want 15 (10 width + 5 spacing)", dist)
	}
}
