package layered

import (
	"testing"

	"github.com/mark/elkgo/pkg/elkgraph"
)

func TestPlacePortsDistributesEvenlyAlongSide(t *testing.T) {
	n := newLNode("n1", 90, 30, nil)
	p1 := &lport{id: "p1", side: elkgraph.SideNorth, index: 0}
	p2 := &lport{id: "p2", side: elkgraph.SideNorth, index: 1}
	n.ports = []*lport{p1, p2}

	placePorts([]*lnode{n})

	if p1.y != 0 || p2.y != 0 {
		t.Errorf("north ports should sit at y=0: p1.y=%v p2.y=%v", p1.y, p2.y)
	}
	if p1.x >= p2.x {
		t.Errorf("port ordered by index: p1.x=%v should be < p2.x=%v", p1.x, p2.x)
	}
}

func TestPlacePortsUndefinedSidePinnedToOrigin(t *testing.T) {
	n := newLNode("n1", 90, 30, nil)
	p := &lport{id: "p1", side: elkgraph.SideUndefined}
	n.ports = []*lport{p}

	placePorts([]*lnode{n})

	if p.x != 0 || p.y != 0 {
		t.Errorf("undefined-side port = (%v,%v), want (0,0)", p.x, p.y)
	}
}

func TestWriteBackPortsCopiesCoordinates(t *testing.T) {
	original := &elkgraph.Port{ID: "p1"}
	n := newLNode("n1", 90, 30, nil)
	p := &lport{id: "p1", original: original, x: 5, y: 7}
	n.ports = []*lport{p}

	writeBackPorts([]*lnode{n})

	if original.X != 5 || original.Y != 7 {
		t.Errorf("original port = (%v,%v), want (5,7)", original.X, original.Y)
	}
}
