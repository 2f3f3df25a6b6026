package layered

import "github.com/mark/elkgo/pkg/elkgraph"

// lnode is the internal node representation for the layered engine
// (spec.md §3 "Internal representation used by the layered engine").
type lnode struct {
	id              string
	width, height   float64
	original        *elkgraph.Container
	isDummy         bool
	layer           int
	position        int
	x, y            float64
	incoming        []*ledge
	outgoing        []*ledge
	ports           []*lport
	labels          []*elkgraph.Label
	layerConstraint elkgraph.LayerConstraint
}

// lport is the internal port representation.
type lport struct {
	id            string
	width, height float64
	side          elkgraph.Side
	index         int
	original      *elkgraph.Port
	owner         *lnode
	x, y          float64
}

// ledge is the internal edge representation. One ledge is created per
// (source, target) pair drawn from an edge's sources/targets multiset, so
// a single elkgraph.Edge with multiple sources or targets expands into
// several ledges sharing the same original and id.
type ledge struct {
	id                   string
	source, target       *lnode
	sourcePort, targetPort *lport
	original             *elkgraph.Edge
	reversed             bool
	isSelfLoop           bool
	dummyNodes           []*lnode
	bendPoints           []elkgraph.Point
}

func newLNode(id string, width, height float64, original *elkgraph.Container) *lnode {
	return &lnode{id: id, width: width, height: height, original: original, layer: -1, position: -1}
}
