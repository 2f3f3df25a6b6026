package layered

import (
	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
)

// build translates a container's children, ports, labels, and edges into
// the internal lnode/lport/ledge graph (spec.md §4.5 Phase 0). Edges whose
// source or target id resolves to a port carry that port and its owning
// node; edges referring to unknown ids are dropped silently.
func build(container *elkgraph.Container) (nodes []*lnode, edges []*ledge, nodeMap map[string]*lnode, portMap map[string]*lport) {
	nodeMap = make(map[string]*lnode, len(container.Children))
	portMap = make(map[string]*lport)

	for _, child := range container.Children {
		n := newLNode(child.ID, child.Width, child.Height, child)
		n.layerConstraint = layerConstraintOf(child)
		n.labels = child.Labels

		for _, p := range child.Ports {
			side := options.GetString(p, "port.side", "")
			if side == "" {
				side = options.GetString(p, "elk.port.side", string(elkgraph.SideUndefined))
			}
			index := 0
			if v, ok := options.Get(p, "port.index"); ok {
				index = toInt(v)
			} else if v, ok := options.Get(p, "elk.port.index"); ok {
				index = toInt(v)
			}
			port := &lport{
				id:       p.ID,
				width:    p.Width,
				height:   p.Height,
				side:     elkgraph.Side(side),
				index:    index,
				original: p,
				owner:    n,
			}
			n.ports = append(n.ports, port)
			portMap[p.ID] = port
		}

		nodes = append(nodes, n)
		nodeMap[n.id] = n
	}

	for _, e := range container.Edges {
		sources := e.Sources
		if len(sources) == 0 && e.Source != "" {
			sources = []string{e.Source}
		}
		targets := e.Targets
		if len(targets) == 0 && e.Target != "" {
			targets = []string{e.Target}
		}

		for _, srcID := range sources {
			for _, tgtID := range targets {
				srcNode, srcPort := resolveEndpoint(srcID, nodeMap, portMap)
				tgtNode, tgtPort := resolveEndpoint(tgtID, nodeMap, portMap)
				if srcNode == nil || tgtNode == nil {
					continue
				}
				le := &ledge{
					id:         e.ID,
					source:     srcNode,
					target:     tgtNode,
					sourcePort: srcPort,
					targetPort: tgtPort,
					original:   e,
					isSelfLoop: srcNode == tgtNode,
				}
				srcNode.outgoing = append(srcNode.outgoing, le)
				tgtNode.incoming = append(tgtNode.incoming, le)
				edges = append(edges, le)
			}
		}
	}

	return nodes, edges, nodeMap, portMap
}

func resolveEndpoint(id string, nodeMap map[string]*lnode, portMap map[string]*lport) (*lnode, *lport) {
	if n, ok := nodeMap[id]; ok {
		return n, nil
	}
	if p, ok := portMap[id]; ok {
		return p.owner, p
	}
	return nil, nil
}

func layerConstraintOf(c *elkgraph.Container) elkgraph.LayerConstraint {
	v, ok := options.Get(c, "layerConstraint")
	if !ok {
		v, ok = options.Get(c, "elk.layered.layering.layerConstraint")
	}
	if !ok {
		return elkgraph.LayerConstraintNone
	}
	s, _ := v.(string)
	return elkgraph.LayerConstraint(s)
}

func toInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	case string:
		n := 0
		for _, c := range val {
			if c < '0' || c > '9' {
				return 0
			}
			n = n*10 + int(c-'0')
		}
		return n
	default:
		return 0
	}
}
