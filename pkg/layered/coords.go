package layered

import "github.com/mark/elkgo/pkg/options"

// placeNodes implements Phase 6: layers become rows (vertical direction)
// or columns (horizontal direction), stacked along the layer axis and
// centered along the intra-layer axis, with node/layer spacing and
// padding.left/padding.top as the origin.
func placeNodes(layers [][]*lnode, nodeSpacing, layerSpacing float64, padding options.Padding, horizontal bool) {
	maxExtent := 0.0
	for _, layer := range layers {
		if e := layerExtent(layer, nodeSpacing, horizontal); e > maxExtent {
			maxExtent = e
		}
	}

	layerOrigin := 0.0
	for _, layer := range layers {
		if horizontal {
			placeColumn(layer, layerOrigin, maxExtent, nodeSpacing, padding)
		} else {
			placeRow(layer, layerOrigin, maxExtent, nodeSpacing, padding)
		}
		layerOrigin += layerAdvance(layer, horizontal) + layerSpacing
	}
}

// layerExtent is the layer's thick extent along the intra-layer axis:
// width summed for rows (vertical direction), height summed for columns.
func layerExtent(layer []*lnode, nodeSpacing float64, horizontal bool) float64 {
	if len(layer) == 0 {
		return 0
	}
	total := 0.0
	for _, n := range layer {
		if horizontal {
			total += n.height
		} else {
			total += n.width
		}
	}
	total += float64(len(layer)-1) * nodeSpacing
	return total
}

// layerAdvance is how far the layer axis moves to clear this layer: the
// max node height for rows, the max node width for columns.
func layerAdvance(layer []*lnode, horizontal bool) float64 {
	max := 0.0
	for _, n := range layer {
		size := n.height
		if horizontal {
			size = n.width
		}
		if size > max {
			max = size
		}
	}
	return max
}

func placeRow(layer []*lnode, rowOrigin, maxExtent, nodeSpacing float64, padding options.Padding) {
	extent := 0.0
	for _, n := range layer {
		extent += n.width
	}
	extent += float64(len(layer)-1) * nodeSpacing

	x := padding.Left + (maxExtent-extent)/2
	for _, n := range layer {
		n.x = x
		n.y = padding.Top + rowOrigin
		x += n.width + nodeSpacing
	}
}

func placeColumn(layer []*lnode, colOrigin, maxExtent, nodeSpacing float64, padding options.Padding) {
	extent := 0.0
	for _, n := range layer {
		extent += n.height
	}
	extent += float64(len(layer)-1) * nodeSpacing

	y := padding.Top + (maxExtent-extent)/2
	for _, n := range layer {
		n.y = y
		n.x = padding.Left + colOrigin
		y += n.height + nodeSpacing
	}
}
