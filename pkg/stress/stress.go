// Package stress implements stress-majorization layout (Kamada-Kawai
// style): graph-theoretic distances drive a weighted least-squares
// relaxation toward target Euclidean distances. Grounded on
// _examples/original_source/elkpy/algorithms/stress.py's
// StressLayoutProvider.
package stress

import (
	"context"
	"math"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/options"
	"github.com/mark/elkgo/pkg/provider"
)

const (
	maxIterations  = 200
	convergence    = 0.01
	minSeparation  = 0.001
)

type point struct{ x, y float64 }

// Provider runs a stress-majorization relaxation over the container's
// direct children.
type Provider struct {
	Seed func(i, n int) (x, y float64)
}

// New returns a fresh stress layout Provider.
func New() *Provider { return &Provider{} }

// Layout implements provider.Provider.
func (p *Provider) Layout(ctx context.Context, container *elkgraph.Container, global map[string]interface{}) error {
	children := container.Children
	if len(children) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	padding := provider.EffectivePadding(container, global)
	edgeLength := options.GetSpacing(container, "elk.spacing.nodeNode", global, 50.0)
	n := len(children)

	idx := make(map[string]int, n)
	for i, c := range children {
		idx[c.ID] = i
	}
	adj := make([][]int, n)
	for _, e := range container.Edges {
		src, tgt, ok := provider.EndpointIDs(e)
		if !ok {
			continue
		}
		si, sOK := idx[src]
		ti, tOK := idx[tgt]
		if sOK && tOK && si != ti {
			adj[si] = append(adj[si], ti)
			adj[ti] = append(adj[ti], si)
		}
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
		queue := []int{i}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj[u] {
				if math.IsInf(dist[i][v], 1) {
					dist[i][v] = dist[i][u] + 1
					queue = append(queue, v)
				}
			}
		}
	}
	maxDist := 0.0
	for i := range dist {
		for j := range dist[i] {
			if !math.IsInf(dist[i][j], 1) && dist[i][j] > maxDist {
				maxDist = dist[i][j]
			}
		}
	}
	for i := range dist {
		for j := range dist[i] {
			if math.IsInf(dist[i][j], 1) {
				dist[i][j] = maxDist + 1
			}
		}
	}

	positions := make([]point, n)
	for i, c := range children {
		x, y := p.seed(i, n)
		if c.X != 0 {
			x = c.X
		}
		if c.Y != 0 {
			y = c.Y
		}
		positions[i] = point{x + c.Width/2, y + c.Height/2}
	}

	for iter := 0; iter < maxIterations; iter++ {
		if iter%32 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		maxMovement := 0.0
		next := make([]point, n)
		copy(next, positions)

		for i := 0; i < n; i++ {
			var numX, numY, denom float64
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dij := dist[i][j] * edgeLength
				var wij float64
				if dij > 0 {
					wij = 1.0 / (dij * dij)
				}

				dx := positions[i].x - positions[j].x
				dy := positions[i].y - positions[j].y
				actual := math.Hypot(dx, dy)

				if actual > minSeparation {
					numX += wij * (positions[j].x + dij*dx/actual)
					numY += wij * (positions[j].y + dij*dy/actual)
				} else {
					numX += wij * (positions[j].x + dij)
					numY += wij * positions[j].y
				}
				denom += wij
			}

			if denom > 0 {
				newX, newY := numX/denom, numY/denom
				movement := math.Hypot(newX-positions[i].x, newY-positions[i].y)
				if movement > maxMovement {
					maxMovement = movement
				}
				next[i] = point{newX, newY}
			}
		}

		positions = next
		if maxMovement < convergence {
			break
		}
	}

	minX, minY := positions[0].x, positions[0].y
	for _, pt := range positions {
		if pt.x < minX {
			minX = pt.x
		}
		if pt.y < minY {
			minY = pt.y
		}
	}
	for i, c := range children {
		c.X = positions[i].x - minX + padding.Left
		c.Y = positions[i].y - minY + padding.Top
	}

	provider.RouteStraightEdges(container)
	provider.FinalizeSize(container, padding)
	return nil
}

func (p *Provider) seed(i, n int) (float64, float64) {
	if p.Seed != nil {
		return p.Seed(i, n)
	}
	const goldenAngle = 2.399963229728653
	r := 15.0 * math.Sqrt(float64(i)+1)
	theta := float64(i) * goldenAngle
	return r * math.Cos(theta), r * math.Sin(theta)
}
